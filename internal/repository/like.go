package repository

import (
	"context"

	"travelshare/internal/database"
	"travelshare/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines persistence for likes and the shared_trips.likes_count counter.
type LikeRepository interface {
	Add(ctx context.Context, userID, sharedTripID uint) (changed bool, likesCount int64, err error)
	Remove(ctx context.Context, userID, sharedTripID uint) (changed bool, likesCount int64, err error)
	HasLiked(ctx context.Context, userID, sharedTripID uint) (bool, error)
	LikedIDs(ctx context.Context, userID uint, sharedTripIDs []uint) ([]uint, error)
	Count(ctx context.Context, sharedTripID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository returns a new LikeRepository implementation.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Add inserts the like if absent. The counter moves only when a row was inserted,
// in the same transaction, and the resulting count is returned. A missing
// shared trip surfaces as NotFound.
func (r *likeRepository) Add(ctx context.Context, userID, sharedTripID uint) (bool, int64, error) {
	var changed bool
	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		like := models.Like{UserID: userID, SharedTripID: sharedTripID}
		result := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&like)
		if result.Error != nil {
			return result.Error
		}
		changed = result.RowsAffected > 0
		if changed {
			if err := tx.Model(&models.SharedTrip{}).
				Where("id = ?", sharedTripID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error; err != nil {
				return err
			}
		}
		return readCounter(tx, sharedTripID, &count)
	})
	if err != nil {
		// The shared trip (or the user) was deleted after the caller checked it.
		if database.IsForeignKeyViolation(err) {
			return false, 0, models.NewNotFoundError("Shared trip", sharedTripID)
		}
		return false, 0, models.NewInternalError(err)
	}
	return changed, count, nil
}

// Remove deletes the like if present, decrementing the counter only when a row went away.
func (r *likeRepository) Remove(ctx context.Context, userID, sharedTripID uint) (bool, int64, error) {
	var changed bool
	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND shared_trip_id = ?", userID, sharedTripID).Delete(&models.Like{})
		if result.Error != nil {
			return result.Error
		}
		changed = result.RowsAffected > 0
		if changed {
			if err := tx.Model(&models.SharedTrip{}).
				Where("id = ? AND likes_count > 0", sharedTripID).
				UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1)).Error; err != nil {
				return err
			}
		}
		return readCounter(tx, sharedTripID, &count)
	})
	if err != nil {
		return false, 0, models.NewInternalError(err)
	}
	return changed, count, nil
}

func readCounter(tx *gorm.DB, sharedTripID uint, dest *int64) error {
	return tx.Model(&models.SharedTrip{}).
		Select("likes_count").
		Where("id = ?", sharedTripID).
		Scan(dest).Error
}

func (r *likeRepository) HasLiked(ctx context.Context, userID, sharedTripID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND shared_trip_id = ?", userID, sharedTripID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// LikedIDs returns the subset of sharedTripIDs userID has liked, in one query.
func (r *likeRepository) LikedIDs(ctx context.Context, userID uint, sharedTripIDs []uint) ([]uint, error) {
	if len(sharedTripIDs) == 0 {
		return nil, nil
	}
	var liked []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND shared_trip_id IN ?", userID, sharedTripIDs).
		Pluck("shared_trip_id", &liked).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return liked, nil
}

// Count returns the number of like rows for a shared trip.
func (r *likeRepository) Count(ctx context.Context, sharedTripID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("shared_trip_id = ?", sharedTripID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
