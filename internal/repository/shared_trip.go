package repository

import (
	"context"
	"errors"
	"time"

	"travelshare/internal/database"
	"travelshare/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SharedTripRepository defines persistence for published trips and the feed queries over them.
type SharedTripRepository interface {
	Create(ctx context.Context, st *models.SharedTrip) error
	GetByID(ctx context.Context, id uint) (*models.SharedTrip, error)
	GetByTripID(ctx context.Context, tripID uint) (*models.SharedTrip, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ExistsForTrip(ctx context.Context, tripID uint) (bool, error)
	DeleteWithLikes(ctx context.Context, id uint) error
	ListByPublisher(ctx context.Context, publisherID uint, page models.Page) ([]models.SharedTrip, error)
	ListFollowedBy(ctx context.Context, viewerID uint, page models.Page) ([]models.SharedTrip, error)
	ListPopularSince(ctx context.Context, since time.Time, page models.Page) ([]models.SharedTrip, error)
	ListRecent(ctx context.Context, publisherID *uint, page models.Page) ([]models.SharedTrip, error)
}

type sharedTripRepository struct {
	db *gorm.DB
}

// NewSharedTripRepository returns a new SharedTripRepository implementation.
func NewSharedTripRepository(db *gorm.DB) SharedTripRepository {
	return &sharedTripRepository{db: db}
}

func (r *sharedTripRepository) Create(ctx context.Context, st *models.SharedTrip) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(st).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return models.NewConflictError("Trip is already shared")
		}
		if database.IsForeignKeyViolation(err) {
			return models.NewNotFoundError("Trip", st.TripID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *sharedTripRepository) GetByID(ctx context.Context, id uint) (*models.SharedTrip, error) {
	var st models.SharedTrip
	if err := r.withDisplay(ctx).First(&st, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("SharedTrip", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &st, nil
}

func (r *sharedTripRepository) GetByTripID(ctx context.Context, tripID uint) (*models.SharedTrip, error) {
	var st models.SharedTrip
	if err := r.db.WithContext(ctx).Where("trip_id = ?", tripID).First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("SharedTrip for trip", tripID)
		}
		return nil, models.NewInternalError(err)
	}
	return &st, nil
}

func (r *sharedTripRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, "id = ?", id)
}

func (r *sharedTripRepository) ExistsForTrip(ctx context.Context, tripID uint) (bool, error) {
	return r.exists(ctx, "trip_id = ?", tripID)
}

func (r *sharedTripRepository) exists(ctx context.Context, query string, arg uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SharedTrip{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// DeleteWithLikes removes the shared trip and every like on it atomically.
func (r *sharedTripRepository) DeleteWithLikes(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shared_trip_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.SharedTrip{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.NewNotFoundError("SharedTrip", id)
		}
		return nil
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *sharedTripRepository) ListByPublisher(ctx context.Context, publisherID uint, page models.Page) ([]models.SharedTrip, error) {
	return r.list(ctx, page, func(q *gorm.DB) *gorm.DB {
		return q.Where("shared_trips.publisher_id = ?", publisherID).
			Order("shared_trips.published_at DESC").
			Order("shared_trips.id DESC")
	})
}

// ListFollowedBy returns shared trips whose publisher viewerID follows, newest first.
func (r *sharedTripRepository) ListFollowedBy(ctx context.Context, viewerID uint, page models.Page) ([]models.SharedTrip, error) {
	followed := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Select("followee_id").
		Where("follower_id = ?", viewerID)

	return r.list(ctx, page, func(q *gorm.DB) *gorm.DB {
		return q.Where("shared_trips.publisher_id IN (?)", followed).
			Order("shared_trips.published_at DESC").
			Order("shared_trips.id DESC")
	})
}

// ListPopularSince ranks shared trips published at or after since by like count.
func (r *sharedTripRepository) ListPopularSince(ctx context.Context, since time.Time, page models.Page) ([]models.SharedTrip, error) {
	return r.list(ctx, page, func(q *gorm.DB) *gorm.DB {
		return q.Where("shared_trips.published_at >= ?", since).
			Order("shared_trips.likes_count DESC").
			Order("shared_trips.published_at DESC").
			Order("shared_trips.id DESC")
	})
}

// ListRecent returns all shared trips, or one publisher's when publisherID is set, newest first.
func (r *sharedTripRepository) ListRecent(ctx context.Context, publisherID *uint, page models.Page) ([]models.SharedTrip, error) {
	return r.list(ctx, page, func(q *gorm.DB) *gorm.DB {
		if publisherID != nil {
			q = q.Where("shared_trips.publisher_id = ?", *publisherID)
		}
		return q.Order("shared_trips.published_at DESC").
			Order("shared_trips.id DESC")
	})
}

func (r *sharedTripRepository) withDisplay(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Trip").Preload("Publisher")
}

func (r *sharedTripRepository) list(ctx context.Context, page models.Page, scope func(*gorm.DB) *gorm.DB) ([]models.SharedTrip, error) {
	page = page.Normalized()
	var items []models.SharedTrip
	if err := r.withDisplay(ctx).
		Scopes(scope).
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}
