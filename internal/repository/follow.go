package repository

import (
	"context"

	"travelshare/internal/database"
	"travelshare/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines persistence for directed follow edges.
type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	Delete(ctx context.Context, followerID, followeeID uint) (bool, error)
	Exists(ctx context.Context, followerID, followeeID uint) (bool, error)
	ListFollowing(ctx context.Context, userID uint, page models.Page) ([]models.User, error)
	ListFollowers(ctx context.Context, userID uint, page models.Page) ([]models.User, error)
	Counts(ctx context.Context, userID uint) (models.RelationCounts, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the edge. A concurrent duplicate surfaces as a Conflict.
func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(follow).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return models.NewConflictError("Already following this user")
		}
		if database.IsForeignKeyViolation(err) {
			return models.NewNotFoundError("User", follow.FolloweeID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the edge and reports whether one existed.
func (r *followRepository) Delete(ctx context.Context, followerID, followeeID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// ListFollowing returns the users userID follows, oldest edge first.
func (r *followRepository) ListFollowing(ctx context.Context, userID uint, page models.Page) ([]models.User, error) {
	return r.listEdgeUsers(ctx, "follows.followee_id", "follows.follower_id", userID, page)
}

// ListFollowers returns the users following userID, oldest edge first.
func (r *followRepository) ListFollowers(ctx context.Context, userID uint, page models.Page) ([]models.User, error) {
	return r.listEdgeUsers(ctx, "follows.follower_id", "follows.followee_id", userID, page)
}

func (r *followRepository) listEdgeUsers(ctx context.Context, joinCol, filterCol string, userID uint, page models.Page) ([]models.User, error) {
	page = page.Normalized()
	var users []models.User
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.*").
		Joins("JOIN follows ON users.id = "+joinCol).
		Where(filterCol+" = ?", userID).
		Order("follows.created_at ASC").
		Order("follows.id ASC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *followRepository) Counts(ctx context.Context, userID uint) (models.RelationCounts, error) {
	var counts models.RelationCounts
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&counts.Following).Error; err != nil {
		return counts, models.NewInternalError(err)
	}
	if err := db.Model(&models.Follow{}).Where("followee_id = ?", userID).Count(&counts.Followers).Error; err != nil {
		return counts, models.NewInternalError(err)
	}
	return counts, nil
}
