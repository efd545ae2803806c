package repository

import (
	"context"
	"errors"

	"travelshare/internal/models"

	"gorm.io/gorm"
)

// TripRepository looks up trips for ownership checks. Trip CRUD lives elsewhere.
type TripRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Trip, error)
}

type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository returns a new TripRepository implementation.
func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) GetByID(ctx context.Context, id uint) (*models.Trip, error) {
	var trip models.Trip
	if err := r.db.WithContext(ctx).First(&trip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Trip", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &trip, nil
}
