package service

import (
	"context"
	"strconv"

	"travelshare/internal/models"
	"travelshare/internal/observability"
	"travelshare/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// EngagementService records idempotent likes on shared trips.
type EngagementService struct {
	sharedRepo repository.SharedTripRepository
	likeRepo   repository.LikeRepository
}

// NewEngagementService returns a new EngagementService.
func NewEngagementService(sharedRepo repository.SharedTripRepository, likeRepo repository.LikeRepository) *EngagementService {
	return &EngagementService{sharedRepo: sharedRepo, likeRepo: likeRepo}
}

// Like ensures userID likes sharedTripID. Liking twice is a no-op.
func (s *EngagementService) Like(ctx context.Context, userID, sharedTripID uint) (_ *models.LikeState, err error) {
	ctx, span := observability.StartServiceSpan(ctx, "EngagementService", "Like",
		attribute.Int64("user_id", int64(userID)),
		attribute.Int64("shared_trip_id", int64(sharedTripID)),
	)
	defer func() { observability.EndSpan(span, err) }()

	if err := s.requireSharedTrip(ctx, sharedTripID); err != nil {
		return nil, err
	}

	changed, count, err := s.likeRepo.Add(ctx, userID, sharedTripID)
	if err != nil {
		return nil, err
	}
	observability.EngagementEvents.WithLabelValues("like", strconv.FormatBool(changed)).Inc()

	return &models.LikeState{SharedTripID: sharedTripID, LikesCount: count, ViewerHasLiked: true}, nil
}

// Unlike ensures userID does not like sharedTripID. Unliking an absent like succeeds.
func (s *EngagementService) Unlike(ctx context.Context, userID, sharedTripID uint) (_ *models.LikeState, err error) {
	ctx, span := observability.StartServiceSpan(ctx, "EngagementService", "Unlike",
		attribute.Int64("user_id", int64(userID)),
		attribute.Int64("shared_trip_id", int64(sharedTripID)),
	)
	defer func() { observability.EndSpan(span, err) }()

	changed, count, err := s.likeRepo.Remove(ctx, userID, sharedTripID)
	if err != nil {
		return nil, err
	}
	observability.EngagementEvents.WithLabelValues("unlike", strconv.FormatBool(changed)).Inc()

	return &models.LikeState{SharedTripID: sharedTripID, LikesCount: count, ViewerHasLiked: false}, nil
}

// CountFor returns the number of likes on a shared trip.
func (s *EngagementService) CountFor(ctx context.Context, sharedTripID uint) (int64, error) {
	return s.likeRepo.Count(ctx, sharedTripID)
}

// HasLiked reports whether userID likes sharedTripID.
func (s *EngagementService) HasLiked(ctx context.Context, userID, sharedTripID uint) (bool, error) {
	return s.likeRepo.HasLiked(ctx, userID, sharedTripID)
}

func (s *EngagementService) requireSharedTrip(ctx context.Context, id uint) error {
	ok, err := s.sharedRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewNotFoundError("SharedTrip", id)
	}
	return nil
}
