package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"travelshare/internal/middleware"
	"travelshare/internal/models"
	"travelshare/internal/observability"
	"travelshare/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// MaxCommentLength caps the publisher comment on a shared trip.
const MaxCommentLength = 2000

// SharingService publishes and unpublishes trips to the public feed.
type SharingService struct {
	tripRepo   repository.TripRepository
	sharedRepo repository.SharedTripRepository
	likeRepo   repository.LikeRepository
	now        func() time.Time
}

// NewSharingService returns a new SharingService.
func NewSharingService(tripRepo repository.TripRepository, sharedRepo repository.SharedTripRepository, likeRepo repository.LikeRepository) *SharingService {
	return &SharingService{
		tripRepo:   tripRepo,
		sharedRepo: sharedRepo,
		likeRepo:   likeRepo,
		now:        time.Now,
	}
}

// Publish shares tripID on behalf of its owner.
func (s *SharingService) Publish(ctx context.Context, tripID, requesterID uint, comment string) (_ *models.SharedTrip, err error) {
	ctx, span := observability.StartServiceSpan(ctx, "SharingService", "Publish",
		attribute.Int64("trip_id", int64(tripID)),
		attribute.Int64("requester_id", int64(requesterID)),
	)
	defer func() { observability.EndSpan(span, err) }()

	comment = strings.TrimSpace(comment)
	if len(comment) > MaxCommentLength {
		return nil, models.NewValidationError("Comment is too long")
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.UserID != requesterID {
		return nil, models.NewForbiddenError("Only the trip owner can share it")
	}

	shared, err := s.sharedRepo.ExistsForTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if shared {
		return nil, models.NewConflictError("Trip is already shared")
	}

	st := &models.SharedTrip{
		TripID:      tripID,
		PublisherID: requesterID,
		Comment:     comment,
		PublishedAt: s.now().UTC(),
	}
	if err := s.sharedRepo.Create(ctx, st); err != nil {
		return nil, err
	}

	observability.SharingEvents.WithLabelValues("publish").Inc()
	middleware.Logger.InfoContext(ctx, "trip published",
		slog.Uint64("trip_id", uint64(tripID)),
		slog.Uint64("shared_trip_id", uint64(st.ID)),
	)
	return st, nil
}

// Unpublish removes the requester's shared trip for tripID together with its likes.
func (s *SharingService) Unpublish(ctx context.Context, tripID, requesterID uint) (err error) {
	ctx, span := observability.StartServiceSpan(ctx, "SharingService", "Unpublish",
		attribute.Int64("trip_id", int64(tripID)),
		attribute.Int64("requester_id", int64(requesterID)),
	)
	defer func() { observability.EndSpan(span, err) }()

	st, err := s.sharedRepo.GetByTripID(ctx, tripID)
	if err != nil {
		return err
	}
	if st.PublisherID != requesterID {
		return models.NewNotFoundError("SharedTrip for trip", tripID)
	}

	if err := s.sharedRepo.DeleteWithLikes(ctx, st.ID); err != nil {
		return err
	}

	observability.SharingEvents.WithLabelValues("unpublish").Inc()
	middleware.Logger.InfoContext(ctx, "trip unpublished",
		slog.Uint64("trip_id", uint64(tripID)),
		slog.Uint64("shared_trip_id", uint64(st.ID)),
	)
	return nil
}

// IsPublished reports whether tripID currently has a shared trip.
func (s *SharingService) IsPublished(ctx context.Context, tripID uint) (bool, error) {
	return s.sharedRepo.ExistsForTrip(ctx, tripID)
}

// ListByPublisher returns every shared trip authored by publisherID, newest first.
func (s *SharingService) ListByPublisher(ctx context.Context, viewerID, publisherID uint, page models.Page) ([]models.FeedItem, error) {
	items, err := s.sharedRepo.ListByPublisher(ctx, publisherID, page)
	if err != nil {
		return nil, err
	}
	return hydrateFeed(ctx, s.likeRepo, viewerID, items)
}

// Get returns one shared trip as the viewer sees it.
func (s *SharingService) Get(ctx context.Context, sharedTripID, viewerID uint) (*models.FeedItem, error) {
	st, err := s.sharedRepo.GetByID(ctx, sharedTripID)
	if err != nil {
		return nil, err
	}
	items, err := hydrateFeed(ctx, s.likeRepo, viewerID, []models.SharedTrip{*st})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}
