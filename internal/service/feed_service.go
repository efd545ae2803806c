package service

import (
	"context"
	"time"

	"travelshare/internal/models"
	"travelshare/internal/observability"
	"travelshare/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// DefaultPopularWindow bounds the popular feed to recently published trips.
const DefaultPopularWindow = 30 * 24 * time.Hour

// FeedService composes read-only feeds of shared trips for a viewer.
type FeedService struct {
	sharedRepo    repository.SharedTripRepository
	likeRepo      repository.LikeRepository
	popularWindow time.Duration
	now           func() time.Time
}

// NewFeedService returns a new FeedService. A non-positive popularWindow uses DefaultPopularWindow.
func NewFeedService(sharedRepo repository.SharedTripRepository, likeRepo repository.LikeRepository, popularWindow time.Duration) *FeedService {
	if popularWindow <= 0 {
		popularWindow = DefaultPopularWindow
	}
	return &FeedService{
		sharedRepo:    sharedRepo,
		likeRepo:      likeRepo,
		popularWindow: popularWindow,
		now:           time.Now,
	}
}

// Following returns trips shared by users the viewer follows, newest first.
func (s *FeedService) Following(ctx context.Context, viewerID uint, page models.Page) (_ []models.FeedItem, err error) {
	defer observability.TrackFeed("following")()
	ctx, span := observability.StartServiceSpan(ctx, "FeedService", "Following", attribute.Int64("viewer_id", int64(viewerID)))
	defer func() { observability.EndSpan(span, err) }()

	items, err := s.sharedRepo.ListFollowedBy(ctx, viewerID, page)
	if err != nil {
		return nil, err
	}
	return hydrateFeed(ctx, s.likeRepo, viewerID, items)
}

// Popular ranks trips shared within the popular window by like count.
func (s *FeedService) Popular(ctx context.Context, viewerID uint, page models.Page) (_ []models.FeedItem, err error) {
	defer observability.TrackFeed("popular")()
	ctx, span := observability.StartServiceSpan(ctx, "FeedService", "Popular", attribute.Int64("viewer_id", int64(viewerID)))
	defer func() { observability.EndSpan(span, err) }()

	since := s.now().UTC().Add(-s.popularWindow)
	items, err := s.sharedRepo.ListPopularSince(ctx, since, page)
	if err != nil {
		return nil, err
	}
	return hydrateFeed(ctx, s.likeRepo, viewerID, items)
}

// Recent returns all shared trips, or one publisher's, newest first.
func (s *FeedService) Recent(ctx context.Context, viewerID uint, publisherID *uint, page models.Page) (_ []models.FeedItem, err error) {
	defer observability.TrackFeed("recent")()
	ctx, span := observability.StartServiceSpan(ctx, "FeedService", "Recent", attribute.Int64("viewer_id", int64(viewerID)))
	defer func() { observability.EndSpan(span, err) }()

	items, err := s.sharedRepo.ListRecent(ctx, publisherID, page)
	if err != nil {
		return nil, err
	}
	return hydrateFeed(ctx, s.likeRepo, viewerID, items)
}

// hydrateFeed builds feed items, resolving the viewer's likes for the whole page in one query.
func hydrateFeed(ctx context.Context, likeRepo repository.LikeRepository, viewerID uint, items []models.SharedTrip) ([]models.FeedItem, error) {
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	liked := make(map[uint]bool, len(ids))
	if viewerID != 0 && len(ids) > 0 {
		likedIDs, err := likeRepo.LikedIDs(ctx, viewerID, ids)
		if err != nil {
			return nil, err
		}
		for _, id := range likedIDs {
			liked[id] = true
		}
	}

	out := make([]models.FeedItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.NewFeedItem(it, liked[it.ID]))
	}
	return out, nil
}
