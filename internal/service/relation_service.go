// Package service contains the business logic of the social core.
package service

import (
	"context"
	"log/slog"
	"time"

	"travelshare/internal/cache"
	"travelshare/internal/middleware"
	"travelshare/internal/models"
	"travelshare/internal/observability"
	"travelshare/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// RelationService manages the directed follow graph between users.
type RelationService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	countsTTL  time.Duration
}

// NewRelationService returns a new RelationService. A non-positive countsTTL uses cache.RelationCountsTTL.
func NewRelationService(followRepo repository.FollowRepository, userRepo repository.UserRepository, countsTTL time.Duration) *RelationService {
	if countsTTL <= 0 {
		countsTTL = cache.RelationCountsTTL
	}
	return &RelationService{
		followRepo: followRepo,
		userRepo:   userRepo,
		countsTTL:  countsTTL,
	}
}

// Follow creates the edge followerID -> followeeID.
func (s *RelationService) Follow(ctx context.Context, followerID, followeeID uint) (_ *models.Follow, err error) {
	ctx, span := observability.StartServiceSpan(ctx, "RelationService", "Follow",
		attribute.Int64("follower_id", int64(followerID)),
		attribute.Int64("followee_id", int64(followeeID)),
	)
	defer func() { observability.EndSpan(span, err) }()

	if followerID == followeeID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}

	exists, err := s.userRepo.Exists(ctx, followeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User", followeeID)
	}

	already, err := s.followRepo.Exists(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, models.NewConflictError("Already following this user")
	}

	follow := &models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return nil, err
	}

	cache.InvalidateRelationCounts(ctx, followerID, followeeID)
	observability.RelationEvents.WithLabelValues("follow").Inc()
	middleware.Logger.InfoContext(ctx, "follow created",
		slog.Uint64("follower_id", uint64(followerID)),
		slog.Uint64("followee_id", uint64(followeeID)),
	)
	return follow, nil
}

// Unfollow removes followerID's edge to followeeID.
func (s *RelationService) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	return s.removeEdge(ctx, "unfollow", followerID, followeeID, "You are not following this user")
}

// RemoveFollower lets followeeID drop followerID's edge.
func (s *RelationService) RemoveFollower(ctx context.Context, followeeID, followerID uint) error {
	return s.removeEdge(ctx, "remove_follower", followerID, followeeID, "This user is not following you")
}

func (s *RelationService) removeEdge(ctx context.Context, action string, followerID, followeeID uint, missing string) (err error) {
	ctx, span := observability.StartServiceSpan(ctx, "RelationService", action,
		attribute.Int64("follower_id", int64(followerID)),
		attribute.Int64("followee_id", int64(followeeID)),
	)
	defer func() { observability.EndSpan(span, err) }()

	removed, err := s.followRepo.Delete(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if !removed {
		return &models.AppError{Code: models.CodeNotFound, Message: missing}
	}

	cache.InvalidateRelationCounts(ctx, followerID, followeeID)
	observability.RelationEvents.WithLabelValues(action).Inc()
	middleware.Logger.InfoContext(ctx, "follow removed",
		slog.String("action", action),
		slog.Uint64("follower_id", uint64(followerID)),
		slog.Uint64("followee_id", uint64(followeeID)),
	)
	return nil
}

// IsFollowing reports whether a follows b.
func (s *RelationService) IsFollowing(ctx context.Context, a, b uint) (bool, error) {
	return s.followRepo.Exists(ctx, a, b)
}

// MutualStatus returns both directions between me and other.
func (s *RelationService) MutualStatus(ctx context.Context, me, other uint) (models.MutualStatus, error) {
	var status models.MutualStatus
	var err error
	if status.IFollow, err = s.followRepo.Exists(ctx, me, other); err != nil {
		return models.MutualStatus{}, err
	}
	if status.FollowsMe, err = s.followRepo.Exists(ctx, other, me); err != nil {
		return models.MutualStatus{}, err
	}
	return status, nil
}

// ListFollowing returns summaries of the users userID follows.
func (s *RelationService) ListFollowing(ctx context.Context, userID uint, page models.Page) ([]models.UserSummary, error) {
	users, err := s.followRepo.ListFollowing(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return summarize(users), nil
}

// ListFollowers returns summaries of the users following userID.
func (s *RelationService) ListFollowers(ctx context.Context, userID uint, page models.Page) ([]models.UserSummary, error) {
	users, err := s.followRepo.ListFollowers(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return summarize(users), nil
}

// Counts returns following/follower totals, served from Redis when cached.
func (s *RelationService) Counts(ctx context.Context, userID uint) (models.RelationCounts, error) {
	var counts models.RelationCounts
	err := cache.Aside(ctx, "relation_counts", cache.RelationCountsKey(userID), &counts, s.countsTTL, func() error {
		var err error
		counts, err = s.followRepo.Counts(ctx, userID)
		return err
	})
	if err != nil {
		return models.RelationCounts{}, err
	}
	return counts, nil
}

// ProfileCard returns a user's public summary together with relation counts.
func (s *RelationService) ProfileCard(ctx context.Context, userID uint) (*models.ProfileCard, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	counts, err := s.Counts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.ProfileCard{UserSummary: user.Summary(), RelationCounts: counts}, nil
}

func summarize(users []models.User) []models.UserSummary {
	out := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, u.Summary())
	}
	return out
}
