// Package seed creates demo and test data for the social core. These helpers
// are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"time"

	"travelshare/internal/models"
	"travelshare/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Factory builds domain entities and persists them to the database.
// Follows and likes go through the repositories so their invariants hold.
type Factory struct {
	db      *gorm.DB
	faker   *gofakeit.Faker
	follows repository.FollowRepository
	likes   repository.LikeRepository
	maxDays int
	now     func() time.Time
	seq     int
}

// NewFactory creates a Factory bound to db. A zero seed draws a random one.
func NewFactory(db *gorm.DB, seed int64, maxDays int) *Factory {
	if maxDays <= 0 {
		maxDays = 30
	}
	return &Factory{
		db:      db,
		faker:   gofakeit.New(seed),
		follows: repository.NewFollowRepository(db),
		likes:   repository.NewLikeRepository(db),
		maxDays: maxDays,
		now:     time.Now,
	}
}

// CreateUser persists a user with a unique generated username.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	f.seq++
	photo := fmt.Sprintf("https://i.pravatar.cc/150?u=%s", f.faker.UUID())
	user := &models.User{
		Username: fmt.Sprintf("%s%d", f.faker.Username(), f.seq),
		PhotoURL: &photo,
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateTrip persists a trip owned by owner.
func (f *Factory) CreateTrip(owner *models.User, overrides ...func(*models.Trip)) (*models.Trip, error) {
	start := f.now().AddDate(0, 0, f.faker.Number(1, 180))
	end := start.AddDate(0, 0, f.faker.Number(2, 14))
	trip := &models.Trip{
		UserID:        owner.ID,
		Name:          fmt.Sprintf("%s %s", f.faker.Adjective(), f.faker.City()),
		Destination:   f.faker.Country(),
		StartDate:     &start,
		EndDate:       &end,
		CoverImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/800/600", f.faker.UUID()),
	}
	for _, override := range overrides {
		override(trip)
	}
	if err := f.db.Omit(clause.Associations).Create(trip).Error; err != nil {
		return nil, err
	}
	return trip, nil
}

// ShareTrip publishes trip with a published_at spread over the last maxDays days.
func (f *Factory) ShareTrip(trip *models.Trip) (*models.SharedTrip, error) {
	minutesBack := f.faker.Number(0, f.maxDays*24*60)
	st := &models.SharedTrip{
		TripID:      trip.ID,
		PublisherID: trip.UserID,
		Comment:     f.faker.Sentence(f.faker.Number(4, 12)),
		PublishedAt: f.now().Add(-time.Duration(minutesBack) * time.Minute).UTC(),
	}
	if err := f.db.Omit(clause.Associations).Create(st).Error; err != nil {
		return nil, err
	}
	return st, nil
}

// Follow creates the edge follower -> followee.
func (f *Factory) Follow(ctx context.Context, follower, followee *models.User) error {
	return f.follows.Create(ctx, &models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID})
}

// Like records user's like on st and keeps its counter in step.
func (f *Factory) Like(ctx context.Context, user *models.User, st *models.SharedTrip) error {
	_, count, err := f.likes.Add(ctx, user.ID, st.ID)
	if err != nil {
		return err
	}
	st.LikesCount = count
	return nil
}

// pick returns up to n distinct indexes in [0, size) other than skip.
func (f *Factory) pick(size, n, skip int) []int {
	candidates := make([]int, 0, size)
	for i := 0; i < size; i++ {
		if i != skip {
			candidates = append(candidates, i)
		}
	}
	f.faker.ShuffleInts(candidates)
	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}
