package seed

import (
	"context"
	"fmt"
	"log"
	"math"

	"travelshare/internal/models"

	"gorm.io/gorm"
)

// Summary counts what a preset run created.
type Summary struct {
	Users       int
	Trips       int
	SharedTrips int
	Follows     int
	Likes       int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d users, %d trips, %d shared trips, %d follows, %d likes",
		s.Users, s.Trips, s.SharedTrips, s.Follows, s.Likes)
}

// Seeder applies presets to a database.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder returns a Seeder writing to db.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll deletes every social-core row, children first.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.Like{}, &models.SharedTrip{}, &models.Follow{}, &models.Trip{}, &models.User{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}
		return nil
	})
}

// Apply builds the graph described by p.
func (s *Seeder) Apply(ctx context.Context, p Preset) (Summary, error) {
	if err := p.Validate(); err != nil {
		return Summary{}, err
	}
	f := NewFactory(s.db.WithContext(ctx), p.Seed, p.MaxDays)
	var sum Summary

	users := make([]*models.User, 0, p.Users)
	for i := 0; i < p.Users; i++ {
		u, err := f.CreateUser()
		if err != nil {
			return sum, fmt.Errorf("create user: %w", err)
		}
		users = append(users, u)
	}
	sum.Users = len(users)

	var shared []*models.SharedTrip
	for _, u := range users {
		toShare := int(math.Round(float64(p.TripsPerUser) * p.ShareRatio))
		for j := 0; j < p.TripsPerUser; j++ {
			trip, err := f.CreateTrip(u)
			if err != nil {
				return sum, fmt.Errorf("create trip: %w", err)
			}
			sum.Trips++
			if j >= toShare {
				continue
			}
			st, err := f.ShareTrip(trip)
			if err != nil {
				return sum, fmt.Errorf("share trip: %w", err)
			}
			shared = append(shared, st)
		}
	}
	sum.SharedTrips = len(shared)

	for i, u := range users {
		for _, j := range f.pick(len(users), p.FollowsPerUser, i) {
			if err := f.Follow(ctx, u, users[j]); err != nil {
				return sum, fmt.Errorf("follow: %w", err)
			}
			sum.Follows++
		}
	}

	for _, st := range shared {
		for _, j := range f.pick(len(users), p.LikesPerSharedTrip, -1) {
			if err := f.Like(ctx, users[j], st); err != nil {
				return sum, fmt.Errorf("like: %w", err)
			}
			sum.Likes++
		}
	}

	log.Printf("✓ Preset %q applied: %s", p.Name, sum)
	return sum, nil
}
