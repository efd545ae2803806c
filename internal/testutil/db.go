// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"travelshare/internal/database"
	"travelshare/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewDB opens a private in-memory SQLite database with every persistent model migrated.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateUser inserts a user with the given username.
func CreateUser(t testing.TB, db *gorm.DB, username string) models.User {
	t.Helper()
	u := models.User{Username: username}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

// CreateTrip inserts a trip owned by ownerID.
func CreateTrip(t testing.TB, db *gorm.DB, ownerID uint, name string) models.Trip {
	t.Helper()
	trip := models.Trip{UserID: ownerID, Name: name, Destination: name + " destination"}
	if err := db.Omit(clause.Associations).Create(&trip).Error; err != nil {
		t.Fatalf("create trip %s: %v", name, err)
	}
	return trip
}

// ShareTrip publishes trip as its owner at publishedAt with likes preset on the counter.
func ShareTrip(t testing.TB, db *gorm.DB, trip models.Trip, publishedAt time.Time, likes int64) models.SharedTrip {
	t.Helper()
	st := models.SharedTrip{
		TripID:      trip.ID,
		PublisherID: trip.UserID,
		Comment:     "shared " + trip.Name,
		PublishedAt: publishedAt.UTC(),
		LikesCount:  likes,
	}
	if err := db.Omit(clause.Associations).Create(&st).Error; err != nil {
		t.Fatalf("share trip %d: %v", trip.ID, err)
	}
	return st
}

// Follow inserts a follow edge directly.
func Follow(t testing.TB, db *gorm.DB, followerID, followeeID uint) models.Follow {
	t.Helper()
	f := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	if err := db.Omit(clause.Associations).Create(&f).Error; err != nil {
		t.Fatalf("follow %d -> %d: %v", followerID, followeeID, err)
	}
	return f
}
