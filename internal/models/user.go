// Package models contains data structures for the application's domain models.
package models

import "time"

// User is the identity provider's user record as seen by this service.
// Rows are written by the identity provider; the social core only reads them.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null;size:150" json:"username"`
	PhotoURL  *string   `gorm:"column:photo_url" json:"foto_perfil"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// UserSummary is the (id, username, photo) tuple embedded in lists and feeds.
type UserSummary struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	PhotoURL *string `json:"foto_perfil"`
}

// Summary projects a user onto its public summary.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, PhotoURL: u.PhotoURL}
}

// ProfileCard is a user summary together with relationship counts.
type ProfileCard struct {
	UserSummary
	RelationCounts
}
