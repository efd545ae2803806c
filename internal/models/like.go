package models

import "time"

// Like represents a user's like on a shared trip.
// The combination of UserID and SharedTripID must be unique.
type Like struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_likes_user_shared_trip" json:"user_id"`
	SharedTripID uint      `gorm:"not null;uniqueIndex:idx_likes_user_shared_trip;index:idx_likes_shared_trip" json:"viaje_compartido_id"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`

	// Relationships
	User       User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	SharedTrip SharedTrip `gorm:"foreignKey:SharedTripID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for GORM
func (Like) TableName() string {
	return "likes"
}

// LikeState is the engagement state of one shared trip for one viewer.
type LikeState struct {
	SharedTripID   uint  `json:"id"`
	LikesCount     int64 `json:"likes_count"`
	ViewerHasLiked bool  `json:"ya_dado_like"`
}
