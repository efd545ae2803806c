package models

import "time"

// Follow is a directed edge: FollowerID follows FolloweeID.
// The pair is unique and an edge never points at its own follower.
// Creation means acceptance; there is no pending state.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follows_pair" json:"seguidor"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follows_pair;index:idx_follows_followee;check:chk_follows_not_self,follower_id <> followee_id" json:"seguido"`
	CreatedAt  time.Time `gorm:"not null" json:"creado_en"`

	// Relationships
	Follower User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Followee User `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}

// MutualStatus holds the two independent directions between two users.
type MutualStatus struct {
	IFollow   bool `json:"yo_sigo"`
	FollowsMe bool `json:"me_sigue"`
}

// RelationCounts holds follower/following totals for one user.
type RelationCounts struct {
	Following int64 `json:"siguiendo"`
	Followers int64 `json:"seguidores"`
}
