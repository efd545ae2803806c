package models

import "time"

// SharedTrip is the public, feed-visible post of a trip. A trip has at most
// one SharedTrip and only its owner may create or delete it.
type SharedTrip struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TripID      uint      `gorm:"not null;uniqueIndex:idx_shared_trips_trip" json:"viaje_id"`
	Trip        Trip      `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE" json:"-"`
	PublisherID uint      `gorm:"not null;index:idx_shared_trips_publisher" json:"publicado_por"`
	Publisher   User      `gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE" json:"-"`
	Comment     string    `gorm:"type:text" json:"comentario"`
	PublishedAt time.Time `gorm:"not null;index:idx_shared_trips_published_at" json:"fecha_publicacion"`
	// LikesCount is maintained in the same transaction as likes rows.
	LikesCount int64 `gorm:"not null;default:0" json:"likes_count"`
}

// TableName specifies the table name for GORM
func (SharedTrip) TableName() string {
	return "shared_trips"
}

// FeedItem is the denormalized view of a shared trip returned by feeds.
type FeedItem struct {
	ID             uint        `json:"id"`
	Trip           TripSummary `json:"viaje"`
	Comment        string      `json:"comentario"`
	PublisherID    uint        `json:"publicado_por"`
	Publisher      UserSummary `json:"publicador"`
	PublishedAt    time.Time   `json:"fecha_publicacion"`
	LikesCount     int64       `json:"likes_count"`
	ViewerHasLiked bool        `json:"ya_dado_like"`
}

// NewFeedItem builds a feed item from a shared trip with Trip and Publisher loaded.
func NewFeedItem(st SharedTrip, viewerHasLiked bool) FeedItem {
	return FeedItem{
		ID:             st.ID,
		Trip:           st.Trip.Summary(),
		Comment:        st.Comment,
		PublisherID:    st.PublisherID,
		Publisher:      st.Publisher.Summary(),
		PublishedAt:    st.PublishedAt,
		LikesCount:     st.LikesCount,
		ViewerHasLiked: viewerHasLiked,
	}
}
