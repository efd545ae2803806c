package models

import "time"

// Trip is a user's travel plan. Trip CRUD lives outside the social core;
// only the owner and a display summary are read here.
type Trip struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"usuario"`
	User          User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name          string     `gorm:"not null;size:255" json:"nombre"`
	Destination   string     `gorm:"size:255" json:"destino"`
	StartDate     *time.Time `json:"fecha_inicio"`
	EndDate       *time.Time `json:"fecha_fin"`
	CoverImageURL string     `gorm:"column:cover_image_url" json:"imagen_destacada"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Trip) TableName() string {
	return "trips"
}

// TripSummary is the trip projection carried by feed items.
type TripSummary struct {
	ID            uint       `json:"id"`
	OwnerID       uint       `json:"usuario"`
	Name          string     `json:"nombre"`
	Destination   string     `json:"destino"`
	StartDate     *time.Time `json:"fecha_inicio"`
	EndDate       *time.Time `json:"fecha_fin"`
	CoverImageURL string     `json:"imagen_destacada"`
}

// Summary projects a trip onto its feed summary.
func (t Trip) Summary() TripSummary {
	return TripSummary{
		ID:            t.ID,
		OwnerID:       t.UserID,
		Name:          t.Name,
		Destination:   t.Destination,
		StartDate:     t.StartDate,
		EndDate:       t.EndDate,
		CoverImageURL: t.CoverImageURL,
	}
}
