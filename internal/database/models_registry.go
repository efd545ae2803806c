package database

import "travelshare/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Order matters for AutoMigrate: referenced tables come first.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Trip{},
		&models.Follow{},
		&models.SharedTrip{},
		&models.Like{},
	}
}
