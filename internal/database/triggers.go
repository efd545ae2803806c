package database

import (
	"fmt"

	"gorm.io/gorm"
)

// counterTriggers release shared_trips.likes_count for a user's likes before the
// user row is deleted, since the cascade on likes never reaches LikeRepository.
// The postgres statements mirror migration 000003.
var counterTriggers = map[string][]string{
	"postgres": {
		`CREATE OR REPLACE FUNCTION release_user_likes() RETURNS trigger AS $$
BEGIN
    UPDATE shared_trips
    SET likes_count = likes_count - 1
    WHERE likes_count > 0
      AND id IN (SELECT shared_trip_id FROM likes WHERE user_id = OLD.id);
    RETURN OLD;
END;
$$ LANGUAGE plpgsql`,
		`DROP TRIGGER IF EXISTS trg_users_release_likes ON users`,
		`CREATE TRIGGER trg_users_release_likes
    BEFORE DELETE ON users
    FOR EACH ROW EXECUTE FUNCTION release_user_likes()`,
	},
	"sqlite": {
		`CREATE TRIGGER IF NOT EXISTS trg_users_release_likes
BEFORE DELETE ON users
FOR EACH ROW
BEGIN
    UPDATE shared_trips
    SET likes_count = likes_count - 1
    WHERE likes_count > 0
      AND id IN (SELECT shared_trip_id FROM likes WHERE user_id = OLD.id);
END`,
	},
}

func installCounterTriggers(db *gorm.DB) error {
	for _, stmt := range counterTriggers[db.Dialector.Name()] {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("install likes counter trigger: %w", err)
		}
	}
	return nil
}
