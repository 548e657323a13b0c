package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds indexes AutoMigrate does not express well
func MigrateConstraints(db *gorm.DB) error {
	// Admin list view filters by status and sorts by recency
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_status_created
		ON bookings (status, created_at DESC);
	`).Error
	if err != nil {
		return err
	}

	// Leg rows are always fetched as a set per booking, ordered
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_booking_trips_booking_leg
		ON booking_trips (booking_id, leg_order);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
