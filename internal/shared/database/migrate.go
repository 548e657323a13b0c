package database

import (
	"yelloride/internal/bookings"
	"yelloride/internal/fares"
	"yelloride/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults need the extension before any table exists
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&users.User{},
		&fares.RouteFare{},
		&bookings.Booking{},
		&bookings.BookingTrip{},
	); err != nil {
		return err
	}

	return MigrateConstraints(db)
}
