package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table this package maps. Used by
// cmd/seed and by tests running against SQLite.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&identityModel{},
		&accountModel{},
		&roleAssignmentModel{},
		&permissionGrantModel{},
		&bookingSessionModel{},
		&bookingModel{},
		&eventModel{},
		&venueModel{},
		&performerModel{},
	)
}
