package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for every table this package owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&trainRow{},
		&stationRow{},
		&scheduleStopRow{},
		&passengerRow{},
		&dependentRow{},
		&staffRow{},
		&reservationRow{},
		&paymentRow{},
		&waitingListRow{},
		&staffAssignmentRow{},
		&reminderLogRow{},
	)
}
