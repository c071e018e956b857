package models

import "gorm.io/gorm"

// Migrate creates or updates the schema for all models. Production deploys
// manage the MySQL schema externally; this is used by tests and by the
// AUTO_MIGRATE startup path.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Conference{},
		&ConferenceRole{},
		&Paper{},
		&Preference{},
		&PaperReviewer{},
	)
}
