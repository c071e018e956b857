package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"conference-review-api/models"
)

// newTestDB opens a throwaway sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, id int) models.User {
	t.Helper()
	user := models.User{
		UserID:    id,
		FirstName: fmt.Sprintf("First%d", id),
		LastName:  fmt.Sprintf("Last%d", id),
		Email:     fmt.Sprintf("user%d@example.com", id),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %d: %v", id, err)
	}
	return user
}

func createConference(t *testing.T, db *gorm.DB, id, adminID int) models.Conference {
	t.Helper()
	conference := models.Conference{
		ConferenceID: id,
		Title:        fmt.Sprintf("Conference %d", id),
		Description:  "test conference",
		AdminID:      adminID,
		Status:       models.BlindStatusNone,
	}
	if err := db.Create(&conference).Error; err != nil {
		t.Fatalf("failed to create conference %d: %v", id, err)
	}
	return conference
}

func grantRole(t *testing.T, db *gorm.DB, userID, conferenceID int, role string) {
	t.Helper()
	if err := db.Create(&models.ConferenceRole{
		UserID:       userID,
		ConferenceID: conferenceID,
		Role:         role,
	}).Error; err != nil {
		t.Fatalf("failed to grant role %s to user %d: %v", role, userID, err)
	}
}

func createPaper(t *testing.T, db *gorm.DB, id, conferenceID, authorID int) models.Paper {
	t.Helper()
	paper := models.Paper{
		PaperID:      id,
		Title:        fmt.Sprintf("Paper %d", id),
		ConferenceID: conferenceID,
		AuthorID:     authorID,
		Status:       models.PaperStatusSubmitted,
	}
	if err := db.Create(&paper).Error; err != nil {
		t.Fatalf("failed to create paper %d: %v", id, err)
	}
	return paper
}

func createPreference(t *testing.T, db *gorm.DB, paperID, reviewerID int, label string) {
	t.Helper()
	if err := db.Create(&models.Preference{
		PaperID:    paperID,
		ReviewerID: reviewerID,
		Preference: label,
	}).Error; err != nil {
		t.Fatalf("failed to create preference: %v", err)
	}
}

func countAssignments(t *testing.T, db *gorm.DB, conferenceID int) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.PaperReviewer{}).
		Where("conference_id = ?", conferenceID).
		Count(&count).Error; err != nil {
		t.Fatalf("failed to count assignments: %v", err)
	}
	return count
}
