package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"conference-review-api/models"
)

type PreferenceService struct {
	db *gorm.DB
}

func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// RecordPreference stores a reviewer's interest in a paper. Any existing
// opposite label for the same pair is removed in the same transaction, so a
// pair never carries both labels. Re-submitting the identical label is
// rejected with ErrConflict rather than silently ignored.
func (s *PreferenceService) RecordPreference(paperID, reviewerID int, label string) error {
	if label != models.PreferenceInterested && label != models.PreferenceNotInterested {
		return fmt.Errorf("preference must be %q or %q: %w",
			models.PreferenceInterested, models.PreferenceNotInterested, ErrValidation)
	}
	if paperID <= 0 || reviewerID <= 0 {
		return fmt.Errorf("missing required fields: %w", ErrValidation)
	}

	var paper models.Paper
	if err := s.db.First(&paper, "paper_id = ?", paperID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("paper %d: %w", paperID, ErrNotFound)
		}
		return fmt.Errorf("failed to load paper %d: %w", paperID, err)
	}

	var reviewer models.User
	if err := s.db.First(&reviewer, "user_id = ?", reviewerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("reviewer %d: %w", reviewerID, ErrNotFound)
		}
		return fmt.Errorf("failed to load reviewer %d: %w", reviewerID, err)
	}

	holdsRole, err := userHoldsRole(s.db, reviewerID, paper.ConferenceID, models.RoleReviewer)
	if err != nil {
		return err
	}
	if !holdsRole {
		return fmt.Errorf("user %d is not a reviewer in conference %d: %w",
			reviewerID, paper.ConferenceID, ErrAuthorization)
	}

	var duplicates int64
	if err := s.db.Model(&models.Preference{}).
		Where("paper_id = ? AND reviewer_id = ? AND preference = ?", paperID, reviewerID, label).
		Count(&duplicates).Error; err != nil {
		return fmt.Errorf("failed to check existing preference: %w", err)
	}
	if duplicates > 0 {
		return fmt.Errorf("preference %q already recorded for paper %d: %w", label, paperID, ErrConflict)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("paper_id = ? AND reviewer_id = ? AND preference = ?",
				paperID, reviewerID, models.OppositePreference(label)).
			Delete(&models.Preference{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Preference{
			PaperID:    paperID,
			ReviewerID: reviewerID,
			Preference: label,
		}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to record preference: %v: %w", err, ErrPersistence)
	}
	return nil
}

// userHoldsRole reports whether the user has the given role in the
// conference.
func userHoldsRole(db *gorm.DB, userID, conferenceID int, role string) (bool, error) {
	var count int64
	if err := db.Model(&models.ConferenceRole{}).
		Where("user_id = ? AND conference_id = ? AND role = ?", userID, conferenceID, role).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s role: %w", role, err)
	}
	return count > 0, nil
}
