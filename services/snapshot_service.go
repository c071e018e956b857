package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"conference-review-api/models"
	"conference-review-api/optimizer"
)

// Snapshot is the point-in-time view of a conference the assignment engine
// works from: its papers, its reviewer pool, and every recorded preference
// for its papers. Reads are not re-validated before commit; a run is
// consistent with the data as of snapshot time.
type Snapshot struct {
	Conference  models.Conference
	Papers      []models.Paper
	ReviewerIDs []int
	Preferences map[optimizer.PairKey]optimizer.Label
}

type SnapshotService struct {
	db *gorm.DB
}

func NewSnapshotService(db *gorm.DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// LoadConferenceSnapshot reads the engine's inputs for one conference.
// A missing conference is ErrNotFound; an empty reviewer pool is not an
// error here, the orchestration layer decides what that means.
func (s *SnapshotService) LoadConferenceSnapshot(conferenceID int) (*Snapshot, error) {
	var conference models.Conference
	if err := s.db.First(&conference, "conference_id = ?", conferenceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("conference %d: %w", conferenceID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load conference %d: %w", conferenceID, err)
	}

	var papers []models.Paper
	if err := s.db.Where("conference_id = ?", conferenceID).Find(&papers).Error; err != nil {
		return nil, fmt.Errorf("failed to load papers for conference %d: %w", conferenceID, err)
	}

	var reviewerIDs []int
	if err := s.db.Model(&models.ConferenceRole{}).
		Distinct().
		Where("conference_id = ? AND role = ?", conferenceID, models.RoleReviewer).
		Pluck("user_id", &reviewerIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load reviewers for conference %d: %w", conferenceID, err)
	}

	var prefs []models.Preference
	if err := s.db.
		Joins("JOIN papers ON papers.paper_id = preferences.paper_id").
		Where("papers.conference_id = ?", conferenceID).
		Find(&prefs).Error; err != nil {
		return nil, fmt.Errorf("failed to load preferences for conference %d: %w", conferenceID, err)
	}

	preferences := make(map[optimizer.PairKey]optimizer.Label, len(prefs))
	for _, pref := range prefs {
		key := optimizer.PairKey{PaperID: pref.PaperID, ReviewerID: pref.ReviewerID}
		preferences[key] = optimizer.Label(pref.Preference)
	}

	return &Snapshot{
		Conference:  conference,
		Papers:      papers,
		ReviewerIDs: reviewerIDs,
		Preferences: preferences,
	}, nil
}
