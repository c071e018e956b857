package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"conference-review-api/models"
)

func preferenceFixture(t *testing.T) (*PreferenceService, *models.Paper) {
	db := newTestDB(t)
	admin := createUser(t, db, 1)
	reviewer := createUser(t, db, 2)
	conference := createConference(t, db, 1, admin.UserID)
	grantRole(t, db, admin.UserID, conference.ConferenceID, models.RoleAdmin)
	grantRole(t, db, reviewer.UserID, conference.ConferenceID, models.RoleReviewer)
	paper := createPaper(t, db, 1, conference.ConferenceID, admin.UserID)
	return NewPreferenceService(db), &paper
}

func TestRecordPreferenceStoresLabel(t *testing.T) {
	svc, paper := preferenceFixture(t)

	err := svc.RecordPreference(paper.PaperID, 2, models.PreferenceInterested)
	assert.NoError(t, err)

	var prefs []models.Preference
	assert.NoError(t, svc.db.Find(&prefs).Error)
	assert.Len(t, prefs, 1)
	assert.Equal(t, models.PreferenceInterested, prefs[0].Preference)
}

func TestRecordPreferenceReplacesOpposite(t *testing.T) {
	svc, paper := preferenceFixture(t)

	assert.NoError(t, svc.RecordPreference(paper.PaperID, 2, models.PreferenceNotInterested))
	assert.NoError(t, svc.RecordPreference(paper.PaperID, 2, models.PreferenceInterested))

	var prefs []models.Preference
	assert.NoError(t, svc.db.Where("paper_id = ? AND reviewer_id = ?", paper.PaperID, 2).Find(&prefs).Error)
	assert.Len(t, prefs, 1, "exactly one preference row must survive")
	assert.Equal(t, models.PreferenceInterested, prefs[0].Preference)
}

func TestRecordPreferenceDuplicateRejected(t *testing.T) {
	svc, paper := preferenceFixture(t)

	assert.NoError(t, svc.RecordPreference(paper.PaperID, 2, models.PreferenceInterested))
	err := svc.RecordPreference(paper.PaperID, 2, models.PreferenceInterested)
	assert.ErrorIs(t, err, ErrConflict)

	var count int64
	assert.NoError(t, svc.db.Model(&models.Preference{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRecordPreferenceRequiresReviewerRole(t *testing.T) {
	svc, paper := preferenceFixture(t)
	outsider := createUser(t, svc.db, 50)

	err := svc.RecordPreference(paper.PaperID, outsider.UserID, models.PreferenceInterested)
	assert.ErrorIs(t, err, ErrAuthorization)
}

func TestRecordPreferenceUnknownPaperOrReviewer(t *testing.T) {
	svc, paper := preferenceFixture(t)

	assert.ErrorIs(t, svc.RecordPreference(999, 2, models.PreferenceInterested), ErrNotFound)
	assert.ErrorIs(t, svc.RecordPreference(paper.PaperID, 999, models.PreferenceInterested), ErrNotFound)
}

func TestRecordPreferenceInvalidLabel(t *testing.T) {
	svc, paper := preferenceFixture(t)

	assert.ErrorIs(t, svc.RecordPreference(paper.PaperID, 2, "maybe"), ErrValidation)
}
