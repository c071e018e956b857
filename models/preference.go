package models

// Preference labels. Absence of a row is the third, implicit state
// ("neutral"); it is never stored, so the table only grows with explicit
// signals.
const (
	PreferenceInterested    = "interested"
	PreferenceNotInterested = "not_interested"
)

// Preference is a reviewer's stated interest in reviewing one paper.
// At most one row exists per (paper, reviewer) pair: recording a label
// removes a previously recorded opposite label.
type Preference struct {
	PreferenceID int    `gorm:"primaryKey;column:preference_id" json:"preference_id"`
	PaperID      int    `gorm:"column:paper_id;index:idx_preferences_pair" json:"paper_id"`
	ReviewerID   int    `gorm:"column:reviewer_id;index:idx_preferences_pair" json:"reviewer_id"`
	Preference   string `gorm:"column:preference" json:"preference"`

	Paper    *Paper `gorm:"foreignKey:PaperID" json:"paper,omitempty"`
	Reviewer *User  `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}

// TableName specifies the table name for Preference.
func (Preference) TableName() string {
	return "preferences"
}

// OppositePreference returns the label that must be cleared when the given
// label is recorded for a pair.
func OppositePreference(label string) string {
	if label == PreferenceInterested {
		return PreferenceNotInterested
	}
	return PreferenceInterested
}
