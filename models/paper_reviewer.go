package models

// Assignment status values.
const (
	AssignmentStatusAssigned = "assigned"
	AssignmentStatusReviewed = "reviewed"
	AssignmentStatusApproved = "approved"
)

// PaperReviewer is a committed (paper, reviewer) reviewing relationship.
// The whole set for a conference is written by one engine run and fully
// replaced by the next; rows never survive a re-run they are not part of.
type PaperReviewer struct {
	AssignmentID int    `gorm:"primaryKey;column:assignment_id" json:"assignment_id"`
	PaperID      int    `gorm:"column:paper_id;index:idx_paper_reviewers_paper" json:"paper_id"`
	ReviewerID   int    `gorm:"column:reviewer_id;index:idx_paper_reviewers_reviewer" json:"reviewer_id"`
	ConferenceID int    `gorm:"column:conference_id;index:idx_paper_reviewers_conference" json:"conference_id"`
	Status       string `gorm:"column:status;default:assigned" json:"status"`

	Paper      *Paper      `gorm:"foreignKey:PaperID" json:"paper,omitempty"`
	Reviewer   *User       `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Conference *Conference `gorm:"foreignKey:ConferenceID" json:"conference,omitempty"`
}

// TableName specifies the table name for PaperReviewer.
func (PaperReviewer) TableName() string {
	return "paper_reviewers"
}
