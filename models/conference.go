package models

import "time"

// Blinding status values for Conference.Status.
const (
	BlindStatusNone   = "none"
	BlindStatusSingle = "single_blind"
	BlindStatusDouble = "double_blind"
)

type Conference struct {
	ConferenceID   int        `gorm:"primaryKey;column:conference_id" json:"conference_id"`
	Title          string     `gorm:"column:title" json:"title"`
	Description    string     `gorm:"column:description" json:"description"`
	AdminID        int        `gorm:"column:admin_id" json:"admin_id"`
	Deadline       *time.Time `gorm:"column:deadline" json:"deadline,omitempty"`
	PapersDeadline *time.Time `gorm:"column:papers_deadline" json:"papers_deadline,omitempty"`
	CreatedAt      *time.Time `gorm:"column:created_at" json:"created_at,omitempty"`
	Status         string     `gorm:"column:status;default:none" json:"status"`

	// AutomaticAssignStatus is set true only after an engine run has
	// durably replaced the conference's assignment set.
	AutomaticAssignStatus bool `gorm:"column:automatic_assign_status" json:"automatic_assign_status"`

	Admin *User `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}

// TableName specifies the table name for Conference.
func (Conference) TableName() string {
	return "conferences"
}
