package models

// Paper submission status values.
const (
	PaperStatusSubmitted = "submitted"
	PaperStatusAccepted  = "accepted"
	PaperStatusRejected  = "rejected"
)

// Paper belongs to exactly one conference. The assignment engine treats
// papers as read-only input.
type Paper struct {
	PaperID      int     `gorm:"primaryKey;column:paper_id" json:"paper_id"`
	Title        string  `gorm:"column:title" json:"title"`
	ConferenceID int     `gorm:"column:conference_id;index:idx_papers_conference" json:"conference_id"`
	AuthorID     int     `gorm:"column:author_id" json:"author_id"`
	Status       string  `gorm:"column:status;default:submitted" json:"status"`
	FilePath     *string `gorm:"column:file_path" json:"file_path,omitempty"`

	Conference *Conference `gorm:"foreignKey:ConferenceID" json:"conference,omitempty"`
	Author     *User       `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName specifies the table name for Paper.
func (Paper) TableName() string {
	return "papers"
}
