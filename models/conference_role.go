package models

// Conference role names.
const (
	RoleAdmin    = "admin"
	RoleReviewer = "reviewer"
	RoleAuthor   = "author"
)

// ConferenceRole records that a user holds a role within one conference.
// A user may hold the same role in many conferences.
type ConferenceRole struct {
	RoleID       int    `gorm:"primaryKey;column:role_id" json:"role_id"`
	UserID       int    `gorm:"column:user_id;index:idx_conference_roles_user" json:"user_id"`
	ConferenceID int    `gorm:"column:conference_id;index:idx_conference_roles_conference" json:"conference_id"`
	Role         string `gorm:"column:role" json:"role"`

	User       *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Conference *Conference `gorm:"foreignKey:ConferenceID" json:"conference,omitempty"`
}

// TableName specifies the table name for ConferenceRole.
func (ConferenceRole) TableName() string {
	return "conference_roles"
}
