package models

// User identifies a platform account. Authentication lives outside this
// service; every entry point receives the acting user's ID explicitly.
type User struct {
	UserID    int    `gorm:"primaryKey;column:user_id" json:"user_id"`
	FirstName string `gorm:"column:first_name" json:"first_name"`
	LastName  string `gorm:"column:last_name" json:"last_name"`
	Email     string `gorm:"column:email;unique" json:"email"`
}

// TableName specifies the table name for User.
func (User) TableName() string {
	return "users"
}
