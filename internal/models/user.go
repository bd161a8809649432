package models

import "time"

// Roles as stored in the users table. Registration always assigns
// RoleUser; the other roles are granted out-of-band.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
	RoleRoot      = "root"
)

// User represents the users table
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Username     string     `gorm:"uniqueIndex;not null;size:50" json:"username"`
	PasswordHash string     `gorm:"not null;size:255" json:"-"`
	Role         string     `gorm:"type:enum('user','moderator','admin','root');default:'user'" json:"role"`
	FirstName    *string    `gorm:"size:100;index" json:"first_name"`
	LastName     *string    `gorm:"size:100;index" json:"last_name"`
	DateJoined   time.Time  `gorm:"autoCreateTime" json:"date_joined"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// Follow represents the follows table: a directed edge from the
// subscribing user to the user being followed, unique per ordered pair.
type Follow struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	UserID      uint `gorm:"not null;uniqueIndex:unique_follow" json:"user_id"`
	FollowingID uint `gorm:"not null;uniqueIndex:unique_follow" json:"following_id"`
	User        User `gorm:"foreignKey:UserID" json:"-"`
	Following   User `gorm:"foreignKey:FollowingID" json:"-"`
}

// TableName specifies the table name for Follow model
func (Follow) TableName() string {
	return "follows"
}
