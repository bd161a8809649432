package models

import "time"

// Group represents the groups table (a community posts can be tagged to)
type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null;size:100" json:"title"`
	Slug        string `gorm:"uniqueIndex;not null;size:100" json:"slug"`
	Description string `gorm:"type:text;not null" json:"description"`
}

// TableName specifies the table name for Group model
func (Group) TableName() string {
	return "groups"
}

// Post represents the posts table
type Post struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	PubDate  time.Time `gorm:"autoCreateTime" json:"pub_date"`
	AuthorID uint      `gorm:"not null;index" json:"author_id"`
	Image    *string   `gorm:"size:255" json:"image"`
	GroupID  *uint     `gorm:"index" json:"group_id"`
	Author   User      `gorm:"foreignKey:AuthorID" json:"-"`
	Group    *Group    `gorm:"foreignKey:GroupID" json:"-"`
}

// TableName specifies the table name for Post model
func (Post) TableName() string {
	return "posts"
}

// Comment represents the comments table
type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	Created  time.Time `gorm:"autoCreateTime" json:"created"`
	AuthorID uint      `gorm:"not null;index" json:"author_id"`
	PostID   uint      `gorm:"not null;index" json:"post_id"`
	Author   User      `gorm:"foreignKey:AuthorID" json:"-"`
	Post     Post      `gorm:"foreignKey:PostID" json:"-"`
}

// TableName specifies the table name for Comment model
func (Comment) TableName() string {
	return "comments"
}
