package service

import (
	"time"

	"yatube-api/internal/models"
)

// UserDirectory defines the identity lookups every authorization decision
// depends on. Absent records are reported as (nil, nil).
type UserDirectory interface {
	FindByEmail(email string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	Create(user *models.User) error
	UpdateLastLogin(id uint, at time.Time) error
}

// FollowDirectory defines persistence for follow edges.
type FollowDirectory interface {
	Find(userID, followingID uint) (*models.Follow, error)
	ListByFollower(userID uint) ([]models.Follow, error)
	Create(follow *models.Follow) error
}

// PostStore defines persistence operations for posts.
type PostStore interface {
	FindByID(id uint) (*models.Post, error)
	List(limit, offset int) ([]models.Post, error)
	Count() (int64, error)
	Create(post *models.Post) error
	Update(id uint, fields map[string]interface{}) (*models.Post, error)
	Delete(id uint) error
}

// CommentStore defines persistence operations for comments. Comments are
// addressed by the compound key {post id, comment id}.
type CommentStore interface {
	FindByPostAndID(postID, id uint) (*models.Comment, error)
	ListByPost(postID uint) ([]models.Comment, error)
	Create(comment *models.Comment) error
	Update(postID, id uint, text string) (*models.Comment, error)
	Delete(id uint) error
}

// GroupStore defines persistence operations for groups.
type GroupStore interface {
	FindByID(id uint) (*models.Group, error)
	List() ([]models.Group, error)
	Update(id uint, fields map[string]interface{}) (*models.Group, error)
	Delete(id uint) error
}
