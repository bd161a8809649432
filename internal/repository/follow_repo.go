package repository

import (
	"errors"

	"yatube-api/internal/models"

	"gorm.io/gorm"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Find looks up the directed edge (userID -> followingID), nil when absent
func (r *FollowRepository) Find(userID, followingID uint) (*models.Follow, error) {
	var follow models.Follow
	err := r.db.Where("user_id = ? AND following_id = ?", userID, followingID).
		First(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &follow, nil
}

// ListByFollower returns all subscriptions of a user, with the followed
// user preloaded for display.
func (r *FollowRepository) ListByFollower(userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.Where("user_id = ?", userID).
		Preload("Following").
		Find(&follows).Error
	if err != nil {
		return nil, err
	}
	return follows, nil
}

// Create inserts a follow edge
func (r *FollowRepository) Create(follow *models.Follow) error {
	return r.db.Create(follow).Error
}
