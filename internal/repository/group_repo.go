package repository

import (
	"errors"

	"yatube-api/internal/models"

	"gorm.io/gorm"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// FindByID finds a group by primary key, nil when absent
func (r *GroupRepository) FindByID(id uint) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

// List returns all groups
func (r *GroupRepository) List() ([]models.Group, error) {
	var groups []models.Group
	err := r.db.Order("id").Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// Create inserts a group
func (r *GroupRepository) Create(group *models.Group) error {
	return r.db.Create(group).Error
}

// Update applies the given fields to a group
func (r *GroupRepository) Update(id uint, fields map[string]interface{}) (*models.Group, error) {
	err := r.db.Model(&models.Group{}).
		Where("id = ?", id).
		Updates(fields).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes a group by primary key
func (r *GroupRepository) Delete(id uint) error {
	return r.db.Delete(&models.Group{}, id).Error
}
