package repository

import (
	"errors"

	"yatube-api/internal/models"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// FindByID finds a post by primary key with its author preloaded,
// nil when absent
func (r *PostRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// List returns a page of posts ordered by primary key
func (r *PostRepository) List(limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Count returns the total number of posts
func (r *PostRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}

// Create inserts a post and reloads it with the author preloaded
func (r *PostRepository) Create(post *models.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return err
	}
	return r.db.Preload("Author").First(post, post.ID).Error
}

// Update applies the given fields and returns the refreshed post
func (r *PostRepository) Update(id uint, fields map[string]interface{}) (*models.Post, error) {
	err := r.db.Model(&models.Post{}).
		Where("id = ?", id).
		Updates(fields).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes a post by primary key
func (r *PostRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}
