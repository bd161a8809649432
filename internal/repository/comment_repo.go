package repository

import (
	"errors"

	"yatube-api/internal/models"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// FindByPostAndID resolves a comment by its compound key. A comment that
// exists under a different post is treated as absent.
func (r *CommentRepository) FindByPostAndID(postID, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Author").
		Where("post_id = ? AND id = ?", postID, id).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// ListByPost returns all comments on a post
func (r *CommentRepository) ListByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").
		Where("post_id = ?", postID).
		Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// List returns all comments, for the admin console
func (r *CommentRepository) List() ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").Order("id").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Create inserts a comment and reloads it with the author preloaded
func (r *CommentRepository) Create(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return err
	}
	return r.db.Preload("Author").First(comment, comment.ID).Error
}

// Update changes the comment text and returns the refreshed comment
func (r *CommentRepository) Update(postID, id uint, text string) (*models.Comment, error) {
	err := r.db.Model(&models.Comment{}).
		Where("id = ?", id).
		Update("text", text).Error
	if err != nil {
		return nil, err
	}
	return r.FindByPostAndID(postID, id)
}

// Delete removes a comment by primary key
func (r *CommentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
