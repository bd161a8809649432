package service

import (
	"yatube-api/internal/apperr"
	"yatube-api/internal/models"
)

type CommentService struct {
	comments CommentStore
	posts    PostStore
	users    UserDirectory
	guard    *OwnershipGuard
}

func NewCommentService(comments CommentStore, posts PostStore, users UserDirectory, guard *OwnershipGuard) *CommentService {
	return &CommentService{
		comments: comments,
		posts:    posts,
		users:    users,
		guard:    guard,
	}
}

// ListByPost returns all comments on an existing post.
func (s *CommentService) ListByPost(postID uint) ([]models.Comment, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.ErrNotFound
	}

	return s.comments.ListByPost(postID)
}

// Get resolves a comment by its compound key. A comment living under a
// different post is NotFound.
func (s *CommentService) Get(postID, id uint) (*models.Comment, error) {
	comment, err := s.comments.FindByPostAndID(postID, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperr.ErrNotFound
	}
	return comment, nil
}

// Create adds a comment to an existing post, authored by the token
// subject.
func (s *CommentService) Create(postID uint, subject, text string) (*models.Comment, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.ErrNotFound
	}

	user, err := s.users.FindByEmail(subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrNotFound
	}

	comment := &models.Comment{
		Text:     text,
		AuthorID: user.ID,
		PostID:   postID,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Update edits a comment. Only the author may do so.
func (s *CommentService) Update(postID, id uint, subject, text string) (*models.Comment, error) {
	comment, err := s.comments.FindByPostAndID(postID, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.guard.AuthorizeMutation(comment != nil, commentAuthorOf(comment), subject); err != nil {
		return nil, err
	}

	return s.comments.Update(postID, id, text)
}

// Delete removes a comment. Only the author may do so.
func (s *CommentService) Delete(postID, id uint, subject string) error {
	comment, err := s.comments.FindByPostAndID(postID, id)
	if err != nil {
		return err
	}
	if _, err := s.guard.AuthorizeMutation(comment != nil, commentAuthorOf(comment), subject); err != nil {
		return err
	}

	return s.comments.Delete(id)
}

func commentAuthorOf(comment *models.Comment) uint {
	if comment == nil {
		return 0
	}
	return comment.AuthorID
}
