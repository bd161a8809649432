package service

import (
	"yatube-api/internal/apperr"
	"yatube-api/internal/models"
)

type PostService struct {
	posts  PostStore
	groups GroupStore
	users  UserDirectory
	guard  *OwnershipGuard
}

func NewPostService(posts PostStore, groups GroupStore, users UserDirectory, guard *OwnershipGuard) *PostService {
	return &PostService{
		posts:  posts,
		groups: groups,
		users:  users,
		guard:  guard,
	}
}

// PostInput carries the mutable fields of a post.
type PostInput struct {
	Text    string
	Image   *string
	GroupID *uint
}

// List returns a page of posts and the total count.
func (s *PostService) List(limit, offset int) ([]models.Post, int64, error) {
	posts, err := s.posts.List(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.posts.Count()
	if err != nil {
		return nil, 0, err
	}
	return posts, count, nil
}

// Get returns a single post by id.
func (s *PostService) Get(id uint) (*models.Post, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.ErrNotFound
	}
	return post, nil
}

// Create publishes a new post authored by the token subject. A stated
// group must exist.
func (s *PostService) Create(subject string, input PostInput) (*models.Post, error) {
	if input.GroupID != nil {
		group, err := s.groups.FindByID(*input.GroupID)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, apperr.ErrNotFound
		}
	}

	user, err := s.users.FindByEmail(subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrNotFound
	}

	post := &models.Post{
		Text:     input.Text,
		Image:    input.Image,
		GroupID:  input.GroupID,
		AuthorID: user.ID,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update edits a post. Only the author may do so; the ownership check
// runs before the group existence check.
func (s *PostService) Update(id uint, subject string, input PostInput) (*models.Post, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.guard.AuthorizeMutation(post != nil, authorOf(post), subject); err != nil {
		return nil, err
	}

	if input.GroupID != nil {
		group, err := s.groups.FindByID(*input.GroupID)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, apperr.ErrNotFound
		}
	}

	fields := map[string]interface{}{"text": input.Text}
	if input.GroupID != nil {
		fields["group_id"] = *input.GroupID
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}

	return s.posts.Update(id, fields)
}

// Delete removes a post. Only the author may do so.
func (s *PostService) Delete(id uint, subject string) error {
	post, err := s.posts.FindByID(id)
	if err != nil {
		return err
	}
	if _, err := s.guard.AuthorizeMutation(post != nil, authorOf(post), subject); err != nil {
		return err
	}

	return s.posts.Delete(id)
}

func authorOf(post *models.Post) uint {
	if post == nil {
		return 0
	}
	return post.AuthorID
}
