package service

import (
	"time"

	"yatube-api/internal/models"
)

// In-memory fakes for the persistence interfaces, shared by the service
// tests in this package.

type fakeUsers struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[uint]*models.User), nextID: 1}
}

func (f *fakeUsers) add(user models.User) *models.User {
	user.ID = f.nextID
	f.nextID++
	stored := user
	f.users[stored.ID] = &stored
	return &stored
}

func (f *fakeUsers) FindByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) FindByUsername(username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) FindByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (f *fakeUsers) Create(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	user.DateJoined = time.Now()
	stored := *user
	f.users[stored.ID] = &stored
	return nil
}

func (f *fakeUsers) UpdateLastLogin(id uint, at time.Time) error {
	if user, ok := f.users[id]; ok {
		user.LastLogin = &at
	}
	return nil
}

type fakeFollows struct {
	users   *fakeUsers
	follows []models.Follow
	nextID  uint
}

func newFakeFollows(users *fakeUsers) *fakeFollows {
	return &fakeFollows{users: users, nextID: 1}
}

func (f *fakeFollows) Find(userID, followingID uint) (*models.Follow, error) {
	for i := range f.follows {
		if f.follows[i].UserID == userID && f.follows[i].FollowingID == followingID {
			return &f.follows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeFollows) ListByFollower(userID uint) ([]models.Follow, error) {
	var result []models.Follow
	for _, follow := range f.follows {
		if follow.UserID == userID {
			if following, ok := f.users.users[follow.FollowingID]; ok {
				follow.Following = *following
			}
			result = append(result, follow)
		}
	}
	return result, nil
}

func (f *fakeFollows) Create(follow *models.Follow) error {
	follow.ID = f.nextID
	f.nextID++
	f.follows = append(f.follows, *follow)
	return nil
}

type fakePosts struct {
	users  *fakeUsers
	posts  map[uint]*models.Post
	nextID uint
}

func newFakePosts(users *fakeUsers) *fakePosts {
	return &fakePosts{users: users, posts: make(map[uint]*models.Post), nextID: 1}
}

func (f *fakePosts) add(post models.Post) *models.Post {
	post.ID = f.nextID
	f.nextID++
	f.loadAuthor(&post)
	stored := post
	f.posts[stored.ID] = &stored
	return &stored
}

func (f *fakePosts) loadAuthor(post *models.Post) {
	if author, ok := f.users.users[post.AuthorID]; ok {
		post.Author = *author
	}
}

func (f *fakePosts) FindByID(id uint) (*models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	return post, nil
}

func (f *fakePosts) List(limit, offset int) ([]models.Post, error) {
	var result []models.Post
	for id := uint(1); id < f.nextID; id++ {
		if post, ok := f.posts[id]; ok {
			result = append(result, *post)
		}
	}
	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakePosts) Count() (int64, error) {
	return int64(len(f.posts)), nil
}

func (f *fakePosts) Create(post *models.Post) error {
	post.ID = f.nextID
	f.nextID++
	f.loadAuthor(post)
	stored := *post
	f.posts[stored.ID] = &stored
	return nil
}

func (f *fakePosts) Update(id uint, fields map[string]interface{}) (*models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	if text, ok := fields["text"].(string); ok {
		post.Text = text
	}
	if groupID, ok := fields["group_id"].(uint); ok {
		post.GroupID = &groupID
	}
	if image, ok := fields["image"].(string); ok {
		post.Image = &image
	}
	return post, nil
}

func (f *fakePosts) Delete(id uint) error {
	delete(f.posts, id)
	return nil
}

type fakeComments struct {
	users    *fakeUsers
	comments map[uint]*models.Comment
	nextID   uint
}

func newFakeComments(users *fakeUsers) *fakeComments {
	return &fakeComments{users: users, comments: make(map[uint]*models.Comment), nextID: 1}
}

func (f *fakeComments) add(comment models.Comment) *models.Comment {
	comment.ID = f.nextID
	f.nextID++
	stored := comment
	f.comments[stored.ID] = &stored
	return &stored
}

func (f *fakeComments) FindByPostAndID(postID, id uint) (*models.Comment, error) {
	comment, ok := f.comments[id]
	if !ok || comment.PostID != postID {
		return nil, nil
	}
	return comment, nil
}

func (f *fakeComments) ListByPost(postID uint) ([]models.Comment, error) {
	var result []models.Comment
	for id := uint(1); id < f.nextID; id++ {
		if comment, ok := f.comments[id]; ok && comment.PostID == postID {
			result = append(result, *comment)
		}
	}
	return result, nil
}

func (f *fakeComments) Create(comment *models.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	if author, ok := f.users.users[comment.AuthorID]; ok {
		comment.Author = *author
	}
	stored := *comment
	f.comments[stored.ID] = &stored
	return nil
}

func (f *fakeComments) Update(postID, id uint, text string) (*models.Comment, error) {
	comment, err := f.FindByPostAndID(postID, id)
	if err != nil || comment == nil {
		return nil, err
	}
	comment.Text = text
	return comment, nil
}

func (f *fakeComments) Delete(id uint) error {
	delete(f.comments, id)
	return nil
}

type fakeGroups struct {
	groups map[uint]*models.Group
	nextID uint
}

func newFakeGroups() *fakeGroups {
	return &fakeGroups{groups: make(map[uint]*models.Group), nextID: 1}
}

func (f *fakeGroups) add(group models.Group) *models.Group {
	group.ID = f.nextID
	f.nextID++
	stored := group
	f.groups[stored.ID] = &stored
	return &stored
}

func (f *fakeGroups) FindByID(id uint) (*models.Group, error) {
	group, ok := f.groups[id]
	if !ok {
		return nil, nil
	}
	return group, nil
}

func (f *fakeGroups) List() ([]models.Group, error) {
	var result []models.Group
	for id := uint(1); id < f.nextID; id++ {
		if group, ok := f.groups[id]; ok {
			result = append(result, *group)
		}
	}
	return result, nil
}

func (f *fakeGroups) Update(id uint, fields map[string]interface{}) (*models.Group, error) {
	group, ok := f.groups[id]
	if !ok {
		return nil, nil
	}
	if title, ok := fields["title"].(string); ok {
		group.Title = title
	}
	if slug, ok := fields["slug"].(string); ok {
		group.Slug = slug
	}
	if description, ok := fields["description"].(string); ok {
		group.Description = description
	}
	return group, nil
}

func (f *fakeGroups) Delete(id uint) error {
	delete(f.groups, id)
	return nil
}
