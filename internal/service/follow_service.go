package service

import (
	"errors"
	"fmt"

	"yatube-api/internal/apperr"
	"yatube-api/internal/models"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

type FollowService struct {
	users   UserDirectory
	follows FollowDirectory
}

func NewFollowService(users UserDirectory, follows FollowDirectory) *FollowService {
	return &FollowService{
		users:   users,
		follows: follows,
	}
}

// Subscription pairs the follower and followed usernames for display.
type Subscription struct {
	User      string `json:"user"`
	Following string `json:"following"`
}

// Subscribe creates a follow edge from the requesting identity to the
// named user. The checks run in a fixed order so the first failing one
// determines the reported error: self-follow, then target existence,
// then duplicate.
func (s *FollowService) Subscribe(subject, following string) (*Subscription, error) {
	user, err := s.users.FindByEmail(subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrNotFound
	}

	if user.Username == following {
		return nil, apperr.ErrSelfFollow
	}

	target, err := s.users.FindByUsername(following)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperr.ErrNotFound
	}

	existing, err := s.follows.Find(user.ID, target.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ErrDuplicateFollow
	}

	err = s.follows.Create(&models.Follow{UserID: user.ID, FollowingID: target.ID})
	if err != nil {
		// Two racing subscriptions can both pass the existence check;
		// the table's unique constraint settles it.
		if isDuplicateEntry(err) {
			return nil, apperr.ErrDuplicateFollow
		}
		return nil, fmt.Errorf("failed to create follow: %w", err)
	}

	return &Subscription{User: user.Username, Following: target.Username}, nil
}

// Subscriptions lists everyone the requesting identity follows.
func (s *FollowService) Subscriptions(subject string) ([]Subscription, error) {
	user, err := s.users.FindByEmail(subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrNotFound
	}

	follows, err := s.follows.ListByFollower(user.ID)
	if err != nil {
		return nil, err
	}

	subscriptions := make([]Subscription, 0, len(follows))
	for _, follow := range follows {
		subscriptions = append(subscriptions, Subscription{
			User:      user.Username,
			Following: follow.Following.Username,
		})
	}
	return subscriptions, nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
