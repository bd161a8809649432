package service

import (
	"yatube-api/internal/apperr"
	"yatube-api/internal/models"
)

type GroupService struct {
	groups GroupStore
}

func NewGroupService(groups GroupStore) *GroupService {
	return &GroupService{groups: groups}
}

// List returns all communities.
func (s *GroupService) List() ([]models.Group, error) {
	return s.groups.List()
}

// Get returns a community by id.
func (s *GroupService) Get(id uint) (*models.Group, error) {
	group, err := s.groups.FindByID(id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperr.ErrNotFound
	}
	return group, nil
}
