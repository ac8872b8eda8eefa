package services

import (
	"fmt"
	"strings"

	"yatube/app/models"
	"yatube/app/repositories"
)

// GroupService handles business logic for groups. Group creation is an
// administrative action; groups are never deleted through the web flows,
// but deletion support exists and detaches referencing posts instead of
// removing them.
type GroupService struct {
	groupRepo repositories.GroupRepository
	postRepo  repositories.PostRepository
}

// NewGroupService creates a new GroupService
func NewGroupService(groupRepo repositories.GroupRepository, postRepo repositories.PostRepository) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		postRepo:  postRepo,
	}
}

// CreateGroup creates a new group with a unique slug
func (s *GroupService) CreateGroup(title, slug, description string) (*models.Group, error) {
	group := &models.Group{
		Title:       strings.TrimSpace(title),
		Slug:        strings.TrimSpace(slug),
		Description: strings.TrimSpace(description),
	}
	if err := group.Validate(); err != nil {
		return nil, fmt.Errorf("invalid group: %v", err)
	}
	if err := s.groupRepo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

// GetBySlug retrieves a group by its slug
func (s *GroupService) GetBySlug(slug string) (*models.Group, error) {
	return s.groupRepo.GetBySlug(slug)
}

// ListGroups retrieves all groups, for the post form's group selector
func (s *GroupService) ListGroups() ([]*models.Group, error) {
	return s.groupRepo.List()
}

// DeleteGroup removes a group. Posts assigned to it are kept and detached,
// not deleted.
func (s *GroupService) DeleteGroup(id int) error {
	if _, err := s.groupRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.postRepo.ClearGroup(id); err != nil {
		return fmt.Errorf("failed to detach posts: %v", err)
	}
	return s.groupRepo.Delete(id)
}
