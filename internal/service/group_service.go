package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/riyaziyyat/exam-backend/internal/repository"
)

// GroupService handles group business logic. A group cannot disappear or be
// renamed while students still reference its name.
type GroupService struct {
	groupRepo   *repository.GroupRepository
	studentRepo *repository.StudentRepository
}

// NewGroupService creates a new GroupService.
func NewGroupService(groupRepo *repository.GroupRepository, studentRepo *repository.StudentRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo, studentRepo: studentRepo}
}

// ListNames returns the names of all groups.
func (s *GroupService) ListNames(ctx context.Context) ([]string, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	return names, nil
}

// GetByName retrieves a group by name.
func (s *GroupService) GetByName(ctx context.Context, name string) (*model.Group, error) {
	g, err := s.groupRepo.GetByName(ctx, name)
	return g, translate(err)
}

// Create stores a new group. Duplicate names yield ErrConflict.
func (s *GroupService) Create(ctx context.Context, g *model.Group) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return translate(s.groupRepo.Create(ctx, g))
}

// Rename replaces the group currently called name with g, keeping its ID.
func (s *GroupService) Rename(ctx context.Context, name string, g *model.Group) error {
	existing, err := s.groupRepo.GetByName(ctx, name)
	if err != nil {
		return translate(err)
	}

	if g.Name != name {
		if err := s.ensureUnused(ctx, name); err != nil {
			return err
		}
	}

	g.ID = existing.ID
	return translate(s.groupRepo.Update(ctx, g))
}

// Delete removes a group by name unless a student still belongs to it.
func (s *GroupService) Delete(ctx context.Context, name string) error {
	if err := s.ensureUnused(ctx, name); err != nil {
		return err
	}
	return translate(s.groupRepo.DeleteByName(ctx, name))
}

func (s *GroupService) ensureUnused(ctx context.Context, name string) error {
	n, err := s.studentRepo.CountInGroup(ctx, name)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrHasDependents
	}
	return nil
}
