package repository

import (
	"context"

	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/riyaziyyat/exam-backend/internal/store"
)

// GroupRepository handles group data access. Groups are addressed by name.
type GroupRepository struct {
	st store.Store
}

// NewGroupRepository creates a new GroupRepository.
func NewGroupRepository(st store.Store) *GroupRepository {
	return &GroupRepository{st: st}
}

// List retrieves all groups.
func (r *GroupRepository) List(ctx context.Context) ([]model.Group, error) {
	groups := make([]model.Group, 0)
	if err := r.st.Find(ctx, store.Groups, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetByName retrieves a group by its unique name.
func (r *GroupRepository) GetByName(ctx context.Context, name string) (*model.Group, error) {
	g := &model.Group{}
	if err := r.st.FindOne(ctx, store.Groups, store.Filter{"name": name}, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Create inserts a new group.
func (r *GroupRepository) Create(ctx context.Context, g *model.Group) error {
	return r.st.Insert(ctx, store.Groups, g)
}

// CreateMany inserts several groups at once.
func (r *GroupRepository) CreateMany(ctx context.Context, groups []model.Group) error {
	docs := make([]any, 0, len(groups))
	for i := range groups {
		docs = append(docs, &groups[i])
	}
	return r.st.InsertMany(ctx, store.Groups, docs)
}

// Update replaces a group by its ID.
func (r *GroupRepository) Update(ctx context.Context, g *model.Group) error {
	return r.st.Replace(ctx, store.Groups, g.ID, g)
}

// DeleteByName removes a group by name.
func (r *GroupRepository) DeleteByName(ctx context.Context, name string) error {
	return r.st.DeleteOne(ctx, store.Groups, store.Filter{"name": name})
}
