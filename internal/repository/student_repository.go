package repository

import (
	"context"

	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/riyaziyyat/exam-backend/internal/store"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	st store.Store
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(st store.Store) *StudentRepository {
	return &StudentRepository{st: st}
}

// List retrieves all students in insertion order.
func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	students := make([]model.Student, 0)
	if err := r.st.Find(ctx, store.Students, nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// ListByEmail retrieves every student using the given login key.
func (r *StudentRepository) ListByEmail(ctx context.Context, email string) ([]model.Student, error) {
	students := make([]model.Student, 0)
	if err := r.st.Find(ctx, store.Students, store.Filter{"email": email}, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*model.Student, error) {
	s := &model.Student{}
	if err := r.st.FindOne(ctx, store.Students, store.ByID(id), s); err != nil {
		return nil, err
	}
	return s, nil
}

// CountInGroup counts the students that reference a group by name.
func (r *StudentRepository) CountInGroup(ctx context.Context, group string) (int64, error) {
	return r.st.Count(ctx, store.Students, store.Filter{"group": group})
}

// Count counts all students.
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	return r.st.Count(ctx, store.Students, nil)
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	return r.st.Insert(ctx, store.Students, s)
}

// CreateMany inserts several students at once.
func (r *StudentRepository) CreateMany(ctx context.Context, students []model.Student) error {
	docs := make([]any, 0, len(students))
	for i := range students {
		docs = append(docs, &students[i])
	}
	return r.st.InsertMany(ctx, store.Students, docs)
}

// Update replaces an existing student.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	return r.st.Replace(ctx, store.Students, s.ID, s)
}

// SetPassword overwrites the stored password value only.
func (r *StudentRepository) SetPassword(ctx context.Context, id, password string) error {
	return r.st.SetFields(ctx, store.Students, id, store.Filter{"pass": password})
}

// Delete removes a student by ID.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	return r.st.DeleteOne(ctx, store.Students, store.ByID(id))
}
