package repository

import (
	"context"

	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/riyaziyyat/exam-backend/internal/store"
)

// ExamRepository handles exam data access. Questions are stored inside the
// exam document.
type ExamRepository struct {
	st store.Store
}

// NewExamRepository creates a new ExamRepository.
func NewExamRepository(st store.Store) *ExamRepository {
	return &ExamRepository{st: st}
}

// List retrieves all exams.
func (r *ExamRepository) List(ctx context.Context) ([]model.Exam, error) {
	exams := make([]model.Exam, 0)
	if err := r.st.Find(ctx, store.Exams, nil, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

// GetByID retrieves an exam by ID.
func (r *ExamRepository) GetByID(ctx context.Context, id string) (*model.Exam, error) {
	e := &model.Exam{}
	if err := r.st.FindOne(ctx, store.Exams, store.ByID(id), e); err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts a new exam.
func (r *ExamRepository) Create(ctx context.Context, e *model.Exam) error {
	return r.st.Insert(ctx, store.Exams, e)
}

// CreateMany inserts several exams at once.
func (r *ExamRepository) CreateMany(ctx context.Context, exams []model.Exam) error {
	docs := make([]any, 0, len(exams))
	for i := range exams {
		docs = append(docs, &exams[i])
	}
	return r.st.InsertMany(ctx, store.Exams, docs)
}

// Update replaces an existing exam.
func (r *ExamRepository) Update(ctx context.Context, e *model.Exam) error {
	return r.st.Replace(ctx, store.Exams, e.ID, e)
}

// Delete removes an exam by ID. Submissions are not touched.
func (r *ExamRepository) Delete(ctx context.Context, id string) error {
	return r.st.DeleteOne(ctx, store.Exams, store.ByID(id))
}
