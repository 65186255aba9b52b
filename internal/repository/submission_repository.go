package repository

import (
	"context"

	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/riyaziyyat/exam-backend/internal/store"
)

// SubmissionRepository handles submission data access.
type SubmissionRepository struct {
	st store.Store
}

// NewSubmissionRepository creates a new SubmissionRepository.
func NewSubmissionRepository(st store.Store) *SubmissionRepository {
	return &SubmissionRepository{st: st}
}

func (r *SubmissionRepository) find(ctx context.Context, filter store.Filter) ([]model.Submission, error) {
	subs := make([]model.Submission, 0)
	if err := r.st.Find(ctx, store.Submissions, filter, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// List retrieves all submissions.
func (r *SubmissionRepository) List(ctx context.Context) ([]model.Submission, error) {
	return r.find(ctx, nil)
}

// ListByExam retrieves the submissions of one exam.
func (r *SubmissionRepository) ListByExam(ctx context.Context, examID string) ([]model.Submission, error) {
	return r.find(ctx, store.Filter{"examId": examID})
}

// ListFlagged retrieves submissions marked as possible cheating.
func (r *SubmissionRepository) ListFlagged(ctx context.Context) ([]model.Submission, error) {
	return r.find(ctx, store.Filter{"cheatingDetected": true})
}

// GetByID retrieves a submission by ID.
func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	s := &model.Submission{}
	if err := r.st.FindOne(ctx, store.Submissions, store.ByID(id), s); err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new submission.
func (r *SubmissionRepository) Create(ctx context.Context, s *model.Submission) error {
	return r.st.Insert(ctx, store.Submissions, s)
}

// CreateMany inserts several submissions at once.
func (r *SubmissionRepository) CreateMany(ctx context.Context, subs []model.Submission) error {
	docs := make([]any, 0, len(subs))
	for i := range subs {
		docs = append(docs, &subs[i])
	}
	return r.st.InsertMany(ctx, store.Submissions, docs)
}

// SetCheatingDetected overwrites the cheating flag of one submission.
func (r *SubmissionRepository) SetCheatingDetected(ctx context.Context, id string, flagged bool) error {
	return r.st.SetFields(ctx, store.Submissions, id, store.Filter{"cheatingDetected": flagged})
}

// Delete removes a submission by ID.
func (r *SubmissionRepository) Delete(ctx context.Context, id string) error {
	return r.st.DeleteOne(ctx, store.Submissions, store.ByID(id))
}

// DeleteByExam removes every submission of an exam and returns how many went.
func (r *SubmissionRepository) DeleteByExam(ctx context.Context, examID string) (int64, error) {
	return r.st.DeleteMany(ctx, store.Submissions, store.Filter{"examId": examID})
}
