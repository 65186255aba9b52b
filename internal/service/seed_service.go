package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/riyaziyyat/exam-backend/internal/logger"
	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/riyaziyyat/exam-backend/internal/repository"
	"github.com/riyaziyyat/exam-backend/internal/store"
	"github.com/rs/zerolog"
)

// Seed outcome messages.
const (
	SeedMessageDone       = "Data initialized successfully"
	SeedMessageExisting   = "Data already initialized"
	SeedMessageInProgress = "Data initialization already in progress"
)

// SeedResult reports what Seed did.
type SeedResult struct {
	Seeded  bool   `json:"seeded"`
	Message string `json:"message"`
}

// SeedService loads the sample data set into an empty store.
type SeedService struct {
	studentRepo    *repository.StudentRepository
	groupRepo      *repository.GroupRepository
	examRepo       *repository.ExamRepository
	submissionRepo *repository.SubmissionRepository
	passwords      PasswordMatcher
	lock           SeedLock
	log            zerolog.Logger
}

// NewSeedService creates a new SeedService. lock may be nil.
func NewSeedService(
	studentRepo *repository.StudentRepository,
	groupRepo *repository.GroupRepository,
	examRepo *repository.ExamRepository,
	submissionRepo *repository.SubmissionRepository,
	passwords PasswordMatcher,
	lock SeedLock,
	log zerolog.Logger,
) *SeedService {
	return &SeedService{
		studentRepo:    studentRepo,
		groupRepo:      groupRepo,
		examRepo:       examRepo,
		submissionRepo: submissionRepo,
		passwords:      passwords,
		lock:           lock,
		log:            logger.Component(log, "seed"),
	}
}

// Seed inserts the sample data when the student collection is empty and does
// nothing otherwise. Students go in last, so the empty check only flips once
// the rest of the data set is stored. Records that collide with existing ones
// are skipped.
func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	if s.lock != nil {
		release, acquired, err := s.lock.TryAcquire(ctx)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Msg("Seed lock unavailable, seeding without it")
		case !acquired:
			return &SeedResult{Message: SeedMessageInProgress}, nil
		default:
			defer release()
		}
	}

	count, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &SeedResult{Message: SeedMessageExisting}, nil
	}

	if err := s.insert(ctx); err != nil {
		return nil, err
	}

	s.log.Info().Msg("Sample data initialized")
	return &SeedResult{Seeded: true, Message: SeedMessageDone}, nil
}

func (s *SeedService) insert(ctx context.Context) error {
	students := seedStudents()
	for i := range students {
		hash, err := s.passwords.Hash(students[i].Password)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		students[i].Password = hash
	}

	if err := seedEach(ctx, s.log, "groups", seedGroups(), s.groupRepo.CreateMany, s.groupRepo.Create); err != nil {
		return err
	}
	if err := seedEach(ctx, s.log, "exams", seedExams(), s.examRepo.CreateMany, s.examRepo.Create); err != nil {
		return err
	}
	if err := seedEach(ctx, s.log, "submissions", seedSubmissions(), s.submissionRepo.CreateMany, s.submissionRepo.Create); err != nil {
		return err
	}
	return seedEach(ctx, s.log, "students", students, s.studentRepo.CreateMany, s.studentRepo.Create)
}

// seedEach inserts items as one batch. When the batch hits a duplicate it
// retries record by record and skips the ones already present.
func seedEach[T any](
	ctx context.Context,
	log zerolog.Logger,
	kind string,
	items []T,
	createMany func(context.Context, []T) error,
	create func(context.Context, *T) error,
) error {
	err := createMany(ctx, items)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrDuplicate) {
		return fmt.Errorf("seed %s: %w", kind, err)
	}

	for i := range items {
		err := create(ctx, &items[i])
		switch {
		case err == nil:
		case errors.Is(err, store.ErrDuplicate):
			log.Warn().Str("collection", kind).Int("index", i).Msg("Seed record already present, skipping")
		default:
			return fmt.Errorf("seed %s: %w", kind, err)
		}
	}
	return nil
}

func seedStudents() []model.Student {
	return []model.Student{
		{
			ID: "1", Name: "Nijat", Surname: "Qəsynli", Email: "nijatqəsynli59", Password: "nijat123",
			Group: "10(1,3)", Class: "10a", ParentContact: "+994501234567", Status: model.StudentActive,
		},
		{
			ID: "2", Name: "Aynur", Surname: "Məmmədova", Email: "aynur.mammadova", Password: "aynur123",
			Group: "10(1,3)", Class: "10a", ParentContact: "+994501234568", Status: model.StudentActive,
		},
		{
			ID: "3", Name: "Fuad", Surname: "Əliyev", Email: "fuad.aliyev", Password: "fuad123",
			Group: "11S", Class: "11a", ParentContact: "+994501234569", Status: model.StudentDisabled,
		},
	}
}

func seedGroups() []model.Group {
	return []model.Group{
		{ID: "1", Name: "10(1,3)"},
		{ID: "2", Name: "11S"},
		{ID: "3", Name: "9A"},
		{ID: "4", Name: "10B"},
	}
}

func seedExams() []model.Exam {
	return []model.Exam{
		{
			ID:                "exam1",
			Title:             "Quiz",
			Description:       "Bacarıqlarınızın qiymətləndirilməsi.",
			QuestionsCount:    1,
			Groups:            []string{"10(1,3)"},
			StartTime:         "2025-09-21T23:44:00",
			EndTime:           "2025-09-22T00:44:00",
			PointsPerQuestion: 10,
			Status:            model.ExamStatusLive,
			Questions: []model.Question{{
				Question:      "x² + 5x + 6 = 0 tənliyinin köklərini tapın",
				Type:          model.QuestionMultipleChoice,
				Options:       []string{"x = -2, x = -3", "x = 2, x = 3", "x = -1, x = -6", "x = 1, x = 6"},
				CorrectAnswer: "x = -2, x = -3",
			}},
		},
		{
			ID:                "exam2",
			Title:             "3",
			Description:       "Bacarıqlarınızın qiymətləndirilməsi.",
			QuestionsCount:    1,
			Groups:            []string{"10(1,3)"},
			StartTime:         "2025-09-23T10:00:00",
			EndTime:           "2025-09-23T12:00:00",
			PointsPerQuestion: 10,
			Status:            model.ExamStatusUpcoming,
			Questions: []model.Question{{
				Question:      "İnteqralı hesablayın: ∫x²dx",
				Type:          model.QuestionFreeForm,
				CorrectAnswer: "x³/3 + C",
			}},
		},
	}
}

func seedSubmissions() []model.Submission {
	score := 0
	return []model.Submission{{
		ID:               "sub1",
		ExamID:           "exam1",
		StudentID:        "1",
		Answers:          map[string]string{"0": "x = -2, x = -3"},
		SubmittedAt:      "2025-09-21T23:45:38",
		CheatingDetected: false,
		Score:            &score,
	}}
}
