package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/riyaziyyat/exam-backend/internal/repository"
)

// StudentService handles student business logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
	passwords   PasswordMatcher
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository, passwords PasswordMatcher) *StudentService {
	return &StudentService{studentRepo: studentRepo, passwords: passwords}
}

// List retrieves all students.
func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	return s.studentRepo.List(ctx)
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id string) (*model.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	return student, translate(err)
}

// Create stores a new student, generating an ID when none was given.
func (s *StudentService) Create(ctx context.Context, student *model.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}

	hash, err := s.passwords.Hash(student.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	student.Password = hash

	return translate(s.studentRepo.Create(ctx, student))
}

// Update replaces the student with the given ID. A password equal to the
// stored value is kept as is so clients can send back what they listed.
func (s *StudentService) Update(ctx context.Context, id string, student *model.Student) error {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return translate(err)
	}

	student.ID = id
	if student.Password != existing.Password {
		hash, err := s.passwords.Hash(student.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		student.Password = hash
	}

	return translate(s.studentRepo.Update(ctx, student))
}

// Delete removes a student.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	return translate(s.studentRepo.Delete(ctx, id))
}

// UpgradePasswords replaces every stored password that is not yet a bcrypt
// hash with one produced by m. It returns how many students were updated.
func (s *StudentService) UpgradePasswords(ctx context.Context, m BcryptMatcher) (int, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return 0, err
	}

	upgraded := 0
	for _, student := range students {
		if isBcryptHash(student.Password) {
			continue
		}
		hash, err := m.Hash(student.Password)
		if err != nil {
			return upgraded, fmt.Errorf("hash password of %s: %w", student.ID, err)
		}
		if err := s.studentRepo.SetPassword(ctx, student.ID, hash); err != nil {
			return upgraded, translate(err)
		}
		upgraded++
	}
	return upgraded, nil
}
