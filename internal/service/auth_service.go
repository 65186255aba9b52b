package service

import (
	"context"
	"crypto/subtle"

	"github.com/riyaziyyat/exam-backend/internal/config"
	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/riyaziyyat/exam-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// LoginResult describes a successful login. Profile is a model.TeacherProfile
// for the teacher and the full *model.Student for students.
type LoginResult struct {
	UserType model.UserType
	Profile  any
}

// AuthService checks credentials. It issues no tokens and keeps no sessions.
type AuthService struct {
	cfg         *config.Config
	studentRepo *repository.StudentRepository
	passwords   PasswordMatcher
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, studentRepo *repository.StudentRepository, passwords PasswordMatcher) *AuthService {
	return &AuthService{cfg: cfg, studentRepo: studentRepo, passwords: passwords}
}

// Login resolves an identifier and password to the teacher or a student.
// Outcomes: a result, ErrAccountDisabled for a disabled student with correct
// credentials, or ErrInvalidCredentials for everything else.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	if identifier == s.cfg.TeacherLogin && s.teacherPasswordMatches(password) {
		return &LoginResult{
			UserType: model.UserTypeTeacher,
			Profile: model.TeacherProfile{
				Name:     s.cfg.TeacherName,
				Username: s.cfg.TeacherUsername,
			},
		}, nil
	}

	candidates, err := s.studentRepo.ListByEmail(ctx, identifier)
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		student := &candidates[i]
		if !s.passwords.Matches(student.Password, password) {
			continue
		}
		if student.Status == model.StudentDisabled {
			return nil, ErrAccountDisabled
		}
		return &LoginResult{UserType: model.UserTypeStudent, Profile: student}, nil
	}

	return nil, ErrInvalidCredentials
}

func (s *AuthService) teacherPasswordMatches(password string) bool {
	if s.cfg.TeacherPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.TeacherPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.cfg.TeacherPassword), []byte(password)) == 1
}
