package service

import (
	"context"
	"errors"

	pgx "github.com/jackc/pgx/v5"
	"github.com/unipath/admission-portal/internal/apperrors"
	"github.com/unipath/admission-portal/internal/model"
	"github.com/unipath/admission-portal/internal/repository"
)

// StudentService handles self-scoped student operations and the admin
// student listing.
type StudentService struct {
	users      *repository.UserRepository
	admissions *repository.AdmissionRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(users *repository.UserRepository, admissions *repository.AdmissionRepository) *StudentService {
	return &StudentService{users: users, admissions: admissions}
}

// Profile retrieves the acting user's own account.
func (s *StudentService) Profile(ctx context.Context, userID int) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// MyAdmissions retrieves every admission of the acting student with the
// applied course joined in.
func (s *StudentService) MyAdmissions(ctx context.Context, studentID int) ([]model.StudentAdmission, error) {
	return s.admissions.ListByStudent(ctx, studentID)
}

// ListStudents retrieves student accounts for the admin listing.
func (s *StudentService) ListStudents(ctx context.Context, search string, limit, offset int) ([]model.User, int, error) {
	return s.users.ListStudentsPaginated(ctx, search, limit, offset)
}
