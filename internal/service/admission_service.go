package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/unipath/admission-portal/internal/apperrors"
	"github.com/unipath/admission-portal/internal/model"
	"github.com/unipath/admission-portal/internal/repository"
)

// AdmissionService handles the admission workflow.
type AdmissionService struct {
	admissions *repository.AdmissionRepository
	log        zerolog.Logger
}

// NewAdmissionService creates a new AdmissionService.
func NewAdmissionService(admissions *repository.AdmissionRepository, log zerolog.Logger) *AdmissionService {
	return &AdmissionService{admissions: admissions, log: log}
}

// Apply submits an application for the acting student. The repository
// runs the whole operation in one transaction; duplicates surface as a
// 409 whether caught by the pre-check or by the unique constraint.
func (s *AdmissionService) Apply(ctx context.Context, studentID int, req *model.ApplyRequest) (*model.Admission, error) {
	admission, err := s.admissions.Apply(ctx, studentID, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCourseNotFound):
			return nil, apperrors.NotFound("Course not found")
		case errors.Is(err, repository.ErrAlreadyApplied):
			return nil, apperrors.Conflict("You have already applied for this course")
		}
		return nil, err
	}

	s.log.Info().
		Int("student_id", studentID).
		Int("course_id", req.CourseID).
		Int("admission_id", admission.ID).
		Msg("Admission application submitted")
	return admission, nil
}

// List retrieves admissions for the acting identity: students see only
// their own rows, admins see everything the filter allows.
func (s *AdmissionService) List(ctx context.Context, actor *model.AuthUser, filter model.AdmissionFilter, limit, offset int) ([]model.AdmissionDetail, int, error) {
	if actor.Role == model.RoleStudent {
		id := actor.ID
		filter.StudentID = &id
	}
	return s.admissions.ListPaginated(ctx, filter, limit, offset)
}
