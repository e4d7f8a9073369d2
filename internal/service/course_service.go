package service

import (
	"context"
	"errors"
	"time"

	pgx "github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/unipath/admission-portal/internal/apperrors"
	"github.com/unipath/admission-portal/internal/model"
	"github.com/unipath/admission-portal/internal/repository"
)

// CourseService handles course business logic.
type CourseService struct {
	courses *repository.CourseRepository
	log     zerolog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(courses *repository.CourseRepository, log zerolog.Logger) *CourseService {
	return &CourseService{courses: courses, log: log}
}

// List retrieves active courses with pagination and filters.
func (s *CourseService) List(ctx context.Context, filter model.CourseFilter, limit, offset int) ([]model.Course, int, error) {
	return s.courses.ListPaginated(ctx, filter, limit, offset)
}

// GetByID retrieves an active course with its creator's name.
func (s *CourseService) GetByID(ctx context.Context, id int) (*model.CourseDetail, error) {
	course, err := s.courses.GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Course not found")
		}
		return nil, err
	}
	return course, nil
}

// Create inserts a new course on behalf of the acting admin.
func (s *CourseService) Create(ctx context.Context, req *model.CreateCourseRequest, createdBy int) (*model.Course, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, apperrors.BadRequest("Invalid start date")
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, apperrors.BadRequest("Invalid end date")
	}
	if endDate.Before(startDate) {
		return nil, apperrors.BadRequest("End date must not precede start date")
	}

	course := &model.Course{
		Name:        req.Name,
		Description: req.Description,
		Department:  req.Department,
		Duration:    req.Duration,
		Capacity:    req.Capacity,
		Fees:        req.Fees,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedBy:   &createdBy,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	s.log.Info().Str("name", course.Name).Int("created_by", createdBy).Msg("Course created")
	return course, nil
}

// Update applies the allow-listed fields of req to an active course.
func (s *CourseService) Update(ctx context.Context, id int, req *model.UpdateCourseRequest) (*model.Course, error) {
	if req.Empty() {
		return nil, apperrors.BadRequest("No valid fields to update")
	}

	course, err := s.courses.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Course not found")
		}
		return nil, err
	}

	s.log.Info().Int("course_id", id).Msg("Course updated")
	return course, nil
}

// Delete soft-deletes an active course.
func (s *CourseService) Delete(ctx context.Context, id int) error {
	deleted, err := s.courses.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound("Course not found")
	}

	s.log.Info().Int("course_id", id).Msg("Course deleted")
	return nil
}
