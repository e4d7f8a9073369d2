package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/unipath/admission-portal/internal/model"
)

// Admission workflow errors.
var (
	ErrCourseNotFound = errors.New("course not found")
	ErrAlreadyApplied = errors.New("already applied for this course")
)

const admissionColumns = `id, student_id, course_id, status, personal_statement, previous_education, documents, applied_at, updated_at`

// AdmissionRepository handles admission data access.
type AdmissionRepository struct {
	pool *pgxpool.Pool
}

// NewAdmissionRepository creates a new AdmissionRepository.
func NewAdmissionRepository(pool *pgxpool.Pool) *AdmissionRepository {
	return &AdmissionRepository{pool: pool}
}

// Apply submits an admission application inside a single transaction:
// the course must exist and be active, the student must not have an
// existing application for it, and the inserted row defaults to pending.
// The deferred rollback releases the connection on every exit path; the
// unique constraint on (student_id, course_id) remains the authoritative
// guard against concurrent duplicates, the pre-check only gives the
// friendlier error without burning the insert.
func (r *AdmissionRepository) Apply(ctx context.Context, studentID int, req *model.ApplyRequest) (*model.Admission, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var courseID int
	err = tx.QueryRow(ctx,
		`SELECT id FROM courses WHERE id = $1 AND is_active = true`,
		req.CourseID,
	).Scan(&courseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	var existingID int
	err = tx.QueryRow(ctx,
		`SELECT id FROM admissions WHERE student_id = $1 AND course_id = $2`,
		studentID, req.CourseID,
	).Scan(&existingID)
	if err == nil {
		return nil, ErrAlreadyApplied
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	a := &model.Admission{}
	err = tx.QueryRow(ctx,
		`INSERT INTO admissions (student_id, course_id, personal_statement, previous_education, documents)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+admissionColumns,
		studentID, req.CourseID, req.PersonalStatement, req.PreviousEducation, req.Documents,
	).Scan(&a.ID, &a.StudentID, &a.CourseID, &a.Status, &a.PersonalStatement, &a.PreviousEducation, &a.Documents, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Lost a race with a concurrent apply for the same pair.
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// ListPaginated retrieves admissions joined with course and student data,
// newest first, narrowed by the filter.
func (r *AdmissionRepository) ListPaginated(ctx context.Context, filter model.AdmissionFilter, limit, offset int) ([]model.AdmissionDetail, int, error) {
	where := ` WHERE 1=1`
	var args []interface{}
	argIdx := 0

	if filter.StudentID != nil {
		argIdx++
		where += ` AND a.student_id = $` + strconv.Itoa(argIdx)
		args = append(args, *filter.StudentID)
	}
	if filter.Status != nil {
		argIdx++
		where += ` AND a.status = $` + strconv.Itoa(argIdx)
		args = append(args, *filter.Status)
	}
	if filter.CourseID != nil {
		argIdx++
		where += ` AND a.course_id = $` + strconv.Itoa(argIdx)
		args = append(args, *filter.CourseID)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admissions a`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT a.id, a.student_id, a.course_id, a.status, a.personal_statement, a.previous_education, a.documents, a.applied_at, a.updated_at,
		        c.name AS course_name, c.department,
		        u.first_name || ' ' || u.last_name AS student_name, u.email AS student_email
		 FROM admissions a
		 JOIN courses c ON a.course_id = c.id
		 JOIN users u ON a.student_id = u.id` + where +
		` ORDER BY a.applied_at DESC LIMIT $` + strconv.Itoa(argIdx+1) + ` OFFSET $` + strconv.Itoa(argIdx+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var admissions []model.AdmissionDetail
	for rows.Next() {
		var d model.AdmissionDetail
		if err := rows.Scan(&d.ID, &d.StudentID, &d.CourseID, &d.Status, &d.PersonalStatement, &d.PreviousEducation, &d.Documents, &d.AppliedAt, &d.UpdatedAt,
			&d.CourseName, &d.Department, &d.StudentName, &d.StudentEmail); err != nil {
			return nil, 0, err
		}
		admissions = append(admissions, d)
	}
	if admissions == nil {
		admissions = []model.AdmissionDetail{}
	}
	return admissions, total, rows.Err()
}

// ListByStudent retrieves every admission of one student joined with the
// applied course, newest first.
func (r *AdmissionRepository) ListByStudent(ctx context.Context, studentID int) ([]model.StudentAdmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.student_id, a.course_id, a.status, a.personal_statement, a.previous_education, a.documents, a.applied_at, a.updated_at,
		        c.name AS course_name, c.department, c.fees, c.start_date, c.end_date
		 FROM admissions a
		 JOIN courses c ON a.course_id = c.id
		 WHERE a.student_id = $1
		 ORDER BY a.applied_at DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admissions []model.StudentAdmission
	for rows.Next() {
		var s model.StudentAdmission
		if err := rows.Scan(&s.ID, &s.StudentID, &s.CourseID, &s.Status, &s.PersonalStatement, &s.PreviousEducation, &s.Documents, &s.AppliedAt, &s.UpdatedAt,
			&s.CourseName, &s.Department, &s.Fees, &s.StartDate, &s.EndDate); err != nil {
			return nil, err
		}
		admissions = append(admissions, s)
	}
	if admissions == nil {
		admissions = []model.StudentAdmission{}
	}
	return admissions, rows.Err()
}
