package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/unipath/admission-portal/internal/model"
)

const courseColumns = `id, name, description, department, duration, capacity, enrolled_count, fees, start_date, end_date, is_active, created_by, created_at, updated_at`

// CourseRepository handles course data access. Courses are soft-deleted:
// every read is scoped to is_active = true.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// GetDetailByID retrieves an active course joined with its creator's name.
func (r *CourseRepository) GetDetailByID(ctx context.Context, id int) (*model.CourseDetail, error) {
	d := &model.CourseDetail{}
	err := r.pool.QueryRow(ctx,
		`SELECT c.id, c.name, c.description, c.department, c.duration, c.capacity, c.enrolled_count, c.fees,
		        c.start_date, c.end_date, c.is_active, c.created_by, c.created_at, c.updated_at,
		        u.first_name || ' ' || u.last_name AS created_by_name
		 FROM courses c
		 LEFT JOIN users u ON c.created_by = u.id
		 WHERE c.id = $1 AND c.is_active = true`, id,
	).Scan(&d.ID, &d.Name, &d.Description, &d.Department, &d.Duration, &d.Capacity, &d.EnrolledCount, &d.Fees,
		&d.StartDate, &d.EndDate, &d.IsActive, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt, &d.CreatedByName)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Exists reports whether an active course with the given id exists.
func (r *CourseRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM courses WHERE id = $1 AND is_active = true)`, id,
	).Scan(&exists)
	return exists, err
}

// ListPaginated retrieves active courses with pagination and optional
// substring filters over name/description and department.
func (r *CourseRepository) ListPaginated(ctx context.Context, filter model.CourseFilter, limit, offset int) ([]model.Course, int, error) {
	where := ` WHERE is_active = true`
	var args []interface{}
	argIdx := 0

	if filter.Search != "" {
		argIdx++
		p := strconv.Itoa(argIdx)
		where += ` AND (name ILIKE $` + p + ` OR description ILIKE $` + p + `)`
		args = append(args, "%"+filter.Search+"%")
	}
	if filter.Department != "" {
		argIdx++
		where += ` AND department ILIKE $` + strconv.Itoa(argIdx)
		args = append(args, "%"+filter.Department+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + courseColumns + ` FROM courses` + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(argIdx+1) + ` OFFSET $` + strconv.Itoa(argIdx+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Department, &c.Duration, &c.Capacity, &c.EnrolledCount, &c.Fees,
			&c.StartDate, &c.EndDate, &c.IsActive, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		courses = append(courses, c)
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, total, rows.Err()
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO courses (name, description, department, duration, capacity, fees, start_date, end_date, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+courseColumns,
		c.Name, c.Description, c.Department, c.Duration, c.Capacity, c.Fees, c.StartDate, c.EndDate, c.CreatedBy,
	).Scan(&c.ID, &c.Name, &c.Description, &c.Department, &c.Duration, &c.Capacity, &c.EnrolledCount, &c.Fees,
		&c.StartDate, &c.EndDate, &c.IsActive, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
}

// Update applies the non-nil fields of req to the course row. Only the
// columns named here are updatable; each is mapped individually.
func (r *CourseRepository) Update(ctx context.Context, id int, req *model.UpdateCourseRequest) (*model.Course, error) {
	set := ""
	var args []interface{}
	argIdx := 0

	add := func(column string, value interface{}) {
		argIdx++
		if set != "" {
			set += ", "
		}
		set += column + ` = $` + strconv.Itoa(argIdx)
		args = append(args, value)
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Department != nil {
		add("department", *req.Department)
	}
	if req.Duration != nil {
		add("duration", *req.Duration)
	}
	if req.Capacity != nil {
		add("capacity", *req.Capacity)
	}
	if req.Fees != nil {
		add("fees", *req.Fees)
	}
	if req.StartDate != nil {
		t, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return nil, err
		}
		add("start_date", t)
	}
	if req.EndDate != nil {
		t, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return nil, err
		}
		add("end_date", t)
	}

	query := `UPDATE courses SET ` + set + `, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $` + strconv.Itoa(argIdx+1) + ` AND is_active = true
		 RETURNING ` + courseColumns
	args = append(args, id)

	c := &model.Course{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.Name, &c.Description, &c.Department, &c.Duration, &c.Capacity, &c.EnrolledCount, &c.Fees,
		&c.StartDate, &c.EndDate, &c.IsActive, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// SoftDelete marks a course inactive. It reports whether a row changed.
func (r *CourseRepository) SoftDelete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE courses SET is_active = false, updated_at = CURRENT_TIMESTAMP WHERE id = $1 AND is_active = true`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
