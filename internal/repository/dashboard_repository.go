package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/unipath/admission-portal/internal/model"
)

// DashboardRepository handles admin dashboard data access. Each count is
// an independent read; the dashboard tolerates slight skew between them.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// CountActiveStudents returns the number of active student accounts.
func (r *DashboardRepository) CountActiveStudents(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1 AND is_active = true`,
		model.RoleStudent,
	).Scan(&n)
	return n, err
}

// CountActiveCourses returns the number of active courses.
func (r *DashboardRepository) CountActiveCourses(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM courses WHERE is_active = true`,
	).Scan(&n)
	return n, err
}

// CountAdmissions returns the total number of admissions.
func (r *DashboardRepository) CountAdmissions(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admissions`).Scan(&n)
	return n, err
}

// CountAdmissionsByStatus returns the number of admissions in one status.
func (r *DashboardRepository) CountAdmissionsByStatus(ctx context.Context, status model.AdmissionStatus) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM admissions WHERE status = $1`, status,
	).Scan(&n)
	return n, err
}

// RecentAdmissions retrieves the most recent applications joined with
// course and student names.
func (r *DashboardRepository) RecentAdmissions(ctx context.Context, limit int) ([]model.RecentAdmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.status, a.applied_at,
		        c.name AS course_name,
		        u.first_name || ' ' || u.last_name AS student_name
		 FROM admissions a
		 JOIN courses c ON a.course_id = c.id
		 JOIN users u ON a.student_id = u.id
		 ORDER BY a.applied_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recent []model.RecentAdmission
	for rows.Next() {
		var ra model.RecentAdmission
		if err := rows.Scan(&ra.ID, &ra.Status, &ra.AppliedAt, &ra.CourseName, &ra.StudentName); err != nil {
			return nil, err
		}
		recent = append(recent, ra)
	}
	if recent == nil {
		recent = []model.RecentAdmission{}
	}
	return recent, rows.Err()
}
