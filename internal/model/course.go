package model

import "time"

// Course represents an offered course. Courses are soft-deleted via the
// is_active flag, never removed.
type Course struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	Department    string    `json:"department"`
	Duration      *string   `json:"duration,omitempty"`
	Capacity      int       `json:"capacity"`
	EnrolledCount int       `json:"enrolled_count"`
	Fees          float64   `json:"fees"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	IsActive      bool      `json:"is_active"`
	CreatedBy     *int      `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CourseDetail is a course joined with the name of the admin who created it.
type CourseDetail struct {
	Course
	CreatedByName *string `json:"created_by_name"`
}

// CourseFilter narrows course listings.
type CourseFilter struct {
	Search     string
	Department string
}

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Department  string  `json:"department" binding:"required,min=2,max=100"`
	Duration    *string `json:"duration" binding:"omitempty,max=50"`
	Capacity    int     `json:"capacity" binding:"required,min=1"`
	Fees        float64 `json:"fees" binding:"required,min=0"`
	StartDate   string  `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate     string  `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// UpdateCourseRequest is the payload for updating a course. Every field
// is optional; only the fields listed here are updatable, each mapped to
// its column individually.
type UpdateCourseRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Department  *string  `json:"department" binding:"omitempty,min=2,max=100"`
	Duration    *string  `json:"duration" binding:"omitempty,max=50"`
	Capacity    *int     `json:"capacity" binding:"omitempty,min=1"`
	Fees        *float64 `json:"fees" binding:"omitempty,min=0"`
	StartDate   *string  `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string  `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// Empty reports whether no updatable field is present.
func (r *UpdateCourseRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.Department == nil &&
		r.Duration == nil && r.Capacity == nil && r.Fees == nil &&
		r.StartDate == nil && r.EndDate == nil
}
