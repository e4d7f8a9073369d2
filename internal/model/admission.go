package model

import "time"

// AdmissionStatus is the closed set of application states.
type AdmissionStatus string

const (
	AdmissionPending  AdmissionStatus = "pending"
	AdmissionApproved AdmissionStatus = "approved"
	AdmissionRejected AdmissionStatus = "rejected"
)

// Valid reports whether the status is a known member of the enumeration.
func (s AdmissionStatus) Valid() bool {
	switch s {
	case AdmissionPending, AdmissionApproved, AdmissionRejected:
		return true
	}
	return false
}

// Admission represents one application by a student for a course.
// At most one row exists per (student_id, course_id) pair; the schema
// enforces this with a unique constraint.
type Admission struct {
	ID                int             `json:"id"`
	StudentID         int             `json:"student_id"`
	CourseID          int             `json:"course_id"`
	Status            AdmissionStatus `json:"status"`
	PersonalStatement *string         `json:"personal_statement,omitempty"`
	PreviousEducation *string         `json:"previous_education,omitempty"`
	Documents         []string        `json:"documents,omitempty"`
	AppliedAt         time.Time       `json:"applied_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// AdmissionDetail is an admission joined with course and student fields,
// as returned by the listing endpoints.
type AdmissionDetail struct {
	Admission
	CourseName   string `json:"course_name"`
	Department   string `json:"department"`
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
}

// StudentAdmission is an admission joined with the applied course, as
// returned by the self-scoped student listing.
type StudentAdmission struct {
	Admission
	CourseName string    `json:"course_name"`
	Department string    `json:"department"`
	Fees       float64   `json:"fees"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

// RecentAdmission is the trimmed join used by the admin dashboard.
type RecentAdmission struct {
	ID          int             `json:"id"`
	Status      AdmissionStatus `json:"status"`
	AppliedAt   time.Time       `json:"applied_at"`
	CourseName  string          `json:"course_name"`
	StudentName string          `json:"student_name"`
}

// AdmissionFilter narrows admission listings. A nil field means no
// restriction; StudentID is forced for student-role callers.
type AdmissionFilter struct {
	StudentID *int
	CourseID  *int
	Status    *AdmissionStatus
}

// ApplyRequest is the payload for submitting an admission application.
type ApplyRequest struct {
	CourseID          int      `json:"courseId" binding:"required,min=1"`
	PersonalStatement *string  `json:"personalStatement" binding:"omitempty,max=5000"`
	PreviousEducation *string  `json:"previousEducation" binding:"omitempty,max=2000"`
	Documents         []string `json:"documents" binding:"omitempty,max=20,dive,max=500"`
}
