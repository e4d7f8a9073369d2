package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/unipath/admission-portal/internal/middleware"
	"github.com/unipath/admission-portal/internal/response"
	"github.com/unipath/admission-portal/internal/service"
)

// StudentHandler handles self-scoped student endpoints.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// Profile godoc
// GET /api/students/profile
func (h *StudentHandler) Profile(c *gin.Context) {
	actor := middleware.GetUser(c)

	user, err := h.studentService.Profile(c.Request.Context(), actor.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, gin.H{"profile": user}, "Profile retrieved successfully")
}

// MyAdmissions godoc
// GET /api/students/admissions
func (h *StudentHandler) MyAdmissions(c *gin.Context) {
	actor := middleware.GetUser(c)

	admissions, err := h.studentService.MyAdmissions(c.Request.Context(), actor.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, gin.H{"admissions": admissions}, "Admissions retrieved successfully")
}
