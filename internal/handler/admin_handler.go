package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/unipath/admission-portal/internal/middleware"
	"github.com/unipath/admission-portal/internal/response"
	"github.com/unipath/admission-portal/internal/service"
)

// AdminHandler handles the admin dashboard and admin listings.
type AdminHandler struct {
	dashboardService *service.DashboardService
	studentService   *service.StudentService
	admissionService *service.AdmissionService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	dashboardService *service.DashboardService,
	studentService *service.StudentService,
	admissionService *service.AdmissionService,
) *AdminHandler {
	return &AdminHandler{
		dashboardService: dashboardService,
		studentService:   studentService,
		admissionService: admissionService,
	}
}

// Dashboard godoc
// GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	data, err := h.dashboardService.GetDashboardData(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, data, "Dashboard data retrieved successfully")
}

// Students godoc
// GET /api/admin/students?page=&limit=&search=
func (h *AdminHandler) Students(c *gin.Context) {
	page, limit := response.PageParams(c)

	students, total, err := h.studentService.ListStudents(c.Request.Context(), c.Query("search"), limit, response.Offset(page, limit))
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, gin.H{
		"students":   students,
		"pagination": response.NewPagination(page, limit, total),
	}, "Students retrieved successfully")
}

// Admissions godoc
// GET /api/admin/admissions?page=&limit=&status=&courseId=
func (h *AdminHandler) Admissions(c *gin.Context) {
	page, limit := response.PageParams(c)

	filter, ok := admissionFilter(c)
	if !ok {
		return
	}

	actor := middleware.GetUser(c)
	admissions, total, err := h.admissionService.List(c.Request.Context(), actor, filter, limit, response.Offset(page, limit))
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, gin.H{
		"admissions": admissions,
		"pagination": response.NewPagination(page, limit, total),
	}, "Admissions retrieved successfully")
}
