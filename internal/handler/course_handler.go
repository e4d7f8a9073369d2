package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unipath/admission-portal/internal/apperrors"
	"github.com/unipath/admission-portal/internal/middleware"
	"github.com/unipath/admission-portal/internal/model"
	"github.com/unipath/admission-portal/internal/response"
	"github.com/unipath/admission-portal/internal/service"
	"github.com/unipath/admission-portal/internal/validator"
)

// CourseHandler handles course endpoints. Reads are public; mutations
// are admin-only (enforced in the router).
type CourseHandler struct {
	courseService *service.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// List godoc
// GET /api/courses?page=&limit=&search=&department=
func (h *CourseHandler) List(c *gin.Context) {
	page, limit := response.PageParams(c)
	filter := model.CourseFilter{
		Search:     c.Query("search"),
		Department: c.Query("department"),
	}

	courses, total, err := h.courseService.List(c.Request.Context(), filter, limit, response.Offset(page, limit))
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, gin.H{
		"courses":    courses,
		"pagination": response.NewPagination(page, limit, total),
	}, "Courses retrieved successfully")
}

// GetByID godoc
// GET /api/courses/:id
func (h *CourseHandler) GetByID(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	course, err := h.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, gin.H{"course": course}, "Course retrieved successfully")
}

// Create godoc
// POST /api/courses (admin)
func (h *CourseHandler) Create(c *gin.Context) {
	var req model.CreateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "Validation failed", fields)
		return
	}

	actor := middleware.GetUser(c)
	course, err := h.courseService.Create(c.Request.Context(), &req, actor.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Created(c, gin.H{"course": course}, "Course created successfully")
}

// Update godoc
// PUT /api/courses/:id (admin)
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	var req model.UpdateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "Validation failed", fields)
		return
	}

	course, err := h.courseService.Update(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, gin.H{"course": course}, "Course updated successfully")
}

// Delete godoc
// DELETE /api/courses/:id (admin, soft delete)
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, nil, "Course deleted successfully")
}

func courseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		_ = c.Error(apperrors.BadRequest("Invalid course id"))
		return 0, false
	}
	return id, true
}
