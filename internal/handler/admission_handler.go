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

// AdmissionHandler handles the apply workflow and admission listings.
type AdmissionHandler struct {
	admissionService *service.AdmissionService
}

// NewAdmissionHandler creates a new AdmissionHandler.
func NewAdmissionHandler(admissionService *service.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{admissionService: admissionService}
}

// Apply godoc
// POST /api/admissions/apply
// Submits an application for the acting user; one per (student, course).
func (h *AdmissionHandler) Apply(c *gin.Context) {
	var req model.ApplyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "Validation failed", fields)
		return
	}

	actor := middleware.GetUser(c)
	admission, err := h.admissionService.Apply(c.Request.Context(), actor.ID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Created(c, gin.H{"admission": admission}, "Application submitted successfully")
}

// List godoc
// GET /api/admissions?page=&limit=&status=&courseId=
// Students see their own applications; admins see all.
func (h *AdmissionHandler) List(c *gin.Context) {
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

// admissionFilter parses the optional status and courseId query params.
func admissionFilter(c *gin.Context) (model.AdmissionFilter, bool) {
	var filter model.AdmissionFilter

	if raw := c.Query("status"); raw != "" {
		status := model.AdmissionStatus(raw)
		if !status.Valid() {
			_ = c.Error(apperrors.BadRequest("Invalid admission status"))
			return filter, false
		}
		filter.Status = &status
	}

	if raw := c.Query("courseId"); raw != "" {
		courseID, err := strconv.Atoi(raw)
		if err != nil || courseID < 1 {
			_ = c.Error(apperrors.BadRequest("Invalid course id"))
			return filter, false
		}
		filter.CourseID = &courseID
	}

	return filter, true
}
