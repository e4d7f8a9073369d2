package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/unipath/admission-portal/internal/response"
)

// Version is the reported API version.
const Version = "1.0.0"

// SystemHandler handles liveness and metadata endpoints.
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Health godoc
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.Envelope{
		Success: true,
		Message: "Admission Portal API is running",
		Data: gin.H{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   Version,
		},
	})
}
