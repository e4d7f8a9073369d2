package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/unipath/admission-portal/internal/model"
	"github.com/unipath/admission-portal/internal/response"
	"github.com/unipath/admission-portal/internal/service"
	"github.com/unipath/admission-portal/internal/validator"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService *service.AuthService
	log         zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// Register godoc
// POST /api/auth/register
// Creates a student account and returns it with a fresh token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "Validation failed", fields)
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.log.Info().Str("email", user.Email).Msg("New user registered")
	response.Created(c, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"role":      user.Role,
			"createdAt": user.CreatedAt,
		},
		"token": token,
	}, "User registered successfully")
}

// Login godoc
// POST /api/auth/login
// Validates email + password, returns the user and a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "Validation failed", fields)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.log.Info().Str("email", user.Email).Msg("User logged in")
	response.OK(c, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"role":      user.Role,
		},
		"token": token,
	}, "Login successful")
}
