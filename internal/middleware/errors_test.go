package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unipath/admission-portal/internal/apperrors"
	"github.com/unipath/admission-portal/internal/response"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// executeWithError runs a handler that attaches err to the context and
// returns the translated response.
func executeWithError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorTranslator(testLogger()))
	r.GET("/probe", func(c *gin.Context) {
		_ = c.Error(err)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/probe", nil))
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func TestErrorTranslator_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "not found", err: apperrors.NotFound("Course not found"), wantStatus: http.StatusNotFound, wantError: "Course not found"},
		{name: "conflict", err: apperrors.Conflict("You have already applied for this course"), wantStatus: http.StatusConflict, wantError: "You have already applied for this course"},
		{name: "bad request", err: apperrors.BadRequest("No valid fields to update"), wantStatus: http.StatusBadRequest, wantError: "No valid fields to update"},
		{name: "unauthorized", err: apperrors.Unauthorized("Invalid email or password"), wantStatus: http.StatusUnauthorized, wantError: "Invalid email or password"},
		{name: "forbidden", err: apperrors.Forbidden("Insufficient permissions"), wantStatus: http.StatusForbidden, wantError: "Insufficient permissions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeWithError(tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			env := decodeEnvelope(t, rr)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantError, env.Error)
		})
	}
}

func TestErrorTranslator_ConstraintViolations(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
		wantError  string
	}{
		{name: "unique violation", code: "23505", wantStatus: http.StatusConflict, wantError: "Resource already exists"},
		{name: "foreign key violation", code: "23503", wantStatus: http.StatusBadRequest, wantError: "Referenced resource not found"},
		{name: "check violation", code: "23514", wantStatus: http.StatusBadRequest, wantError: "Invalid data provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeWithError(&pgconn.PgError{Code: tt.code})

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, decodeEnvelope(t, rr).Error)
		})
	}
}

func TestErrorTranslator_UnknownErrorIsGeneric500(t *testing.T) {
	rr := executeWithError(errors.New("pq: connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	env := decodeEnvelope(t, rr)
	// Internal detail must not leak into the response body.
	assert.Equal(t, "Internal server error", env.Error)
	assert.NotContains(t, rr.Body.String(), "connection reset")
}

func TestErrorTranslator_NoErrorPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorTranslator(testLogger()))
	r.GET("/probe", func(c *gin.Context) {
		response.OK(c, gin.H{"value": 1}, "ok")
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeEnvelope(t, rr).Success)
}

func TestErrorTranslator_WrittenResponseWins(t *testing.T) {
	// A handler that already wrote a response keeps it even if an error
	// was attached along the way.
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorTranslator(testLogger()))
	r.GET("/probe", func(c *gin.Context) {
		response.Fail(c, http.StatusTeapot, "already handled")
		_ = c.Error(errors.New("late error"))
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "already handled", decodeEnvelope(t, rr).Error)
}
