package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/unipath/admission-portal/internal/apperrors"
	"github.com/unipath/admission-portal/internal/response"
)

// PostgreSQL error codes translated to client errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// ErrorTranslator renders errors attached to the gin context after the
// handler chain finishes. Domain errors surface with their own status and
// message; storage constraint violations map to 409/400; everything else
// is logged with request context and collapses to a generic 500.
func ErrorTranslator(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			response.Fail(c, appErr.Status, appErr.Message)
			return
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				response.Fail(c, http.StatusConflict, "Resource already exists")
				return
			case pgForeignKeyViolation:
				response.Fail(c, http.StatusBadRequest, "Referenced resource not found")
				return
			case pgCheckViolation:
				response.Fail(c, http.StatusBadRequest, "Invalid data provided")
				return
			}
		}

		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("ip", c.ClientIP()).
			Msg("Unhandled error")
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
