package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	pgx "github.com/jackc/pgx/v5"
	"github.com/unipath/admission-portal/internal/model"
	"github.com/unipath/admission-portal/internal/response"
	"github.com/unipath/admission-portal/internal/service"
)

// ContextKeyUser is the Gin context key for the authenticated identity.
const ContextKeyUser = "auth_user"

// UserLoader loads an account by id so the middleware can confirm the
// token's subject still exists and is active. *repository.UserRepository
// satisfies it.
type UserLoader interface {
	GetByID(ctx context.Context, id int) (*model.User, error)
}

// RequireAuth verifies the bearer token, loads the acting user and
// attaches the identity to the request context. Persistence failures are
// not translated to 401 here; they propagate as a 500 through the error
// middleware.
func RequireAuth(authService *service.AuthService, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractBearer(c.GetHeader("Authorization"))
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, "Access token required")
			return
		}

		claims, err := authService.ValidateToken(tokenStr)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				response.AbortFail(c, http.StatusUnauthorized, "Token expired")
				return
			}
			response.AbortFail(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				response.AbortFail(c, http.StatusUnauthorized, "User not found")
				return
			}
			_ = c.Error(err)
			c.Abort()
			return
		}

		if !user.IsActive {
			response.AbortFail(c, http.StatusUnauthorized, "Account is deactivated")
			return
		}

		c.Set(ContextKeyUser, &model.AuthUser{ID: user.ID, Email: user.Email, Role: user.Role})
		c.Next()
	}
}

// RequireRoles restricts a route to the given roles. It composes after
// RequireAuth; without an attached identity the request is rejected.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetUser(c)
		if actor == nil {
			response.AbortFail(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		response.AbortFail(c, http.StatusForbidden, "Insufficient permissions")
	}
}

// GetUser retrieves the authenticated identity from the Gin context.
func GetUser(c *gin.Context) *model.AuthUser {
	val, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	user, ok := val.(*model.AuthUser)
	if !ok {
		return nil
	}
	return user
}

func extractBearer(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
