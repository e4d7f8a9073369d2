package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	pgx "github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unipath/admission-portal/internal/config"
	"github.com/unipath/admission-portal/internal/model"
	"github.com/unipath/admission-portal/internal/response"
	"github.com/unipath/admission-portal/internal/service"
	"golang.org/x/crypto/bcrypt"
)

// ---- Helpers ----

type stubUserLoader struct {
	users map[int]*model.User
	err   error
}

func (s *stubUserLoader) GetByID(_ context.Context, id int) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return u, nil
}

func newTestAuthService(expiry time.Duration) *service.AuthService {
	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  expiry,
		BcryptCost: bcrypt.MinCost,
	}
	return service.NewAuthService(cfg, nil)
}

func activeUser(id int, role model.Role) *model.User {
	return &model.User{ID: id, Email: "user@example.com", Role: role, IsActive: true}
}

// execute sends a request through RequireAuth plus a probe handler that
// records the identity it sees.
func execute(authService *service.AuthService, loader UserLoader, authHeader string) (*httptest.ResponseRecorder, *model.AuthUser) {
	gin.SetMode(gin.TestMode)
	var seen *model.AuthUser

	r := gin.New()
	r.GET("/probe", RequireAuth(authService, loader), func(c *gin.Context) {
		seen = GetUser(c)
		response.OK(c, nil, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr, seen
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

// ---- RequireAuth ----

func TestRequireAuth_MissingToken(t *testing.T) {
	authService := newTestAuthService(time.Hour)
	loader := &stubUserLoader{}

	for _, header := range []string{"", "Bearer", "Basic abc", "token-without-scheme"} {
		rr, seen := execute(authService, loader, header)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Access token required", errorBody(t, rr).Error)
		assert.Nil(t, seen)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	authService := newTestAuthService(time.Hour)
	loader := &stubUserLoader{}

	rr, seen := execute(authService, loader, "Bearer not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid token", errorBody(t, rr).Error)
	assert.Nil(t, seen)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	expiredIssuer := newTestAuthService(-time.Minute)
	token, err := expiredIssuer.GenerateToken(1, model.RoleStudent)
	require.NoError(t, err)

	rr, seen := execute(newTestAuthService(time.Hour), &stubUserLoader{}, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Token expired", errorBody(t, rr).Error)
	assert.Nil(t, seen)
}

func TestRequireAuth_UserNotFound(t *testing.T) {
	authService := newTestAuthService(time.Hour)
	token, err := authService.GenerateToken(99, model.RoleStudent)
	require.NoError(t, err)

	rr, seen := execute(authService, &stubUserLoader{users: map[int]*model.User{}}, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "User not found", errorBody(t, rr).Error)
	assert.Nil(t, seen)
}

func TestRequireAuth_DeactivatedAccount(t *testing.T) {
	authService := newTestAuthService(time.Hour)
	token, err := authService.GenerateToken(5, model.RoleStudent)
	require.NoError(t, err)

	user := activeUser(5, model.RoleStudent)
	user.IsActive = false
	loader := &stubUserLoader{users: map[int]*model.User{5: user}}

	rr, seen := execute(authService, loader, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Account is deactivated", errorBody(t, rr).Error)
	assert.Nil(t, seen)
}

func TestRequireAuth_GatewayFailureIsNot401(t *testing.T) {
	authService := newTestAuthService(time.Hour)
	token, err := authService.GenerateToken(5, model.RoleStudent)
	require.NoError(t, err)

	loader := &stubUserLoader{err: errors.New("connection refused")}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorTranslator(testLogger()))
	r.GET("/probe", RequireAuth(authService, loader), func(c *gin.Context) {
		response.OK(c, nil, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Internal server error", errorBody(t, rr).Error)
}

func TestRequireAuth_Success(t *testing.T) {
	authService := newTestAuthService(time.Hour)
	token, err := authService.GenerateToken(5, model.RoleAdmin)
	require.NoError(t, err)

	loader := &stubUserLoader{users: map[int]*model.User{5: activeUser(5, model.RoleAdmin)}}
	rr, seen := execute(authService, loader, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seen)
	assert.Equal(t, 5, seen.ID)
	assert.Equal(t, "user@example.com", seen.Email)
	assert.Equal(t, model.RoleAdmin, seen.Role)
}

func TestRequireAuth_LoginRoundTrip(t *testing.T) {
	// A token minted for a user id must attach the same id downstream.
	authService := newTestAuthService(time.Hour)
	for _, id := range []int{1, 42, 100000} {
		token, err := authService.GenerateToken(id, model.RoleStudent)
		require.NoError(t, err)

		loader := &stubUserLoader{users: map[int]*model.User{id: activeUser(id, model.RoleStudent)}}
		rr, seen := execute(authService, loader, "Bearer "+token)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, seen)
		assert.Equal(t, id, seen.ID)
	}
}

// ---- RequireRoles ----

func executeRoles(identity *model.AuthUser, roles ...model.Role) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", func(c *gin.Context) {
		if identity != nil {
			c.Set(ContextKeyUser, identity)
		}
	}, RequireRoles(roles...), func(c *gin.Context) {
		response.OK(c, nil, "ok")
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/probe", nil))
	return rr
}

func TestRequireRoles_NoIdentity(t *testing.T) {
	rr := executeRoles(nil, model.RoleAdmin)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Authentication required", errorBody(t, rr).Error)
}

func TestRequireRoles_Forbidden(t *testing.T) {
	rr := executeRoles(&model.AuthUser{ID: 1, Role: model.RoleStudent}, model.RoleAdmin)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Insufficient permissions", errorBody(t, rr).Error)
}

func TestRequireRoles_Allowed(t *testing.T) {
	rr := executeRoles(&model.AuthUser{ID: 1, Role: model.RoleAdmin}, model.RoleAdmin)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = executeRoles(&model.AuthUser{ID: 2, Role: model.RoleStudent}, model.RoleStudent, model.RoleAdmin)
	assert.Equal(t, http.StatusOK, rr.Code)
}
