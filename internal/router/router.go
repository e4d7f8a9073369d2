package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/unipath/admission-portal/internal/config"
	"github.com/unipath/admission-portal/internal/handler"
	"github.com/unipath/admission-portal/internal/middleware"
	"github.com/unipath/admission-portal/internal/model"
	"github.com/unipath/admission-portal/internal/response"
	"github.com/unipath/admission-portal/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Course    *handler.CourseHandler
	Admission *handler.AdmissionHandler
	Student   *handler.StudentHandler
	Admin     *handler.AdminHandler
	System    *handler.SystemHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	users middleware.UserLoader,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorTranslator(log))

	requireAuth := middleware.RequireAuth(authService, users)
	requireAdmin := middleware.RequireRoles(model.RoleAdmin)

	// Health check.
	router.GET("/health", handlers.System.Health)

	// Rate limiter for credential endpoints (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── Auth (Public, Rate Limited) ───────────────────────────────────
	auth := router.Group("/api/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
	}

	// ─── Courses (Public Reads, Admin Mutations) ───────────────────────
	courses := router.Group("/api/courses")
	{
		courses.GET("", handlers.Course.List)
		courses.GET("/:id", handlers.Course.GetByID)
		courses.POST("", requireAuth, requireAdmin, handlers.Course.Create)
		courses.PUT("/:id", requireAuth, requireAdmin, handlers.Course.Update)
		courses.DELETE("/:id", requireAuth, requireAdmin, handlers.Course.Delete)
	}

	// ─── Admissions (Authenticated) ────────────────────────────────────
	admissions := router.Group("/api/admissions")
	admissions.Use(requireAuth)
	{
		admissions.POST("/apply", handlers.Admission.Apply)
		admissions.GET("", handlers.Admission.List)
	}

	// ─── Students (Authenticated, Self-Scoped) ─────────────────────────
	students := router.Group("/api/students")
	students.Use(requireAuth)
	{
		students.GET("/profile", handlers.Student.Profile)
		students.GET("/admissions", handlers.Student.MyAdmissions)
	}

	// ─── Admin ─────────────────────────────────────────────────────────
	admin := router.Group("/api/admin")
	admin.Use(requireAuth, requireAdmin)
	{
		admin.GET("/dashboard", handlers.Admin.Dashboard)
		admin.GET("/students", handlers.Admin.Students)
		admin.GET("/admissions", handlers.Admin.Admissions)
	}

	return router
}
