package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quizforge/qpaper-backend/internal/config"
	"github.com/quizforge/qpaper-backend/internal/handler"
	"github.com/quizforge/qpaper-backend/internal/middleware"
	"github.com/quizforge/qpaper-backend/internal/response"
	"github.com/quizforge/qpaper-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Paper      *handler.QuestionPaperHandler
	Portal     *handler.PortalHandler
	Submission *handler.SubmissionHandler
	Media      *handler.MediaHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Serve uploaded question images statically with aggressive caching (1 year).
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/signup", handlers.Auth.Signup)
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/admin/login", handlers.Auth.AdminLogin)
	}

	// ─── 2. User Group (Learner JWT) ───────────────────────────────────
	userAPI := router.Group("/api/v1/user")
	userAPI.Use(middleware.RequireUserJWT(authService))
	{
		userAPI.GET("/question-papers", handlers.Portal.ListPapers)
		userAPI.GET("/question-papers/:id", handlers.Portal.GetPaper)
		userAPI.POST("/submissions", handlers.Submission.Submit)
		userAPI.GET("/submissions/:question_paper_id", handlers.Submission.GetSubmission)
	}

	// ─── 3. Admin Group (Admin JWT) ────────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		adminAPI.POST("/media/upload", handlers.Media.UploadMedia)

		adminAPI.POST("/question-papers/upload", handlers.Paper.UploadAndParse)
		adminAPI.POST("/question-papers", handlers.Paper.Create)
		adminAPI.GET("/question-papers", handlers.Paper.List)
		adminAPI.GET("/question-papers/:id", handlers.Paper.Get)
		adminAPI.PUT("/question-papers/:id", handlers.Paper.Update)
		adminAPI.DELETE("/question-papers/:id", handlers.Paper.Delete)
	}

	return router
}
