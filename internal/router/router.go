package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rwedu/schoolverify-backend/internal/config"
	"github.com/rwedu/schoolverify-backend/internal/handler"
	"github.com/rwedu/schoolverify-backend/internal/middleware"
	"github.com/rwedu/schoolverify-backend/internal/response"
)

// Reference data only changes with a deploy.
const geographyMaxAge = 24 * time.Hour

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Health       *handler.HealthHandler
	Geography    *handler.GeographyHandler
	Dashboard    *handler.DashboardHandler
	School       *handler.SchoolHandler
	Verification *handler.VerificationHandler
	Notification *handler.NotificationHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// limiter guards the verification actions; nil disables it.
func SetupRouter(
	cfg *config.Config,
	handlers *Handlers,
	limiter *middleware.RateLimiter,
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
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID first so the access log can carry it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Brotli())

	router.GET("/health", handlers.Health.Health)

	v1 := router.Group("/api/v1")
	{
		geo := v1.Group("/geography")
		geo.Use(middleware.CacheControl(geographyMaxAge))
		{
			geo.GET("/provinces", handlers.Geography.ListProvinces)
			geo.GET("/districts", handlers.Geography.ListDistricts)
		}

		v1.GET("/dashboard", handlers.Dashboard.GetDashboard)
		v1.GET("/analytics", handlers.Dashboard.GetAnalytics)
		v1.GET("/stats", handlers.School.GetStats)

		v1.GET("/schools", handlers.School.ListSchools)
		v1.GET("/schools/:id", handlers.School.GetSchool)
		v1.GET("/map/schools", handlers.School.ListMarkers)

		verification := v1.Group("/verification")
		{
			verification.GET("/queue", handlers.Verification.GetQueue)

			actions := verification.Group("/schools/:id")
			if limiter != nil {
				actions.Use(limiter.Middleware())
			}
			actions.POST("/approve", handlers.Verification.Approve)
			actions.POST("/reject", handlers.Verification.Reject)
		}
	}

	router.GET("/ws/v1/notifications", handlers.Notification.Stream)

	return router
}
