package routes

import (
	"edulearn_backend/catalog"
	"edulearn_backend/handlers"
	"edulearn_backend/middleware"
	"edulearn_backend/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Options carries the optional collaborators of the router.
type Options struct {
	// Limiter throttles /api/v1 per client IP. Nil disables rate limiting.
	Limiter middleware.Limiter
	// DB is pinged by the health check. Nil when the catalog is not database backed.
	DB handlers.Pinger
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, cat *catalog.Catalog, content models.SiteContent, logger *zap.Logger, opts Options) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cat, opts.DB)
	siteHandler := handlers.NewSiteHandler(cat, content)
	courseHandler := handlers.NewCourseHandler(cat, content.Reviews)
	tutorialHandler := handlers.NewTutorialHandler(cat)

	r.GET("/health", healthHandler.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	if opts.Limiter != nil {
		api.Use(middleware.RateLimit(opts.Limiter, "api", logger))
	}
	{
		// Site shell routes
		api.GET("/navigation", siteHandler.GetNavigation)
		api.GET("/home", siteHandler.GetHome)
		api.GET("/about", siteHandler.GetAbout)

		// Course routes
		api.GET("/courses", courseHandler.GetCourses)
		api.GET("/courses/categories", courseHandler.GetCourseCategories)
		api.GET("/courses/:id", courseHandler.GetCourse)
		api.GET("/courses/:id/related", courseHandler.GetRelatedCourses)

		// Tutorial routes
		api.GET("/tutorials", tutorialHandler.GetTutorials)
		api.GET("/tutorials/featured", tutorialHandler.GetFeaturedTutorials)
		api.GET("/tutorials/categories", tutorialHandler.GetTutorialCategories)
		api.GET("/tutorials/:id", tutorialHandler.GetTutorial)
	}
}
