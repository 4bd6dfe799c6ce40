package routes

import (
	"edulearn_backend/catalog"
	"edulearn_backend/middleware"
	"edulearn_backend/models"

	"github.com/andybalholm/brotli"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the engine with the standard middleware chain and every
// route registered. A nil origins slice allows all origins.
func NewRouter(cat *catalog.Catalog, content models.SiteContent, logger *zap.Logger, origins []string, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())

	// Setup CORS
	config := cors.DefaultConfig()
	if len(origins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader}
	config.ExposeHeaders = []string{middleware.RequestIDHeader}
	config.AllowMethods = []string{"GET", "HEAD", "OPTIONS"}
	r.Use(cors.New(config))

	r.Use(middleware.Brotli(brotli.DefaultCompression))

	SetupRoutes(r, cat, content, logger, opts)
	return r
}
