package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"edulearn_backend/catalog"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	catalog *catalog.Catalog
	db      Pinger
}

// NewHealthHandler builds the health check. db may be nil when the catalog
// was not loaded from a database.
func NewHealthHandler(cat *catalog.Catalog, db Pinger) *HealthHandler {
	return &HealthHandler{catalog: cat, db: db}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.db != nil {
		// Check database connection
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"error":  "Database connection failed",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"courses":   h.catalog.CourseCount(),
		"tutorials": h.catalog.TutorialCount(),
	})
}
