package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"sigs.k8s.io/yaml"

	"edulearn_backend/catalog"
	"edulearn_backend/models"
)

// LoadSiteContent decodes the static page copy.
func LoadSiteContent(data []byte) (models.SiteContent, error) {
	var content models.SiteContent
	if err := yaml.UnmarshalStrict(data, &content); err != nil {
		return models.SiteContent{}, fmt.Errorf("error parsing site content: %w", err)
	}
	return content, nil
}

type SiteHandler struct {
	catalog *catalog.Catalog
	content models.SiteContent
}

func NewSiteHandler(cat *catalog.Catalog, content models.SiteContent) *SiteHandler {
	return &SiteHandler{catalog: cat, content: content}
}

func (h *SiteHandler) GetNavigation(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.Navigation)
}

// GetHome returns the landing page copy with the featured courses filled in
func (h *SiteHandler) GetHome(c *gin.Context) {
	home := h.content.Home
	home.FeaturedCourses = h.catalog.FeaturedCourses()
	c.JSON(http.StatusOK, home)
}

func (h *SiteHandler) GetAbout(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.About)
}
