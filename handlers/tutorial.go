package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"edulearn_backend/catalog"
	"edulearn_backend/models"
)

type TutorialHandler struct {
	catalog *catalog.Catalog
}

func NewTutorialHandler(cat *catalog.Catalog) *TutorialHandler {
	return &TutorialHandler{catalog: cat}
}

// GetTutorials handles the filtered tutorial listing
func (h *TutorialHandler) GetTutorials(c *gin.Context) {
	req, err := bindFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tutorials := h.catalog.SearchTutorials(catalog.CriteriaFrom(req), catalog.BucketFrom(req))

	c.JSON(http.StatusOK, models.TutorialListResponse{
		Tutorials:  tutorials,
		Total:      len(tutorials),
		Categories: h.catalog.TutorialCategories(),
		Levels:     models.Levels,
		Filters:    filterResponse(req),
	})
}

func (h *TutorialHandler) GetFeaturedTutorials(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tutorials": h.catalog.FeaturedTutorials()})
}

func (h *TutorialHandler) GetTutorialCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalog.TutorialCategories()})
}

func (h *TutorialHandler) GetTutorial(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tutorial ID"})
		return
	}

	tutorial, found := h.catalog.TutorialByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tutorial not found"})
		return
	}

	c.JSON(http.StatusOK, tutorial)
}
