package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"edulearn_backend/catalog"
	"edulearn_backend/models"
)

type CourseHandler struct {
	catalog *catalog.Catalog
	reviews []models.ReviewResponse
}

func NewCourseHandler(cat *catalog.Catalog, reviews []models.ReviewResponse) *CourseHandler {
	return &CourseHandler{catalog: cat, reviews: reviews}
}

// GetCourses handles the filtered course listing
func (h *CourseHandler) GetCourses(c *gin.Context) {
	req, err := bindFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	courses := h.catalog.SearchCourses(catalog.CriteriaFrom(req), catalog.BucketFrom(req))

	c.JSON(http.StatusOK, models.CourseListResponse{
		Courses:    courses,
		Total:      len(courses),
		Categories: h.catalog.CourseCategories(),
		Levels:     models.Levels,
		Filters:    filterResponse(req),
	})
}

func (h *CourseHandler) GetCourseCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalog.CourseCategories()})
}

// GetCourse returns one course with its lesson outline, reviews and related courses
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	course, found := h.catalog.CourseByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	c.JSON(http.StatusOK, models.CourseDetailResponse{
		Course:  course,
		Lessons: catalog.LessonOutline(course),
		Reviews: h.reviews,
		Related: h.catalog.RelatedCourses(id),
	})
}

func (h *CourseHandler) GetRelatedCourses(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	if _, found := h.catalog.CourseByID(id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": h.catalog.RelatedCourses(id)})
}
