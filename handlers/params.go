package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"edulearn_backend/models"
)

// paramID parses a positive integer path parameter.
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func bindFilter(c *gin.Context) (models.FilterRequest, error) {
	var req models.FilterRequest
	err := c.ShouldBindQuery(&req)
	return req, err
}

func filterResponse(req models.FilterRequest) models.FilterResponse {
	resp := models.FilterResponse{
		Query:    req.Query,
		Level:    req.Level,
		Category: req.Category,
		Bucket:   req.Bucket,
	}
	for _, v := range []*string{&resp.Level, &resp.Category, &resp.Bucket} {
		if *v == "" {
			*v = models.All
		}
	}
	return resp
}
