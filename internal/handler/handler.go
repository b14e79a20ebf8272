// Package handler exposes the application over HTTP using gin.
package handler

import (
	"net/http"
	"strconv"

	"github.com/BangKartavya/evently/internal/domain"
	"github.com/BangKartavya/evently/pkg/response"
	"github.com/gin-gonic/gin"
)

// respondError maps a classified domain error onto the response envelope.
// Unclassified errors never leak their cause.
func respondError(c *gin.Context, err error) {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, response.NotFound(""))
	case domain.KindForbidden:
		c.JSON(http.StatusForbidden, response.Forbidden(""))
	case domain.KindValidation:
		c.JSON(http.StatusBadRequest, response.ValidationFailed(domain.FieldErrors(err)))
	case domain.KindUpload:
		c.JSON(response.GetHTTPStatus(response.ErrCodeUploadFailed),
			response.Error(response.ErrCodeUploadFailed, "Upload failed"))
	default:
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
	}
}

// pageParam parses a 1-based page query parameter, defaulting to 1
func pageParam(c *gin.Context, key string) int {
	if v := c.Query(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return 1
}
