package handler

import (
	"context"
	"errors"
	"net/http"

	"seed-geocoder/internal/models"

	"github.com/gin-gonic/gin"
)

// GeoCodeHandler handles coordinate lookups
type GeoCodeHandler struct {
	service GeoCodeService
}

// GeoCodeService interface for dependency injection
type GeoCodeService interface {
	Geocode(ctx context.Context, city, district string) (*models.Location, error)
}

// NewGeoCodeHandler creates a new geocode handler
func NewGeoCodeHandler(svc GeoCodeService) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode handles GET /coordinates requests
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	district := c.Query("district")
	if district == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'district'"})
		return
	}

	location, err := h.service.Geocode(c.Request.Context(), c.Query("city"), district)
	if err != nil {
		if errors.Is(err, models.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no coordinates known for the specified district"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, location)
}
