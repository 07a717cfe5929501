package service

import (
	"context"
	"fmt"
	"strings"

	"seed-geocoder/internal/models"
)

// GeoCodeService resolves city/district names to coordinates
type GeoCodeService struct {
	repo GeoCodeRepository
}

// GeoCodeRepository interface for dependency injection
type GeoCodeRepository interface {
	FindLocation(ctx context.Context, city, district string) (*models.Location, error)
}

// NewGeoCodeService creates a new geo code service
func NewGeoCodeService(repo GeoCodeRepository) *GeoCodeService {
	return &GeoCodeService{repo: repo}
}

// Geocode returns the table entry for district, narrowed to city when given
func (s *GeoCodeService) Geocode(ctx context.Context, city, district string) (*models.Location, error) {
	city, district = strings.TrimSpace(city), strings.TrimSpace(district)
	if district == "" {
		return nil, fmt.Errorf("service: district cannot be empty")
	}

	location, err := s.repo.FindLocation(ctx, city, district)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find location: %w", err)
	}

	return location, nil
}
