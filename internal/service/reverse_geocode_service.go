package service

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"seed-geocoder/internal/models"
)

const (
	earthRadiusKm = 6371.0

	// DefaultMaxDistanceKm bounds how far a point may be from a district centre.
	DefaultMaxDistanceKm = 25.0
)

// ReverseGeoCodeService finds the table entry nearest to a coordinate
type ReverseGeoCodeService struct {
	source        TableSource
	maxDistanceKm float64
}

// NewReverseGeoCodeService creates a new reverse geo code service
func NewReverseGeoCodeService(source TableSource, maxDistanceKm float64) *ReverseGeoCodeService {
	if maxDistanceKm <= 0 {
		maxDistanceKm = DefaultMaxDistanceKm
	}
	return &ReverseGeoCodeService{source: source, maxDistanceKm: maxDistanceKm}
}

// ReverseGeocode returns the nearest district within the maximum distance, or nil when there is none
func (s *ReverseGeoCodeService) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Location, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("service: invalid latitude: %f", lat)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("service: invalid longitude: %f", lon)
	}

	table, err := s.source.Table(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load coordinate table: %w", err)
	}

	var nearest *models.Location
	best := math.Inf(1)
	for _, loc := range table.Locations() {
		// Table entries are validated decimals.
		llat, _ := strconv.ParseFloat(loc.Latitude, 64)
		llon, _ := strconv.ParseFloat(loc.Longitude, 64)

		if d := haversineKm(lat, lon, llat, llon); d < best {
			best = d
			loc := loc
			nearest = &loc
		}
	}

	if best > s.maxDistanceKm {
		return nil, nil
	}
	return nearest, nil
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
