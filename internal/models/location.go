package models

import "errors"

// Coordinate is a decimal-degree latitude/longitude pair kept as text, so it is emitted exactly as it was written in the table.
type Coordinate struct {
	Latitude  string `json:"latitude" yaml:"latitude"`
	Longitude string `json:"longitude" yaml:"longitude"`
}

// LocationKey identifies a location by city and district.
type LocationKey struct {
	City     string `json:"city"`
	District string `json:"district"`
}

// Location represents a single entry of a coordinate table: a Turkish administrative district and its coordinates.
type Location struct {
	ID        int    `json:"id,omitempty" yaml:"-"`
	City      string `json:"city" yaml:"city"`
	District  string `json:"district" yaml:"district"`
	Latitude  string `json:"latitude" yaml:"latitude"`
	Longitude string `json:"longitude" yaml:"longitude"`
}

// Key returns the (city, district) key of the location.
func (l Location) Key() LocationKey {
	return LocationKey{City: l.City, District: l.District}
}

// Coordinate returns the coordinate pair of the location.
func (l Location) Coordinate() Coordinate {
	return Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

// ErrLocationNotFound is returned when a lookup matches no location.
var ErrLocationNotFound = errors.New("location not found")
