package annotator

import (
	"fmt"
	"strconv"
	"strings"

	"seed-geocoder/internal/models"
)

// Table is an ordered, read-only coordinate table.
type Table struct {
	entries []models.Location
}

// NewTable validates locs and copies them into a table, keeping their order.
// Every entry needs a district and decimal coordinates within range; (city, district) keys must be unique.
func NewTable(locs []models.Location) (*Table, error) {
	seen := make(map[models.LocationKey]struct{}, len(locs))
	entries := make([]models.Location, 0, len(locs))

	for i, loc := range locs {
		if err := validateLocation(loc); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, ok := seen[loc.Key()]; ok {
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateKey, loc.City, loc.District)
		}
		seen[loc.Key()] = struct{}{}
		entries = append(entries, loc)
	}

	return &Table{entries: entries}, nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Locations returns a copy of the entries in table order.
func (t *Table) Locations() []models.Location {
	if t == nil {
		return nil
	}
	out := make([]models.Location, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup finds an entry by district and, when city is not empty, by city as well.
func (t *Table) Lookup(city, district string) (models.Location, bool) {
	if t == nil {
		return models.Location{}, false
	}
	for _, loc := range t.entries {
		if loc.District != district {
			continue
		}
		if city == "" || loc.City == city {
			return loc, true
		}
	}
	return models.Location{}, false
}

func (t *Table) validateFor(mode Mode) error {
	switch mode {
	case ModeCityDistrict:
		for _, loc := range t.entries {
			if loc.City == "" {
				return fmt.Errorf("%w: district %q has no city", ErrInvalidLocation, loc.District)
			}
		}
	case ModeDistrictImages:
		seen := make(map[string]struct{}, len(t.entries))
		for _, loc := range t.entries {
			if _, ok := seen[loc.District]; ok {
				return fmt.Errorf("%w: district %q appears more than once", ErrDuplicateKey, loc.District)
			}
			seen[loc.District] = struct{}{}
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	return nil
}

func validateLocation(loc models.Location) error {
	if strings.TrimSpace(loc.District) == "" {
		return fmt.Errorf("%w: empty district", ErrInvalidLocation)
	}
	if strings.ContainsAny(loc.City+loc.District, "\"\n") {
		return fmt.Errorf("%w: %s/%s contains a quote or newline", ErrInvalidLocation, loc.City, loc.District)
	}
	if err := validateDegrees(loc.Latitude, 90); err != nil {
		return fmt.Errorf("%w: latitude of %s: %v", ErrInvalidLocation, loc.District, err)
	}
	if err := validateDegrees(loc.Longitude, 180); err != nil {
		return fmt.Errorf("%w: longitude of %s: %v", ErrInvalidLocation, loc.District, err)
	}
	return nil
}

func validateDegrees(s string, limit float64) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a decimal number: %q", s)
	}
	if v < -limit || v > limit {
		return fmt.Errorf("%s out of range [-%g, %g]", s, limit, limit)
	}
	return nil
}
