package annotator

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"

	"seed-geocoder/internal/models"
)

// tableDocument is the YAML layout of a table file.
type tableDocument struct {
	Locations []models.Location `yaml:"locations"`
}

var csvColumns = []string{"city", "district", "latitude", "longitude"}

// LoadTableFile reads a YAML (.yaml, .yml) or CSV (.csv) table file from fsys.
func LoadTableFile(fsys afero.Fs, path string) (*Table, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file: %w", err)
	}
	defer f.Close()

	var locs []models.Location
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		locs, err = ParseYAML(f)
	case ".csv":
		locs, err = ParseCSV(f)
	default:
		return nil, fmt.Errorf("unsupported table file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return NewTable(locs)
}

// ParseYAML decodes a `locations:` list.
func ParseYAML(r io.Reader) ([]models.Location, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc tableDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	for i := range doc.Locations {
		doc.Locations[i] = normalize(doc.Locations[i])
	}
	return doc.Locations, nil
}

// ParseCSV reads rows of city,district,latitude,longitude. The first row must be a header naming those columns, in any order.
func ParseCSV(r io.Reader) ([]models.Location, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q in header", col)
		}
	}

	var locs []models.Location
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		field := func(col string) string {
			i := index[col]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		locs = append(locs, normalize(models.Location{
			City:      field("city"),
			District:  field("district"),
			Latitude:  field("latitude"),
			Longitude: field("longitude"),
		}))
	}

	return locs, nil
}

// normalize puts names into NFC so they match seed files written in composed form.
func normalize(loc models.Location) models.Location {
	loc.City = norm.NFC.String(strings.TrimSpace(loc.City))
	loc.District = norm.NFC.String(strings.TrimSpace(loc.District))
	loc.Latitude = strings.TrimSpace(loc.Latitude)
	loc.Longitude = strings.TrimSpace(loc.Longitude)
	return loc
}
