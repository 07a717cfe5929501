package service

import (
	"context"
	"fmt"

	"seed-geocoder/internal/annotator"
	"seed-geocoder/internal/models"

	"github.com/spf13/afero"
)

// TableSource provides the coordinate table used for annotation and lookups
type TableSource interface {
	Table(ctx context.Context) (*annotator.Table, error)
}

// LocationLister is the part of the repository a RepositorySource needs
type LocationLister interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
}

// StaticSource serves a table fixed at construction
type StaticSource struct {
	table *annotator.Table
}

// NewStaticSource creates a source for an in-memory table
func NewStaticSource(table *annotator.Table) *StaticSource {
	return &StaticSource{table: table}
}

func (s *StaticSource) Table(context.Context) (*annotator.Table, error) {
	return s.table, nil
}

// FileSource reads a YAML or CSV table file on every call
type FileSource struct {
	fs   afero.Fs
	path string
}

// NewFileSource creates a source backed by a table file
func NewFileSource(fs afero.Fs, path string) *FileSource {
	return &FileSource{fs: fs, path: path}
}

func (s *FileSource) Table(context.Context) (*annotator.Table, error) {
	table, err := annotator.LoadTableFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load table file: %w", err)
	}
	return table, nil
}

// RepositorySource builds the table from stored locations on every call
type RepositorySource struct {
	repo LocationLister
}

// NewRepositorySource creates a source backed by a location repository
func NewRepositorySource(repo LocationLister) *RepositorySource {
	return &RepositorySource{repo: repo}
}

func (s *RepositorySource) Table(ctx context.Context) (*annotator.Table, error) {
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list locations: %w", err)
	}

	table, err := annotator.NewTable(locations)
	if err != nil {
		return nil, fmt.Errorf("service: stored locations are not a valid table: %w", err)
	}
	return table, nil
}

// TableFinder answers location lookups from a table source
type TableFinder struct {
	source TableSource
}

// NewTableFinder creates a finder over source
func NewTableFinder(source TableSource) *TableFinder {
	return &TableFinder{source: source}
}

// FindLocation implements GeoCodeRepository.
func (f *TableFinder) FindLocation(ctx context.Context, city, district string) (*models.Location, error) {
	table, err := f.source.Table(ctx)
	if err != nil {
		return nil, err
	}

	loc, ok := table.Lookup(city, district)
	if !ok {
		return nil, fmt.Errorf("service: %s/%s: %w", city, district, models.ErrLocationNotFound)
	}
	return &loc, nil
}
