package service

import (
	"context"
	"fmt"

	"seed-geocoder/internal/annotator"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// AnnotateService inserts coordinates into seed documents
type AnnotateService struct {
	source TableSource
	fs     afero.Fs
	opts   annotator.Options
}

// NewAnnotateService creates a new annotate service reading and writing files through fs
func NewAnnotateService(source TableSource, fs afero.Fs) *AnnotateService {
	return &AnnotateService{source: source, fs: fs}
}

// WithOptions returns a copy of the service using opts for every annotation
func (s *AnnotateService) WithOptions(opts annotator.Options) *AnnotateService {
	c := *s
	c.opts = opts
	return &c
}

// AnnotateText annotates an in-memory document
func (s *AnnotateService) AnnotateText(ctx context.Context, doc string, mode annotator.Mode) (string, annotator.Report, error) {
	table, err := s.source.Table(ctx)
	if err != nil {
		return "", annotator.Report{Mode: mode}, fmt.Errorf("service: failed to load coordinate table: %w", err)
	}

	out, report, err := annotator.AnnotateWithOptions(doc, table, mode, s.opts)
	if err != nil {
		return "", report, fmt.Errorf("service: failed to annotate document: %w", err)
	}

	return out, report, nil
}

// AnnotateFile reads the whole file, annotates it and overwrites it in place.
// With dryRun the file is left untouched. Zero matches is not an error.
func (s *AnnotateService) AnnotateFile(ctx context.Context, path string, mode annotator.Mode, dryRun bool) (annotator.Report, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		return annotator.Report{Mode: mode}, fmt.Errorf("service: failed to stat seed file: %w", err)
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return annotator.Report{Mode: mode}, fmt.Errorf("service: failed to read seed file: %w", err)
	}

	out, report, err := s.AnnotateText(ctx, string(data), mode)
	if err != nil {
		return report, err
	}

	logger := log.With().Str("file", path).Str("mode", mode.String()).Logger()
	for _, key := range report.Missing {
		logger.Debug().Str("city", key.City).Str("district", key.District).Msg("anchor not found")
	}

	if dryRun {
		logger.Info().Int("inserted", report.Inserted).Int("missing", len(report.Missing)).Msg("dry run, seed file not written")
		return report, nil
	}

	if err := afero.WriteFile(s.fs, path, []byte(out), info.Mode().Perm()); err != nil {
		return report, fmt.Errorf("service: failed to write seed file: %w", err)
	}

	logger.Info().Int("inserted", report.Inserted).Int("missing", len(report.Missing)).Msg("seed file annotated")
	return report, nil
}
