package main

import (
	"context"
	"fmt"
	"os"

	"seed-geocoder/internal/annotator"
	"seed-geocoder/internal/config"
	"seed-geocoder/internal/graceful"
	"seed-geocoder/internal/logging"
	"seed-geocoder/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type importOptions struct {
	file      string
	configDir string
	replace   bool
}

func main() {
	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("import failed")
		cancel()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:           "importer --file <table.csv|table.yaml>",
		Short:         "Load a coordinate table into PostgreSQL",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Path to the table file to import")
	cmd.Flags().StringVar(&opts.configDir, "config", "configs", "Directory holding app.env")
	cmd.Flags().BoolVar(&opts.replace, "replace", false, "Replace the stored table instead of appending to it")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runImport(ctx context.Context, opts *importOptions) error {
	// Load config
	cfg, err := config.LoadConfig(opts.configDir)
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	if cfg.DBSource == "" {
		return fmt.Errorf("DB_SOURCE is required")
	}

	log.Info().Str("file", opts.file).Msg("starting import")

	table, err := annotator.LoadTableFile(afero.NewOsFs(), opts.file)
	if err != nil {
		return fmt.Errorf("error parsing table: %w", err)
	}
	locations := table.Locations()
	log.Info().Int("records", len(locations)).Msg("parsed table")

	// Connect to DB
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)

	// Ensure table exists
	if err := repo.CreateSchema(ctx); err != nil {
		return err
	}

	before, err := repo.CountLocations(ctx)
	if err != nil {
		return err
	}

	// Insert records
	var inserted int64
	if opts.replace {
		before = 0
		inserted, err = repo.ReplaceLocations(ctx, locations)
	} else {
		inserted, err = repo.CopyLocations(ctx, locations)
	}
	if err != nil {
		return err
	}

	// Verify data
	if err := verifyImport(ctx, repo, before+len(locations)); err != nil {
		return err
	}

	log.Info().Int64("inserted", inserted).Msg("successfully imported coordinate table")
	return nil
}

func verifyImport(ctx context.Context, repo *repository.Repository, expectedCount int) error {
	count, err := repo.CountLocations(ctx)
	if err != nil {
		return err
	}

	if count != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, count)
	}

	// Stored rows must still form a valid table.
	locations, err := repo.ListLocations(ctx)
	if err != nil {
		return err
	}
	if _, err := annotator.NewTable(locations); err != nil {
		return fmt.Errorf("stored table is invalid: %w", err)
	}

	if len(locations) > 0 {
		sample := locations[0]
		log.Info().
			Str("city", sample.City).
			Str("district", sample.District).
			Str("latitude", sample.Latitude).
			Str("longitude", sample.Longitude).
			Msg("sample row")
	}
	return nil
}
