// Package bootstrap turns configuration into the table source shared by the commands.
package bootstrap

import (
	"context"
	"fmt"

	"seed-geocoder/internal/annotator"
	"seed-geocoder/internal/config"
	"seed-geocoder/internal/repository"
	"seed-geocoder/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Sources holds the table source selected by the configuration and what it needs to release.
type Sources struct {
	Table  service.TableSource
	Finder service.GeoCodeRepository
	pool   *pgxpool.Pool
}

// Close releases the database pool, if any.
func (s *Sources) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// OpenSources builds the table source named by cfg.TableSource.
func OpenSources(ctx context.Context, cfg config.Config, fs afero.Fs) (*Sources, error) {
	switch cfg.TableSource {
	case config.SourceStatic, "":
		source := service.NewStaticSource(annotator.DefaultTable())
		return &Sources{Table: source, Finder: service.NewTableFinder(source)}, nil

	case config.SourceFile:
		source := service.NewFileSource(fs, cfg.TableFile)
		// Fail early on a broken table file.
		if _, err := source.Table(ctx); err != nil {
			return nil, err
		}
		return &Sources{Table: source, Finder: service.NewTableFinder(source)}, nil

	case config.SourcePostgres:
		pool, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			return nil, fmt.Errorf("cannot connect to db: %w", err)
		}
		repo := repository.NewRepository(pool)
		log.Debug().Msg("using postgres coordinate table")
		return &Sources{Table: service.NewRepositorySource(repo), Finder: repo, pool: pool}, nil

	default:
		return nil, fmt.Errorf("unknown table source %q", cfg.TableSource)
	}
}
