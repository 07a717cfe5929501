package main

import (
	"context"
	"os"

	"seed-geocoder/internal/graceful"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	if err := newRootCmd(afero.NewOsFs()).ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("annotation failed")
		cancel()
		os.Exit(1)
	}
}
