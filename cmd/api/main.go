package main

import (
	"context"
	"net/http"

	"seed-geocoder/internal/bootstrap"
	"seed-geocoder/internal/config"
	"seed-geocoder/internal/handler"
	"seed-geocoder/internal/logging"
	"seed-geocoder/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logging.Setup(config.LogLevel, config.LogFormat)

	// Coordinate table
	sources, err := bootstrap.OpenSources(context.Background(), config, afero.NewOsFs())
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open coordinate table")
	}
	defer sources.Close()

	// Initialize layers
	geoCodeService := service.NewGeoCodeService(sources.Finder)
	reverseGeocodeService := service.NewReverseGeoCodeService(sources.Table, service.DefaultMaxDistanceKm)
	annotateService := service.NewAnnotateService(sources.Table, afero.NewReadOnlyFs(afero.NewOsFs()))

	geoCodeHandler := handler.NewGeoCodeHandler(geoCodeService)
	reverseGeocodeHandler := handler.NewReverseGeocodeHandler(reverseGeocodeService)
	annotateHandler := handler.NewAnnotateHandler(annotateService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/coordinates", geoCodeHandler.GeoCode)
	r.GET("/reverse-geocode", reverseGeocodeHandler.ReverseGeocode)
	r.POST("/annotate", annotateHandler.Annotate)

	log.Info().Str("address", config.ServerAddress).Str("table", config.TableSource).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
