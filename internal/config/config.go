package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	SeedFile      string `mapstructure:"SEED_FILE"`
	AnnotateMode  string `mapstructure:"ANNOTATE_MODE"`
	TableSource   string `mapstructure:"TABLE_SOURCE"`
	TableFile     string `mapstructure:"TABLE_FILE"`
	DBSource      string `mapstructure:"DB_SOURCE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	LogFormat     string `mapstructure:"LOG_FORMAT"`
}

// Table sources understood by TableSource.
const (
	SourceStatic   = "static"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// LoadConfig reads app.env from path, then lets environment variables override it.
// A missing config file is not an error; an optional .env in the working directory is loaded first.
func LoadConfig(path string) (config Config, err error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("SEED_FILE", "seed-db.mjs")
	v.SetDefault("ANNOTATE_MODE", "city-district")
	v.SetDefault("TABLE_SOURCE", SourceStatic)
	v.SetDefault("TABLE_FILE", "")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	return config, config.Validate()
}

// Validate checks that the table source has what it needs.
func (c Config) Validate() error {
	switch c.TableSource {
	case SourceStatic:
	case SourceFile:
		if c.TableFile == "" {
			return fmt.Errorf("config: TABLE_FILE is required when TABLE_SOURCE=%s", SourceFile)
		}
	case SourcePostgres:
		if c.DBSource == "" {
			return fmt.Errorf("config: DB_SOURCE is required when TABLE_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("config: unknown TABLE_SOURCE %q", c.TableSource)
	}
	return nil
}
