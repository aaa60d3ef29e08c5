package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "THIKANA"

// Config holds the application configuration loaded from the environment.
// The lookup endpoint and the city filter are fixed and intentionally absent here.
type Config struct {
	AppName               string        `mapstructure:"app_name" validate:"required"`
	Env                   string        `mapstructure:"app_env"`
	LogLevel              string        `mapstructure:"log_level" validate:"oneof=debug info warn warning error"`
	OutputFormat          string        `mapstructure:"output_format" validate:"oneof=text json yaml"`
	HTTPTimeoutSeconds    int64         `mapstructure:"http_timeout_seconds" validate:"gte=0"`
	MaxConcurrentSearches int64         `mapstructure:"max_concurrent_searches" validate:"gte=0"`
	HTTPTimeout           time.Duration `mapstructure:"-"`
}

var validate = validator.New()

// Load reads configuration from an optional .env file and THIKANA_* environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("app_name", "thikana")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "warn")
	v.SetDefault("output_format", "text")
	v.SetDefault("http_timeout_seconds", 0)    // no timeout
	v.SetDefault("max_concurrent_searches", 0) // unbounded

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	return &cfg, nil
}
