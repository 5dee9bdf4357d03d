package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Detection DetectionConfig
	External  ExternalConfig
	Catalog   CatalogConfig
	PerfStore PerfStoreConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DetectionConfig holds the persona detection constants. The calibration
// constant and external margin are hand-tuned values, kept configurable so
// recalibration never needs a code change.
type DetectionConfig struct {
	RegistryFile        string  `mapstructure:"registry_file"`
	CalibrationConstant float64 `mapstructure:"calibration_constant"`
	ExternalMargin      float64 `mapstructure:"external_margin"`
	FallbackConfidence  float64 `mapstructure:"fallback_confidence"`
}

// ExternalConfig holds external classifier configuration
type ExternalConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	BaseURL       string        `mapstructure:"base_url"`
	APIKey        string        `mapstructure:"api_key"`
	Timeout       time.Duration `mapstructure:"timeout"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	RatePerSecond float64       `mapstructure:"rate_per_second"`
}

// CatalogConfig holds product catalog store configuration
type CatalogConfig struct {
	DBPath   string `mapstructure:"db_path"`
	SeedFile string `mapstructure:"seed_file"`
}

// PerfStoreConfig holds performance store configuration
type PerfStoreConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DBPath  string `mapstructure:"db_path"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/icatalyst/")

	// Environment variable settings
	v.SetEnvPrefix("ICATALYST")
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Detection defaults
	v.SetDefault("detection.calibration_constant", 10.0)
	v.SetDefault("detection.external_margin", 0.15)
	v.SetDefault("detection.fallback_confidence", 0.5)

	// External classifier defaults
	v.SetDefault("external.enabled", false)
	v.SetDefault("external.timeout", "3s")
	v.SetDefault("external.cache_ttl", "15m")
	v.SetDefault("external.rate_per_second", 5.0)

	// Catalog defaults
	v.SetDefault("catalog.db_path", "./data/catalog.db")

	// Performance store defaults
	v.SetDefault("perfstore.enabled", true)
	v.SetDefault("perfstore.db_path", "./data/performance.db")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Detection.CalibrationConstant <= 0 {
		return fmt.Errorf("detection calibration constant must be positive, got: %v", config.Detection.CalibrationConstant)
	}

	if config.Detection.ExternalMargin < 0 || config.Detection.ExternalMargin > 1 {
		return fmt.Errorf("detection external margin must be in [0,1], got: %v", config.Detection.ExternalMargin)
	}

	if config.External.Enabled && config.External.BaseURL == "" {
		return fmt.Errorf("external classifier base URL is required when enabled (set ICATALYST_EXTERNAL_BASE_URL)")
	}

	if config.Catalog.DBPath == "" {
		return fmt.Errorf("catalog db path is required")
	}

	if config.PerfStore.Enabled && config.PerfStore.DBPath == "" {
		return fmt.Errorf("performance store db path is required when enabled")
	}

	return nil
}
