package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Catalog CatalogConfig
	Roster  RosterConfig
	Redis   RedisConfig
	Export  ExportConfig
}

// CatalogConfig locates the reference data
type CatalogConfig struct {
	UnitsPath     string
	EquipmentPath string
	RulesPath     string // Optional: eligibility rules YAML
}

// RosterConfig holds roster limits and session lifetime
type RosterConfig struct {
	GloryLimit int
	TTL        time.Duration
}

// RedisConfig holds Redis connection settings. Empty URL means in-memory.
type RedisConfig struct {
	URL string
}

// ExportConfig holds spreadsheet export settings
type ExportConfig struct {
	Dir string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	gloryLimit, err := getEnvAsIntOrDefault("GLORY_LIMIT", 10)
	if err != nil {
		return nil, err
	}
	if gloryLimit < 0 {
		return nil, fmt.Errorf("GLORY_LIMIT must not be negative, got %d", gloryLimit)
	}

	ttl, err := getEnvAsDurationOrDefault("ROSTER_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Catalog: CatalogConfig{
			UnitsPath:     getEnvOrDefault("CATALOG_UNITS_PATH", "data/units.json"),
			EquipmentPath: getEnvOrDefault("CATALOG_EQUIPMENT_PATH", "data/equipment.json"),
			RulesPath:     os.Getenv("ELIGIBILITY_RULES_PATH"),
		},
		Roster: RosterConfig{
			GloryLimit: gloryLimit,
			TTL:        ttl,
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Export: ExportConfig{
			Dir: getEnvOrDefault("EXPORT_DIR", "out"),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return intValue, nil
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
