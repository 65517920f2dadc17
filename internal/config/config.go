package config

import (
	"os"
	"strconv"

	"sheetlens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Paths    PathConfig
	Analysis AnalysisConfig
}

// PathConfig holds file system paths
type PathConfig struct {
	// DataDir is where uploaded files are kept so rows can be re-decoded
	DataDir string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port        string
	GinMode     string
	MaxUploadMB int64
}

// DatabaseConfig holds the optional catalog persistence settings. An empty
// URL means the in-memory catalog is used.
type DatabaseConfig struct {
	URL string
}

// AnalysisConfig holds analysis tuning knobs
type AnalysisConfig struct {
	// SampleSize is how many leading rows the quick classifier inspects
	SampleSize int
	// FullScanClassify switches classification to the whole-column scan
	FullScanClassify bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "release"),
			MaxUploadMB: getEnvInt64("MAX_UPLOAD_MB", 32),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Paths: PathConfig{
			DataDir: getEnv("DATA_DIR", "data"),
		},
		Analysis: AnalysisConfig{
			SampleSize:       getEnvInt("CLASSIFIER_SAMPLE_SIZE", 5),
			FullScanClassify: getEnvBool("CLASSIFIER_FULL_SCAN", false),
		},
	}

	if config.Analysis.SampleSize < 1 {
		return nil, errors.ConfigInvalid("CLASSIFIER_SAMPLE_SIZE must be at least 1")
	}
	if config.Server.MaxUploadMB < 1 {
		return nil, errors.ConfigInvalid("MAX_UPLOAD_MB must be at least 1")
	}
	return config, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
