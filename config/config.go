package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Compression CompressionConfig `yaml:"compression"`
	LogLevel    string            `yaml:"log_level"` // Logging level (debug, info, warn, error)
}

// Holds stream-session configuration.
type CompressionConfig struct {
	Gzip       bool `yaml:"gzip"`        // Use gzip framing instead of zlib
	Level      int  `yaml:"level"`       // Compression level (-2 to 9, -1 = codec default)
	BufferSize int  `yaml:"buffer_size"` // Max bytes per sink write / source read
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Compression: CompressionConfig{
			Gzip:       false,
			Level:      -1,
			BufferSize: 2048,
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	switch config.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}

	if config.Compression.Level < -2 || config.Compression.Level > 9 {
		return fmt.Errorf("level must be between -2 and 9")
	}

	if config.Compression.BufferSize <= 0 {
		return fmt.Errorf("buffer_size must be greater than 0")
	}

	return nil
}
