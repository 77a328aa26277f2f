// Package config provides configuration loading and structs for the Kuraberu server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool          `yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Compare CompareConfig `yaml:"compare"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CatalogConfig holds the product catalog source settings.
type CatalogConfig struct {
	// Path is the catalog file (csv, xlsx or sqlite database).
	Path string `yaml:"path"`
	// Format is one of "csv", "xlsx", "sqlite". Empty means inferred
	// from the path extension.
	Format string `yaml:"format"`
	// Table is the products table name for the sqlite format.
	Table string `yaml:"table"`
	// Watch reloads the catalog when the file changes.
	Watch bool `yaml:"watch"`
}

// CompareConfig holds comparison defaults applied by the adapters.
type CompareConfig struct {
	// DefaultSort orders results when the request names no sort key:
	// "sponsored_first", "finder_score" or "price_rating".
	DefaultSort string `yaml:"default_sort"`
	// MaxResults caps the number of products returned; 0 means all.
	MaxResults int `yaml:"max_results"`
	// OtherGenderColumn is the price column gender Other resolves to,
	// "female" or "male".
	OtherGenderColumn string `yaml:"other_gender_column"`
}

// Load reads and parses the config file at path, expands the catalog path,
// and applies defaults. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Catalog.Path = expandPath(cfg.Catalog.Path, configDir)

	return &cfg, nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
