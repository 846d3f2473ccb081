package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvThreshold = "CAG_SIMILARITY_THRESHOLD"
	EnvLogLevel  = "CAG_LOG_LEVEL"
)

// Config holds all configuration for the cag tool.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Corpus  CorpusConfig  `yaml:"corpus"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig holds retrieval engine configuration.
type EngineConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	ResultCache         bool    `yaml:"result_cache"`
}

// CorpusConfig selects where documents are loaded from.
// Snapshot wins over Dir; with neither set the built-in corpus is used.
type CorpusConfig struct {
	Dir      string   `yaml:"dir"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Snapshot string   `yaml:"snapshot"` // bbolt file written by `cag corpus export`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			SimilarityThreshold: 0.85,
			ResultCache:         true,
		},
		Corpus: CorpusConfig{
			Includes: []string{"**/*.yaml", "**/*.yml"},
			Excludes: []string{"**/.git/**"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for cag.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "cag.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".cag", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// ApplyEnv overrides settings from the environment, reading envFiles
// (default ".env") first. Missing env files are ignored.
func (c *Config) ApplyEnv(envFiles ...string) error {
	_ = godotenv.Load(envFiles...)

	if v := os.Getenv(EnvThreshold); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvThreshold, err)
		}
		c.Engine.SimilarityThreshold = threshold
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	t := c.Engine.SimilarityThreshold
	if math.IsNaN(t) || t < 0 || t > 1 {
		return fmt.Errorf("engine.similarity_threshold must be between 0 and 1, got %v", t)
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolvePath makes p absolute relative to dir. Empty paths stay empty.
func ResolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
