package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Engine.SimilarityThreshold != 0.85 {
		t.Errorf("expected SimilarityThreshold=0.85, got %f", cfg.Engine.SimilarityThreshold)
	}
	if !cfg.Engine.ResultCache {
		t.Error("expected ResultCache enabled by default")
	}
	if cfg.Corpus.Dir != "" || cfg.Corpus.Snapshot != "" {
		t.Error("expected built-in corpus by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected Level=info, got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "cag.yaml")

	content := `
engine:
  similarity_threshold: 0.5
  result_cache: false
corpus:
  dir: docs
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Engine.SimilarityThreshold != 0.5 {
		t.Errorf("expected SimilarityThreshold=0.5, got %f", cfg.Engine.SimilarityThreshold)
	}
	if cfg.Engine.ResultCache {
		t.Error("expected ResultCache=false")
	}
	if cfg.Corpus.Dir != "docs" {
		t.Errorf("expected Dir=docs, got %s", cfg.Corpus.Dir)
	}
	if len(cfg.Corpus.Includes) != 2 {
		t.Errorf("expected default includes to survive partial config, got %v", cfg.Corpus.Includes)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, ".cag"), 0755); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(tmpDir, ".cag", "config.yaml")

	content := `
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", cfg.Logging.Level)
	}
}

func TestApplyEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte(EnvLogLevel+"=warn\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvThreshold, "0.6")
	// godotenv.Load does not override variables that are already set.
	t.Setenv(EnvLogLevel, "")
	os.Unsetenv(EnvLogLevel)

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(envFile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Engine.SimilarityThreshold != 0.6 {
		t.Errorf("expected threshold from env, got %f", cfg.Engine.SimilarityThreshold)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level from .env file, got %s", cfg.Logging.Level)
	}
}

func TestApplyEnvInvalidThreshold(t *testing.T) {
	t.Setenv(EnvThreshold, "high")
	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	for _, v := range []float64{-0.01, 1.01} {
		cfg := DefaultConfig()
		cfg.Engine.SimilarityThreshold = v
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for threshold %v", v)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cag.yaml")
	cfg := DefaultConfig()
	cfg.Corpus.Snapshot = "corpus.db"
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Corpus.Snapshot != "corpus.db" {
		t.Errorf("expected snapshot path to survive round trip, got %q", loaded.Corpus.Snapshot)
	}
}

func TestResolvePath(t *testing.T) {
	if got := ResolvePath("/root", "docs"); got != filepath.Join("/root", "docs") {
		t.Errorf("unexpected %s", got)
	}
	if got := ResolvePath("/root", ""); got != "" {
		t.Errorf("expected empty, got %s", got)
	}
	if got := ResolvePath("/root", "/abs/x.db"); got != "/abs/x.db" {
		t.Errorf("expected absolute path unchanged, got %s", got)
	}
}
