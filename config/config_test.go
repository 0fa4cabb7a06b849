package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(New(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Providers.Backend != BackendHeuristic {
		t.Fatalf("expected heuristic backend, got %q", cfg.Providers.Backend)
	}
	if cfg.Server.Address() != "127.0.0.1:5000" {
		t.Fatalf("unexpected address %s", cfg.Server.Address())
	}
	if cfg.Providers.EmbeddingDim != 384 {
		t.Fatalf("expected embedding_dim 384, got %d", cfg.Providers.EmbeddingDim)
	}
}

func TestLoadParsesYamlFromEnvDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CONFIG_ENV", "prod")
	if err := os.MkdirAll(filepath.Join(dir, "config", "prod"), 0o755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
pipeline:
  log_level: debug
providers:
  backend: http
services:
  sentiment:
    url: http://models:9000
analysis:
  topic: school uniforms
  seed: 7
`)
	if err := os.WriteFile(filepath.Join(dir, "config", "prod", "config.yaml"), []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(New(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Pipeline.LogLvl != "debug" || cfg.Providers.Backend != BackendHTTP {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Services.Sentiment.URL != "http://models:9000" {
		t.Fatalf("sentiment url = %q", cfg.Services.Sentiment.URL)
	}
	if cfg.Services.Emotion.URL != "http://localhost:8002" {
		t.Fatalf("emotion url default lost: %q", cfg.Services.Emotion.URL)
	}
	if cfg.Analysis.Topic != "school uniforms" || cfg.Analysis.Seed != 7 {
		t.Fatalf("analysis = %+v", cfg.Analysis)
	}
}

func TestEnvOverridesAndValidation(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DEBATE_SERVER_PORT", "9001")
	cfg, err := Load(New(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 9001 {
		t.Fatalf("expected port 9001, got %d", cfg.Server.Port)
	}

	t.Setenv("DEBATE_PROVIDERS_BACKEND", "carrier-pigeon")
	if _, err := Load(New("")); err == nil {
		t.Fatal("expected validation error for unknown backend")
	}
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	if _, err := Load(New(filepath.Join(t.TempDir(), "missing.yaml"))); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
