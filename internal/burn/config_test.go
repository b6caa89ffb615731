package burn

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if !cfg.Params.FullyConsumes() {
		t.Fatalf("default ceiling leaves paper intact: max front %v", cfg.Params.MaxFront())
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":              "120",
		"h":              "160",
		"seed":           "7",
		"stains":         "0",
		"burn_rate":      "0.5",
		"noise_strength": "bogus",
		"unknown":        "1",
	})
	if cfg.Width != 120 || cfg.Height != 160 || cfg.Seed != 7 {
		t.Fatalf("unexpected sheet %+v", cfg)
	}
	if cfg.Texture.StainCount != 0 {
		t.Fatalf("stains %d", cfg.Texture.StainCount)
	}
	if cfg.Params.BurnRate != 0.5 {
		t.Fatalf("burn rate %v", cfg.Params.BurnRate)
	}
	if cfg.Params.NoiseStrength != 0.4 {
		t.Fatalf("unparseable value overwrote noise strength: %v", cfg.Params.NoiseStrength)
	}
}

func TestValidateRejects(t *testing.T) {
	mutate := []func(*Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Segments = 300 },
		func(c *Config) { c.Workers = 0 },
		func(c *Config) { c.Params.BurnRate = 0 },
		func(c *Config) { c.Params.CharBand = c.Params.EmberBand },
		func(c *Config) { c.Params.NoiseScale = -1 },
	}
	for i, m := range mutate {
		cfg := DefaultConfig()
		m(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("case %d: expected ErrInvalidConfig, got %v", i, err)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "burn.yaml")
	data := []byte("width: 200\nseed: 99\nparams:\n  burnRate: 0.45\ntexture:\n  stainCount: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 420 || cfg.Seed != 99 {
		t.Fatalf("unexpected sheet %+v", cfg)
	}
	if cfg.Params.BurnRate != 0.45 || cfg.Params.MaxProgress != 2.5 {
		t.Fatalf("unexpected params %+v", cfg.Params)
	}
	if cfg.Texture.StainCount != 10 || cfg.Texture.Width != 1024 {
		t.Fatalf("unexpected texture %+v", cfg.Texture)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("params:\n  burnRate: -1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
