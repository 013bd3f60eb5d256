package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("MDCOPMINER_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load() = %+v, want Default() = %+v", cfg, Default())
	}
}

func TestLoadOverridesDefaultsFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MDCOPMINER_HOME", dir)

	const contents = `
spatial_prevalence = 0.7
distance = "haversine"
distance_threshold = 2.5
progress = false
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := Default()
	want.SpatialPrevalence = 0.7
	want.Distance = "haversine"
	want.DistanceThreshold = 2.5
	want.Progress = false

	if cfg != want {
		t.Fatalf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MDCOPMINER_HOME", dir)

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid toml"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Load()
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("err = %v, want *ParseError", err)
	}
}
