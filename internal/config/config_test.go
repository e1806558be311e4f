package config

import (
	"log/slog"
	"strings"
	"testing"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupMap(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want %+v", cfg, Default())
	}
}

func TestFromLookupValues(t *testing.T) {
	cfg, err := FromLookup(lookupMap(map[string]string{
		EnvBackend:  " Raster ",
		EnvLogLevel: "debug",
		EnvSound:    "1",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend != BackendRaster {
		t.Errorf("Backend = %q", cfg.Backend)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if !cfg.Sound {
		t.Error("Sound = false")
	}
}

func TestFromLookupInvalidKeepsDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupMap(map[string]string{
		EnvBackend:  "vulkan",
		EnvLogLevel: "loud",
		EnvSound:    "maybe",
	}))
	if err == nil {
		t.Fatal("expected error")
	}
	for _, name := range []string{EnvBackend, EnvLogLevel, EnvSound} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %s", err, name)
		}
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}
