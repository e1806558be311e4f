// Package config holds the demo's fixed layout constants and the small set of
// runtime knobs read from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Application Main Window"
)

// Triangle size (in framebuffer pixels). The apex sits on the press point
// and the base is TriangleHeight below it.
const (
	TriangleWidth  = 100
	TriangleHeight = 100
	OutlineWidth   = 1.0
)

// Colours as 0xRRGGBB.
const (
	BackgroundColor = 0x25854b
	TriangleColor   = 0x00ffff // aqua
)

// Backend selects the render backend.
type Backend string

const (
	BackendGL     Backend = "gl"
	BackendRaster Backend = "raster"
)

// Environment variable names.
const (
	EnvBackend  = "TRIDEMO_BACKEND"
	EnvLogLevel = "TRIDEMO_LOG_LEVEL"
	EnvSound    = "TRIDEMO_SOUND"
)

// Config is the runtime configuration.
type Config struct {
	Backend  Backend
	LogLevel slog.Level
	Sound    bool
}

func Default() Config {
	return Config{
		Backend:  BackendGL,
		LogLevel: slog.LevelWarn,
	}
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup. Invalid values keep their default;
// the returned error lists every value that was rejected.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var errs []error

	if s, ok := lookup(EnvBackend); ok && s != "" {
		switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
		case BackendGL, BackendRaster:
			cfg.Backend = b
		default:
			errs = append(errs, fmt.Errorf("%s: unknown backend %q", EnvBackend, s))
		}
	}

	if s, ok := lookup(EnvLogLevel); ok && s != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvLogLevel, err))
		} else {
			cfg.LogLevel = lvl
		}
	}

	if s, ok := lookup(EnvSound); ok && s != "" {
		v, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSound, err))
		} else {
			cfg.Sound = v
		}
	}

	return cfg, errors.Join(errs...)
}
