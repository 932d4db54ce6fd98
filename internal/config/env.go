package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvConfigPath = "BACKDROP_CONFIG"
	EnvSeed       = "BACKDROP_SEED"
	EnvVariant    = "BACKDROP_VARIANT"
	EnvFullscreen = "BACKDROP_FULLSCREEN"
)

// LoadEnv reads KEY=VALUE pairs from path (e.g. ".env") into the process environment.
// Variables already set are left alone. The file may be missing; that is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields of c from BACKDROP_* variables. lookup is os.LookupEnv in production.
// Unparseable values are skipped and reported in the returned error; the remaining overrides still apply.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	var errs []error
	if v, ok := lookup(EnvSeed); ok && strings.TrimSpace(v) != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			c.Seed = seed
		}
	}
	if v, ok := lookup(EnvVariant); ok && strings.TrimSpace(v) != "" {
		switch v = strings.ToLower(strings.TrimSpace(v)); v {
		case VariantInteractive, VariantClassic:
			c.Variant = v
		default:
			errs = append(errs, fmt.Errorf("%s: unknown variant %q", EnvVariant, v))
		}
	}
	if v, ok := lookup(EnvFullscreen); ok && strings.TrimSpace(v) != "" {
		full, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvFullscreen, err))
		} else {
			c.Window.Fullscreen = full
		}
	}
	return errors.Join(errs...)
}

// PathFromEnv returns BACKDROP_CONFIG when set, otherwise fallback.
func PathFromEnv(fallback string) string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	return fallback
}
