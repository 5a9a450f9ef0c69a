// Package config reads the shared library's settings from the environment.
package config

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"Blake3Stream/xof"
)

// Environment variable names.
const (
	EnvAlgorithm  = "BLAKE3_XOF"
	EnvLogLevel   = "BLAKE3_LOG_LEVEL"
	EnvMaxHandles = "BLAKE3_MAX_HANDLES"
)

// ErrInvalidConfig wraps every rejected setting.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings of the exported registry.
type Config struct {
	Algorithm  xof.Algorithm
	LogLevel   slog.Level
	MaxHandles int
}

// Default returns the settings used when no variable is set.
func Default() Config {
	return Config{
		Algorithm: xof.BLAKE3,
		LogLevel:  slog.LevelWarn,
	}
}

// FromEnv builds a Config from lookup, typically os.LookupEnv. Unset or
// empty variables keep their defaults.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := nonEmpty(lookup, EnvAlgorithm); ok {
		alg := xof.Algorithm(strings.ToLower(v))
		if !alg.Valid() {
			return cfg, errors.Wrapf(ErrInvalidConfig, "%s=%q: unknown algorithm", EnvAlgorithm, v)
		}
		cfg.Algorithm = alg
	}

	if v, ok := nonEmpty(lookup, EnvLogLevel); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return cfg, errors.Wrapf(ErrInvalidConfig, "%s=%q: %v", EnvLogLevel, v, err)
		}
	}

	if v, ok := nonEmpty(lookup, EnvMaxHandles); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, errors.Wrapf(ErrInvalidConfig, "%s=%q: want a non-negative integer", EnvMaxHandles, v)
		}
		cfg.MaxHandles = n
	}

	return cfg, nil
}

func nonEmpty(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
