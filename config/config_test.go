package config

import (
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Blake3Stream/xof"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, xof.BLAKE3, cfg.Algorithm)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Zero(t, cfg.MaxHandles)
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		EnvAlgorithm:  "SHAKE256",
		EnvLogLevel:   "debug",
		EnvMaxHandles: " 16 ",
	}))
	require.NoError(t, err)
	assert.Equal(t, xof.SHAKE256, cfg.Algorithm)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 16, cfg.MaxHandles)
}

func TestFromEnvEmptyKeepsDefault(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{EnvAlgorithm: "", EnvLogLevel: "  "}))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromEnvInvalid(t *testing.T) {
	tests := map[string]map[string]string{
		"algorithm":      {EnvAlgorithm: "md5"},
		"log level":      {EnvLogLevel: "loud"},
		"max handles":    {EnvMaxHandles: "many"},
		"negative limit": {EnvMaxHandles: "-1"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(env(vars))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}
