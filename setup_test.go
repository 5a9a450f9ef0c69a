package main

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Blake3Stream/boundary"
	"Blake3Stream/config"
	"Blake3Stream/xof"
)

func TestConfigure(t *testing.T) {
	prev := boundary.Default
	defer func() { boundary.Default = prev }()

	vars := map[string]string{config.EnvAlgorithm: "blake2xb", config.EnvMaxHandles: "1"}
	require.NoError(t, configure(func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}))
	assert.Equal(t, xof.BLAKE2Xb, boundary.Default.Algorithm())

	h := boundary.Create()
	defer boundary.Free(h)
	assert.Panics(t, func() { boundary.Create() })
}

func TestConfigureInvalid(t *testing.T) {
	prev := boundary.Default
	defer func() { boundary.Default = prev }()

	err := configure(func(k string) (string, bool) {
		if k == config.EnvAlgorithm {
			return "crc64", true
		}
		return "", false
	})
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
	assert.Equal(t, prev, boundary.Default)
}
