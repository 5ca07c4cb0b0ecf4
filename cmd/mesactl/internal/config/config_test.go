package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Empty(t, e.APIURL)
	assert.False(t, e.NonInteractive)
}

func TestLoadEnvReadsVariables(t *testing.T) {
	t.Setenv("MESA_API_URL", "http://mesa.internal:5001")
	t.Setenv("MESA_NON_INTERACTIVE", "true")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://mesa.internal:5001", e.APIURL)
	assert.True(t, e.NonInteractive)
}

func TestConfigContextRoundtrip(t *testing.T) {
	cfg := &GlobalConfig{ServerURL: "http://localhost:5001"}
	ctx := InjectConfig(context.Background(), cfg)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, cfg, got)
	assert.Same(t, cfg, MustFromContext(ctx))
}

func TestFromContextMissing(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	assert.Panics(t, func() { MustFromContext(context.Background()) })
}
