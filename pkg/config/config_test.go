package config_test

import (
	"path/filepath"
	"testing"

	"github.com/masmeert/wisho/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	values, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.BaseDefaults, values)
}

func TestLoad_SaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wisho.toml")
	want := config.BaseDefaults
	want.HTTP.Port = 9090
	want.Postgres.DSN = "postgres://test/db"

	require.NoError(t, config.Save(path, want))
	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
