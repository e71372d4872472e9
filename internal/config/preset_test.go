package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loadbin/rectpack"
	"github.com/loadbin/rectpack/internal/config"
)

func writeTempPreset(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeTempPreset(t, `name = "cheap-first"`)

	p, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cheap-first", p.Name)
	assert.Equal(t, "MAXRECTS", p.PackAlgo)
	assert.Equal(t, "BAF", p.Policy)
	assert.Equal(t, "SORT_AREA", p.SortAlgo)
	assert.True(t, p.Rotation)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeTempPreset(t, `
name = "guillotine-bssf"
pack_algo = "GUILLOTINE"
policy = "BSSF"
rotation = false
`)

	p, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "GUILLOTINE", p.PackAlgo)
	assert.Equal(t, "BSSF", p.Policy)
	assert.False(t, p.Rotation)
}

func TestLoadMissingName(t *testing.T) {
	path := writeTempPreset(t, `pack_algo = "MAXRECTS"`)
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	path := writeTempPreset(t, `name = "default"`)
	p, err := config.Load(path)
	require.NoError(t, err)

	cfg, err := p.Resolve()
	require.NoError(t, err)
	assert.Equal(t, rectpack.AlgoMaxRects, cfg.PackAlgo)
	assert.Equal(t, rectpack.BAF, cfg.Policy)
	assert.Equal(t, rectpack.SortArea, cfg.SortAlgo)
	assert.True(t, cfg.Rotation)
}
