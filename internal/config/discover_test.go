package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	assert.Contains(t, DefaultPath(), filepath.Join(".config", "binge", "config.toml"))
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	assert.Equal(t, "/custom/config/binge/config.toml", DefaultPath())
}

func TestDiscover_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[library]"), 0644))
	t.Setenv("BINGE_CONFIG", path)

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDiscover_EnvOverrideNotFound(t *testing.T) {
	t.Setenv("BINGE_CONFIG", "/nonexistent/binge.toml")

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BINGE_CONFIG")
}

func TestDiscover_XDG(t *testing.T) {
	t.Setenv("BINGE_CONFIG", "")
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Chdir(t.TempDir())

	path := filepath.Join(xdg, "binge", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("[library]"), 0644))

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDiscover_CurrentDirFirst(t *testing.T) {
	t.Setenv("BINGE_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("config.toml", []byte("[library]"), 0644))

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, "./config.toml", got)
}

func TestDiscover_NotFound(t *testing.T) {
	t.Setenv("BINGE_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	if _, err := os.Stat("/etc/binge/config.toml"); err == nil {
		t.Skip("system config present")
	}

	_, err := Discover()
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "checked: ./config.toml")
}

func TestDiscover_EnvOverrideIsNotNotFound(t *testing.T) {
	t.Setenv("BINGE_CONFIG", filepath.Join(t.TempDir(), "typo.toml"))

	_, err := Discover()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
