package catalog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestLibrary(t *testing.T, player Player) *Library {
	t.Helper()
	return New(player, testLogger())
}

// mediaFile creates an empty readable file and returns its path.
func mediaFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("media"), 0644))
	return path
}

// missingFile returns a path that does not exist.
func missingFile(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing", name)
}

func mustMovie(t *testing.T, lib *Library, path, title string, lang Language, studio string) *Movie {
	t.Helper()
	m, err := lib.GenerateMovie(path, title, lang, studio)
	require.NoError(t, err)
	return m
}

func titles(items []Watchable) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title()
	}
	return out
}
