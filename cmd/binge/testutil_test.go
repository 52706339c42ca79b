package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetFlags restores every command flag variable, since cobra commands are
// package globals shared between tests.
func resetFlags() {
	configPath, manifestPath, jsonOutput, logLevel = "", "", false, ""
	listType = ""
	nextCount = 1
	genName, genLanguage, genStudio, genInfo = "generated", "", "", nil
	genValid, genSort, genReverse = false, "", false
	searchMinConfidence = ""
	configInitForce, configInitName, configInitOwner = false, "", ""
}

// runCLI executes the root command with args and returns what it wrote to
// stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// fixture writes a config and a manifest describing two linked movies and a
// three-episode show. Aliens and the last episode have no file on disk.
type fixture struct {
	config   string
	manifest string
	media    string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	media := filepath.Join(dir, "media")
	require.NoError(t, os.MkdirAll(filepath.Join(media, "dark"), 0755))
	for _, name := range []string{"alien.mkv", "dark/01.mkv", "dark/02.mkv"} {
		require.NoError(t, os.WriteFile(filepath.Join(media, name), []byte("media"), 0644))
	}

	manifest := filepath.Join(dir, "catalog.toml")
	require.NoError(t, os.WriteFile(manifest, []byte(`
[[movies]]
title = "Alien"
path = "`+filepath.Join(media, "alien.mkv")+`"
language = "English"
studio = "Fox"

[movies.info]
genre = "horror"

[[movies]]
title = "Aliens"
path = "`+filepath.Join(media, "aliens.mkv")+`"
language = "English"
studio = "Fox"
previous = "Alien"

[[shows]]
title = "Dark"
language = "German"
studio = "Netflix"

[[shows.episodes]]
title = "Secrets"
path = "`+filepath.Join(media, "dark/01.mkv")+`"

[[shows.episodes]]
title = "Lies"
path = "`+filepath.Join(media, "dark/02.mkv")+`"

[[shows.episodes]]
title = "Past and Present"
path = "`+filepath.Join(media, "dark/03.mkv")+`"
`), 0644))

	cfg := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
[library]
name = "Den"
owner = "sam"
manifest = "`+manifest+`"

[log]
level = "error"

[search]
min_confidence = "high"
`), 0644))

	return fixture{config: cfg, manifest: manifest, media: media}
}
