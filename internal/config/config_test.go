package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(manifest, nil, 0644))

	path := writeConfig(t, `
[library]
name = "Den"
owner = "sam"
manifest = "`+manifest+`"

[log]
level = "debug"
format = "json"

[search]
min_confidence = "high"

[verify]
concurrency = 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Den", cfg.Library.Name)
	assert.Equal(t, "sam", cfg.Library.Owner)
	assert.Equal(t, manifest, cfg.Library.Manifest)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "high", cfg.Search.MinConfidence)
	assert.Equal(t, 2, cfg.Verify.Concurrency)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "[library]\nname = \"Den\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "medium", cfg.Search.MinConfidence)
	assert.Equal(t, 8, cfg.Verify.Concurrency)
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Empty(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 8, cfg.Verify.Concurrency)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("BINGE_TEST_OWNER", "alex")
	path := writeConfig(t, "[library]\nowner = \"${BINGE_TEST_OWNER}\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "alex", cfg.Library.Owner)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	path := writeConfig(t, "[library]\nowner = \"${BINGE_TEST_MISSING_OWNER_999}\"\n")

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, path, cfgErr.Path)
	assert.Equal(t, []string{"BINGE_TEST_MISSING_OWNER_999"}, cfgErr.Missing)
	assert.Contains(t, err.Error(), "BINGE_TEST_MISSING_OWNER_999")
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "verbose"

[search]
min_confidence = "certain"
`)

	_, err := Load(path)
	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Len(t, cfgErr.Errors, 2)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "search.min_confidence")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "[library\nname = ")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadWithoutValidation(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"verbose\"\n[library]\nowner = \"${BINGE_TEST_MISSING_OWNER_999}\"\n")

	cfg, err := LoadWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, "verbose", cfg.Log.Level)
	assert.Equal(t, "${BINGE_TEST_MISSING_OWNER_999}", cfg.Library.Owner)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "zero value",
			cfg:  Config{},
		},
		{
			name: "manifest missing",
			cfg:  Config{Library: LibraryConfig{Manifest: filepath.Join(dir, "gone.toml")}},
			want: []string{"library.manifest"},
		},
		{
			name: "manifest is a directory",
			cfg:  Config{Library: LibraryConfig{Manifest: dir}},
			want: []string{"library.manifest"},
		},
		{
			name: "bad format",
			cfg:  Config{Log: LogConfig{Format: "xml"}},
			want: []string{"log.format"},
		},
		{
			name: "negative concurrency",
			cfg:  Config{Verify: VerifyConfig{Concurrency: -1}},
			want: []string{"verify.concurrency"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.cfg.Validate()
			require.Len(t, errs, len(tt.want))
			for i, prefix := range tt.want {
				assert.Contains(t, errs[i], prefix)
			}
		})
	}
}

func TestError(t *testing.T) {
	assert.Empty(t, (&Error{Path: "/etc/binge/config.toml"}).Error())

	e := &Error{
		Path:    "/etc/binge/config.toml",
		Missing: []string{"OWNER", "SECRET"},
		Errors:  []string{"log.level: bad"},
	}
	assert.True(t, e.HasErrors())
	got := e.Error()
	assert.Contains(t, got, "missing environment variables: OWNER, SECRET")
	assert.Contains(t, got, "validation failed:")
	assert.Contains(t, got, "  - log.level: bad")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "", want: slog.LevelInfo},
		{in: "info", want: slog.LevelInfo},
		{in: "WARN", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unknown log level")
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
