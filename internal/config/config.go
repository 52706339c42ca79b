// Package config loads binge settings from a TOML file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvPath names the environment variable that overrides config discovery.
const EnvPath = "BINGE_CONFIG"

// ErrNotFound is returned by Discover when no candidate path exists.
var ErrNotFound = errors.New("config not found")

//go:embed default_config.toml
var defaultConfig string

// Config is the top-level settings document.
type Config struct {
	Library LibraryConfig `toml:"library"`
	Log     LogConfig     `toml:"log"`
	Search  SearchConfig  `toml:"search"`
	Verify  VerifyConfig  `toml:"verify"`
}

// LibraryConfig names the catalog and the manifest that populates it.
type LibraryConfig struct {
	Name     string `toml:"name"`
	Owner    string `toml:"owner"`
	Manifest string `toml:"manifest"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type SearchConfig struct {
	MinConfidence string `toml:"min_confidence"`
}

type VerifyConfig struct {
	Concurrency int `toml:"concurrency"`
}

// Error collects everything wrong with one config file: variables that could
// not be substituted and fields that failed validation.
type Error struct {
	Path    string
	Missing []string
	Errors  []string
}

func (e *Error) Error() string {
	if !e.HasErrors() {
		return ""
	}
	var b strings.Builder
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "missing environment variables: %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Errors) > 0 {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("validation failed:")
		for _, msg := range e.Errors {
			fmt.Fprintf(&b, "\n  - %s", msg)
		}
	}
	return b.String()
}

// HasErrors reports whether any variable or field problem was recorded.
func (e *Error) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}

// Load reads, substitutes, parses and validates the configuration file.
// Unresolved variables and validation failures come back as *Error.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &Error{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation parses the file and applies defaults but skips
// validation. Unresolved variables are left in place.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

// Defaults returns a Config with every default applied, for running without
// a config file.
func Defaults() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Search.MinConfidence == "" {
		c.Search.MinConfidence = "medium"
	}
	if c.Verify.Concurrency == 0 {
		c.Verify.Concurrency = 8
	}
}

// ParseLogLevel maps a log.level value to a slog level. The empty string is
// info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q: must be one of debug, info, warn, error", s)
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([-?])([^}]*))?\}`)

// substituteEnvVars replaces variable references with their values and
// reports the ones that could not be resolved. Empty values count as unset
// for the :- and :? forms.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]

		value, ok := os.LookupEnv(name)
		switch op {
		case "-":
			if value == "" {
				return arg
			}
			return value
		case "?":
			if value == "" {
				missing = append(missing, name+": "+strings.TrimSpace(arg))
				return match
			}
			return value
		}
		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	})
	return out, missing
}

// DefaultPath is $XDG_CONFIG_HOME/binge/config.toml, falling back to
// ~/.config and then the working directory.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "binge", "config.toml")
}

// Discover returns the config file to use. A set BINGE_CONFIG wins and must
// exist; otherwise the first existing file among ./config.toml, DefaultPath()
// and /etc/binge/config.toml is used. When none exists the error wraps
// ErrNotFound.
func Discover() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvPath, p, err)
		}
		return p, nil
	}

	candidates := []string{"./config.toml", DefaultPath(), "/etc/binge/config.toml"}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(candidates, ", "))
}

// WriteDefault writes the commented example config to path, creating parent
// directories.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfig), 0644)
}

// Write encodes c as TOML to path, creating parent directories.
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encoding config: %w", err)
	}
	return f.Close()
}
