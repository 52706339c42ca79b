package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/binge/internal/catalog"
	"github.com/vmunix/binge/internal/config"
	"github.com/vmunix/binge/internal/manifest"
)

var version = "dev"

var (
	configPath   string
	manifestPath string
	jsonOutput   bool
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "binge",
	Short: "Personal movie and TV show catalog",
	Long: `binge - personal movie and TV show catalog

Loads a TOML manifest of movies, shows and watchlists into an
in-memory catalog, then lists, searches, verifies and builds
watchlists from it.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest", "", "Catalog manifest (overrides library.manifest)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides log.level)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("binge {{.Version}}\n")
}

// loadConfig returns the config named by --config, the discovered one, or
// defaults when discovery finds no file. A --log-level override is checked
// like the file's own log.level.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	path := configPath
	if path == "" {
		found, err := config.Discover()
		switch {
		case errors.Is(err, config.ErrNotFound):
			cfg = config.Defaults()
		case err != nil:
			return nil, err
		default:
			path = found
		}
	}
	if cfg == nil {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = loaded
	}

	if logLevel != "" {
		if _, err := config.ParseLogLevel(logLevel); err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

// session is the state every catalog command starts from.
type session struct {
	cfg     *config.Config
	logger  *slog.Logger
	library *catalog.Library
}

// openSession loads config, builds the logger and applies the manifest to a
// fresh library.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Log)

	lib := catalog.New(nil, logger)
	if cfg.Library.Name != "" {
		lib.SetName(cfg.Library.Name)
	}
	if cfg.Library.Owner != "" {
		lib.SetOwner(cfg.Library.Owner)
	}

	path := manifestPath
	if path == "" {
		path = cfg.Library.Manifest
	}
	if path == "" {
		return nil, errors.New("no manifest: set library.manifest or pass --manifest")
	}
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	res, err := m.Apply(lib)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("catalog loaded", "manifest", path,
		"movies", res.Movies, "shows", res.Shows, "episodes", res.Episodes, "watchlists", res.WatchLists)

	return &session{cfg: cfg, logger: logger, library: lib}, nil
}

// newLogger builds the handler named by log.format. The level has already
// been validated, so an unknown one cannot reach here.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	level, _ := config.ParseLogLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
