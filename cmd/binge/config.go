package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/binge/internal/config"
)

var (
	configInitForce bool
	configInitName  string
	configInitOwner string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, field values and environment variable substitution.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a configuration file",
	Long: `Writes the commented example configuration. When --name, --owner,
--manifest or --log-level is given, writes a complete configuration with
those values instead.`,
	Example: `  binge config init
  binge config init --manifest ~/media/catalog.toml --owner sam ./config.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing file")
	configInitCmd.Flags().StringVar(&configInitName, "name", "", "Library name")
	configInitCmd.Flags().StringVar(&configInitOwner, "owner", "", "Library owner")
	configCmd.AddCommand(configTestCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := "config.toml"
	if len(args) > 0 {
		path = args[0]
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return errors.New("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	cfg, err := initialConfig()
	if err != nil {
		return err
	}
	if cfg == nil {
		err = config.WriteDefault(path)
	} else {
		err = cfg.Write(path)
	}
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// initialConfig returns the defaults with the init flags applied, or nil
// when no flag was given and the example file should be written.
func initialConfig() (*config.Config, error) {
	if configInitName == "" && configInitOwner == "" && manifestPath == "" && logLevel == "" {
		return nil, nil
	}
	cfg := config.Defaults()
	cfg.Library.Name = configInitName
	cfg.Library.Owner = configInitOwner
	cfg.Library.Manifest = manifestPath
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.Error{Errors: errs}
	}
	return cfg, nil
}

func printConfigErrors(w io.Writer, e *config.Error) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Library:   %s (owner: %s)\n", orNone(cfg.Library.Name), orNone(cfg.Library.Owner))
	fmt.Fprintf(w, "  Manifest:  %s\n", orNone(cfg.Library.Manifest))
	fmt.Fprintf(w, "  Logging:   %s (%s)\n", cfg.Log.Level, cfg.Log.Format)
	fmt.Fprintf(w, "  Search:    min confidence %s\n", cfg.Search.MinConfidence)
	fmt.Fprintf(w, "  Verify:    %d workers\n", cfg.Verify.Concurrency)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
