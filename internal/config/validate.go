package config

import (
	"fmt"
	"os"

	"github.com/vmunix/binge/pkg/title"
)

var validLogFormats = map[string]bool{
	"text": true, "json": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Library.Manifest != "" {
		info, err := os.Stat(c.Library.Manifest)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("library.manifest: %v", err))
		case info.IsDir():
			errs = append(errs, fmt.Sprintf("library.manifest: %s is a directory", c.Library.Manifest))
		}
	}

	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: %v", err))
	}
	if !validLogFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format: must be text or json; got %q", c.Log.Format))
	}

	if _, err := title.ParseConfidence(c.Search.MinConfidence); err != nil {
		errs = append(errs, fmt.Sprintf("search.min_confidence: %v", err))
	}

	if c.Verify.Concurrency < 0 {
		errs = append(errs, fmt.Sprintf("verify.concurrency: must be positive, got %d", c.Verify.Concurrency))
	}

	return errs
}
