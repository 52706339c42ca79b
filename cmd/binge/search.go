package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/binge/internal/catalog"
	"github.com/vmunix/binge/pkg/title"
)

var searchMinConfidence string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search movie and show titles",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchMinConfidence, "min-confidence", "", "Lowest match confidence: none, low, medium, high (overrides search.min_confidence)")
	rootCmd.AddCommand(searchCmd)
}

type searchEntry struct {
	Kind       catalog.Kind `json:"kind"`
	Title      string       `json:"title"`
	Score      float64      `json:"score"`
	Confidence string       `json:"confidence"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	level := s.cfg.Search.MinConfidence
	if searchMinConfidence != "" {
		level = searchMinConfidence
	}
	threshold, err := title.ParseConfidence(level)
	if err != nil {
		return fmt.Errorf("--min-confidence: %w", err)
	}

	query := strings.Join(args, " ")
	results := s.library.Search(query, threshold)
	s.logger.Debug("search", "query", query, "threshold", threshold.String(), "results", len(results))

	entries := make([]searchEntry, len(results))
	for i, r := range results {
		entries[i] = searchEntry{
			Kind:       r.Kind,
			Title:      r.Item.Title(),
			Score:      r.Score,
			Confidence: r.Confidence.String(),
		}
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintf(out, "No matches for %q.\n", query)
		return nil
	}
	fmt.Fprintf(out, "Found %d matches for %q:\n\n", len(entries), query)
	for _, e := range entries {
		fmt.Fprintf(out, "  %.2f  %-6s  %-5s  %s\n", e.Score, e.Confidence, e.Kind, e.Title)
	}
	return nil
}
