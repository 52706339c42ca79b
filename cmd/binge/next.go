package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nextCount int

var nextCmd = &cobra.Command{
	Use:   "next <show>",
	Short: "Print the next episodes of a show",
	Long:  "Steps through a show's episodes from the start, wrapping to the first episode after the last.",
	Args:  cobra.ExactArgs(1),
	RunE:  runNext,
}

func init() {
	nextCmd.Flags().IntVarP(&nextCount, "count", "n", 1, "Number of episodes")
	rootCmd.AddCommand(nextCmd)
}

type nextEntry struct {
	Number    int    `json:"number"`
	Title     string `json:"title"`
	Path      string `json:"path"`
	Remaining int    `json:"remaining"`
}

func runNext(cmd *cobra.Command, args []string) error {
	if nextCount < 1 {
		return fmt.Errorf("invalid --count %d: must be at least 1", nextCount)
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	show, ok := s.library.LookupTVShow(args[0])
	if !ok {
		return notFound("show", args[0], showTitles(s.library))
	}
	if show.TotalCount() == 0 {
		return fmt.Errorf("show %q has no episodes", show.Title())
	}

	entries := make([]nextEntry, 0, nextCount)
	for range nextCount {
		ep := show.Next()
		entries = append(entries, nextEntry{
			Number:    ep.Number(),
			Title:     ep.Title(),
			Path:      ep.Path(),
			Remaining: show.RemainingCount(),
		})
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, entries)
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%3d. %s  %s  (%d remaining)\n", e.Number, e.Title, e.Path, e.Remaining)
	}
	return nil
}
