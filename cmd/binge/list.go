package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/binge/internal/catalog"
)

var listType string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List movies and shows in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listType, "type", "", "Only list movie or show")
	rootCmd.AddCommand(listCmd)
}

// listEntry is the JSON and table form of one catalog item.
type listEntry struct {
	Kind     catalog.Kind `json:"kind"`
	Title    string       `json:"title"`
	Language string       `json:"language"`
	Studio   string       `json:"studio,omitempty"`
	Path     string       `json:"path,omitempty"`
	Episodes int          `json:"episodes,omitempty"`
	Valid    bool         `json:"valid"`
}

func runList(cmd *cobra.Command, args []string) error {
	var wantMovies, wantShows bool
	switch listType {
	case "":
		wantMovies, wantShows = true, true
	case string(catalog.KindMovie):
		wantMovies = true
	case string(catalog.KindShow):
		wantShows = true
	default:
		return fmt.Errorf("invalid --type %q: must be movie or show", listType)
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	var entries []listEntry
	if wantMovies {
		for _, m := range s.library.Movies() {
			entries = append(entries, listEntry{
				Kind:     catalog.KindMovie,
				Title:    m.Title(),
				Language: m.Language().String(),
				Studio:   m.Studio(),
				Path:     m.Path(),
				Valid:    m.Valid(),
			})
		}
	}
	if wantShows {
		for _, t := range s.library.TVShows() {
			entries = append(entries, listEntry{
				Kind:     catalog.KindShow,
				Title:    t.Title(),
				Language: t.Language().String(),
				Studio:   t.Studio(),
				Episodes: t.TotalCount(),
				Valid:    t.Valid(),
			})
		}
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, entries)
	}
	printList(out, s.library.String(), entries)
	return nil
}

func printList(w io.Writer, header string, entries []listEntry) {
	fmt.Fprintln(w, header)
	if len(entries) == 0 {
		fmt.Fprintln(w, "  (empty)")
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-6s  %-32s  %-14s  %-16s  %s\n", "KIND", "TITLE", "LANGUAGE", "STUDIO", "STATUS")
	for _, e := range entries {
		status := "ok"
		if !e.Valid {
			status = "missing"
		}
		if e.Kind == catalog.KindShow {
			status = fmt.Sprintf("%s, %d episodes", status, e.Episodes)
		}
		fmt.Fprintf(w, "  %-6s  %-32s  %-14s  %-16s  %s\n",
			e.Kind, truncate(e.Title, 32), e.Language, truncate(e.Studio, 16), status)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
