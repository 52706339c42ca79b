package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vmunix/binge/internal/catalog"
	"github.com/vmunix/binge/pkg/title"
)

var showCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Show details for a movie or show",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

type movieDetail struct {
	Kind     catalog.Kind      `json:"kind"`
	Title    string            `json:"title"`
	Path     string            `json:"path"`
	Language string            `json:"language"`
	Studio   string            `json:"studio,omitempty"`
	Valid    bool              `json:"valid"`
	Previous string            `json:"previous,omitempty"`
	Next     string            `json:"next,omitempty"`
	Info     map[string]string `json:"info,omitempty"`
}

type episodeDetail struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Path   string `json:"path"`
	Valid  bool   `json:"valid"`
}

type showDetail struct {
	Kind     catalog.Kind      `json:"kind"`
	Title    string            `json:"title"`
	Language string            `json:"language"`
	Studio   string            `json:"studio,omitempty"`
	Valid    bool              `json:"valid"`
	Info     map[string]string `json:"info,omitempty"`
	Episodes []episodeDetail   `json:"episodes"`
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	name := args[0]
	out := cmd.OutOrStdout()

	if m, ok := s.library.LookupMovie(name); ok {
		d := describeMovie(m)
		if jsonOutput {
			return printJSON(out, d)
		}
		printMovie(out, d)
		return nil
	}
	if t, ok := s.library.LookupTVShow(name); ok {
		d := describeShow(t)
		if jsonOutput {
			return printJSON(out, d)
		}
		printShow(out, d)
		return nil
	}

	return notFound("title", name, append(movieTitles(s.library), showTitles(s.library)...))
}

// notFound builds the error for an unknown name, suggesting the closest
// candidate when one is close enough.
func notFound(what, name string, candidates []string) error {
	if match := title.Match(name, candidates); match.Title != "" {
		return fmt.Errorf("no %s %q in catalog (did you mean %q?)", what, name, match.Title)
	}
	return fmt.Errorf("no %s %q in catalog", what, name)
}

func movieTitles(lib *catalog.Library) []string {
	var titles []string
	for _, m := range lib.Movies() {
		titles = append(titles, m.Title())
	}
	return titles
}

func showTitles(lib *catalog.Library) []string {
	var titles []string
	for _, t := range lib.TVShows() {
		titles = append(titles, t.Title())
	}
	return titles
}

func describeMovie(m *catalog.Movie) movieDetail {
	d := movieDetail{
		Kind:     catalog.KindMovie,
		Title:    m.Title(),
		Path:     m.Path(),
		Language: m.Language().String(),
		Studio:   m.Studio(),
		Valid:    m.Valid(),
		Info:     m.InfoMap(),
	}
	if prev := m.Previous(); prev != nil {
		d.Previous = prev.Title()
	}
	if next := m.Next(); next != nil {
		d.Next = next.Title()
	}
	return d
}

func describeShow(t *catalog.TVShow) showDetail {
	d := showDetail{
		Kind:     catalog.KindShow,
		Title:    t.Title(),
		Language: t.Language().String(),
		Studio:   t.Studio(),
		Valid:    t.Valid(),
		Info:     t.InfoMap(),
		Episodes: []episodeDetail{},
	}
	for _, ep := range t.Episodes() {
		d.Episodes = append(d.Episodes, episodeDetail{
			Number: ep.Number(),
			Title:  ep.Title(),
			Path:   ep.Path(),
			Valid:  ep.Valid(),
		})
	}
	return d
}

func printMovie(w io.Writer, d movieDetail) {
	fmt.Fprintf(w, "%s (movie)\n", d.Title)
	fmt.Fprintf(w, "  Path:     %s%s\n", d.Path, validSuffix(d.Valid))
	fmt.Fprintf(w, "  Language: %s\n", d.Language)
	if d.Studio != "" {
		fmt.Fprintf(w, "  Studio:   %s\n", d.Studio)
	}
	if d.Previous != "" {
		fmt.Fprintf(w, "  Previous: %s\n", d.Previous)
	}
	if d.Next != "" {
		fmt.Fprintf(w, "  Next:     %s\n", d.Next)
	}
	printInfo(w, d.Info)
}

func printShow(w io.Writer, d showDetail) {
	fmt.Fprintf(w, "%s (show, %d episodes)\n", d.Title, len(d.Episodes))
	fmt.Fprintf(w, "  Language: %s\n", d.Language)
	if d.Studio != "" {
		fmt.Fprintf(w, "  Studio:   %s\n", d.Studio)
	}
	printInfo(w, d.Info)
	for _, ep := range d.Episodes {
		fmt.Fprintf(w, "  %3d. %s  %s%s\n", ep.Number, ep.Title, ep.Path, validSuffix(ep.Valid))
	}
}

func printInfo(w io.Writer, info map[string]string) {
	for _, k := range slices.Sorted(maps.Keys(info)) {
		fmt.Fprintf(w, "  %s: %s\n", k, info[k])
	}
}

func validSuffix(valid bool) string {
	if valid {
		return ""
	}
	return " [missing]"
}
