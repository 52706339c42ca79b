package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/binge/internal/catalog"
)

var (
	genName     string
	genLanguage string
	genStudio   string
	genInfo     []string
	genValid    bool
	genSort     string
	genReverse  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a watchlist from the catalog",
	Long: `Builds a watchlist from every episode and movie in the catalog that
passes the filters, ordered by the sort key.`,
	Example: `  binge generate --language french --sort title
  binge generate --studio Pixar --info genre=animation --valid`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genName, "name", "generated", "Watchlist name")
	generateCmd.Flags().StringVar(&genLanguage, "language", "", "Only items in this language")
	generateCmd.Flags().StringVar(&genStudio, "studio", "", "Only items from this studio")
	generateCmd.Flags().StringArrayVar(&genInfo, "info", nil, "Only items tagged key=value (repeatable)")
	generateCmd.Flags().BoolVar(&genValid, "valid", false, "Only items whose file is playable")
	generateCmd.Flags().StringVar(&genSort, "sort", "", "Order by title, studio or language")
	generateCmd.Flags().BoolVar(&genReverse, "reverse", false, "Reverse the sort order")
	rootCmd.AddCommand(generateCmd)
}

type watchListEntry struct {
	Kind     catalog.Kind `json:"kind"`
	Title    string       `json:"title"`
	Show     string       `json:"show,omitempty"`
	Language string       `json:"language"`
	Studio   string       `json:"studio,omitempty"`
}

type watchListOutput struct {
	Name  string           `json:"name"`
	Items []watchListEntry `json:"items"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	policy, err := buildPolicy(genLanguage, genStudio, genInfo, genValid, genSort, genReverse)
	if err != nil {
		return err
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	list := s.library.GenerateWatchList(genName, policy)
	result := watchListOutput{Name: list.Name(), Items: []watchListEntry{}}
	for _, item := range list.Items() {
		e := watchListEntry{
			Kind:     catalog.KindOf(item),
			Title:    item.Title(),
			Language: item.Language().String(),
			Studio:   item.Studio(),
		}
		if ep, ok := item.(*catalog.Episode); ok {
			e.Show = ep.Show().Title()
		}
		result.Items = append(result.Items, e)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, result)
	}
	printWatchList(out, result)
	return nil
}

// buildPolicy turns command-line filters and a sort key into a Policy.
func buildPolicy(lang, studio string, info []string, valid bool, sortKey string, reverse bool) (catalog.Policy, error) {
	var filters []catalog.FilterFunc
	if lang != "" {
		l, err := catalog.ParseLanguage(lang)
		if err != nil {
			return nil, fmt.Errorf("--language: %w", err)
		}
		filters = append(filters, catalog.MatchLanguage(l))
	}
	if studio != "" {
		filters = append(filters, catalog.MatchStudio(studio))
	}
	for _, kv := range info {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("--info %q: want key=value", kv)
		}
		filters = append(filters, catalog.MatchInfo(k, v))
	}
	if valid {
		filters = append(filters, catalog.MatchValid)
	}

	var compare catalog.CompareFunc
	switch sortKey {
	case "":
	case "title":
		compare = catalog.ByTitle
	case "studio":
		compare = catalog.Then(catalog.ByStudio, catalog.ByTitle)
	case "language":
		compare = catalog.Then(catalog.ByLanguage, catalog.ByTitle)
	default:
		return nil, fmt.Errorf("--sort %q: must be title, studio or language", sortKey)
	}
	if reverse && compare != nil {
		compare = catalog.Reverse(compare)
	}

	return catalog.NewPolicy(catalog.AllOf(filters...), compare), nil
}

func printWatchList(w io.Writer, l watchListOutput) {
	fmt.Fprintf(w, "%s (%d items)\n", l.Name, len(l.Items))
	for i, e := range l.Items {
		label := e.Title
		if e.Show != "" {
			label = e.Show + ": " + e.Title
		}
		fmt.Fprintf(w, "  %3d. %-7s  %-40s  %s\n", i+1, e.Kind, label, e.Language)
	}
}
