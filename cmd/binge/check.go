package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/binge/internal/catalog"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every catalog file is playable",
	Long:  "Stats the file behind every movie and episode and reports the ones that are missing or unreadable.",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	report, err := s.library.Verify(cmd.Context(), s.cfg.Verify.Concurrency)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, report)
	}
	printReport(out, report)
	return nil
}

func printReport(w io.Writer, r *catalog.Report) {
	fmt.Fprintf(w, "Checking %d files...\n\n", r.Checked)
	fmt.Fprintf(w, "  Passed:  %d/%d\n\n", r.Passed, r.Checked)

	if len(r.Problems) == 0 {
		fmt.Fprintln(w, "No problems detected.")
		return
	}

	fmt.Fprintf(w, "Problems (%d):\n\n", len(r.Problems))
	for _, p := range r.Problems {
		label := p.Title
		if p.Show != "" {
			label = p.Show + ": " + p.Title
		}
		fmt.Fprintf(w, "  %s | %s\n", p.Kind, label)
		fmt.Fprintf(w, "    Path:  %s\n", p.Path)
		fmt.Fprintf(w, "    Issue: %s\n\n", p.Issue)
	}
}
