package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultVerifyConcurrency bounds concurrent file checks when the caller
// passes zero.
const DefaultVerifyConcurrency = 8

// Problem describes a registered item whose file can't be played.
type Problem struct {
	Kind  Kind   `json:"kind"`
	Title string `json:"title"`
	Show  string `json:"show,omitempty"`
	Path  string `json:"path"`
	Issue string `json:"issue"`
}

// Report summarizes a Verify run.
type Report struct {
	Checked  int       `json:"checked"`
	Passed   int       `json:"passed"`
	Problems []Problem `json:"problems"`
}

// Verify checks the file behind every registered movie and every episode of
// every registered show. Problems are reported in catalog order.
func (l *Library) Verify(ctx context.Context, concurrency int) (*Report, error) {
	if concurrency <= 0 {
		concurrency = DefaultVerifyConcurrency
	}

	var targets []Problem
	for _, m := range l.Movies() {
		targets = append(targets, Problem{Kind: KindMovie, Title: m.title, Path: m.path})
	}
	for _, t := range l.TVShows() {
		for _, ep := range t.Episodes() {
			targets = append(targets, Problem{Kind: KindEpisode, Title: ep.title, Show: t.title, Path: ep.path})
		}
	}

	issues := make([]string, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, target := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			issues[i] = checkFile(target.Path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("verify catalog: %w", err)
	}

	report := &Report{Checked: len(targets)}
	for i, issue := range issues {
		if issue == "" {
			report.Passed++
			continue
		}
		p := targets[i]
		p.Issue = issue
		report.Problems = append(report.Problems, p)
	}
	l.logger.Debug("catalog verified", "checked", report.Checked, "passed", report.Passed)
	return report, nil
}
