// Package persist lays out and writes the run artifact tree and the
// cross-run crawl-state document. Every write targets a fresh file per run
// except the crawl-state document, which is read-modify-written across
// runs. Write failures here are fatal to the run.
package persist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Layout resolves every path in the run artifact tree.
type Layout struct {
	DayDir      string
	ResearchDir string
	Date        string
}

// Abs resolves a run-relative artifact path against the day directory.
func (l Layout) Abs(rel string) string {
	return filepath.Join(l.DayDir, rel)
}

// ArtistDir returns the per-artist directory under the day directory.
func (l Layout) ArtistDir(slug string) string {
	return filepath.Join(l.DayDir, "artists", slug)
}

// InputsDir returns the per-artist structured record directory.
func (l Layout) InputsDir(slug string) string { return filepath.Join(l.ArtistDir(slug), "inputs") }

// OutputsDir returns the per-artist artifact output directory.
func (l Layout) OutputsDir(slug string) string { return filepath.Join(l.ArtistDir(slug), "outputs") }

// NotesDir returns the per-artist human-readable notes directory.
func (l Layout) NotesDir(slug string) string { return filepath.Join(l.ArtistDir(slug), "notes") }

// Curator and system directories.
func (l Layout) CuratorScoresDir() string     { return filepath.Join(l.DayDir, "curator", "scores") }
func (l Layout) CuratorSummariesDir() string  { return filepath.Join(l.DayDir, "curator", "summaries") }
func (l Layout) CuratorShortlistsDir() string { return filepath.Join(l.DayDir, "curator", "shortlists") }
func (l Layout) EventsDir() string            { return filepath.Join(l.DayDir, "system", "events") }
func (l Layout) MetricsDir() string           { return filepath.Join(l.DayDir, "system", "metrics") }
func (l Layout) StateDir() string             { return filepath.Join(l.DayDir, "system", "state") }

// IterationRelPath returns the run-relative path of one iteration artifact.
func (l Layout) IterationRelPath(slug string, iteration int) string {
	return filepath.Join("artists", slug, "outputs", fmt.Sprintf("%s_%s_iter%d.png", l.Date, slug, iteration))
}

// FinalRelPath returns the run-relative path of the finalist artifact.
func (l Layout) FinalRelPath(slug string) string {
	return filepath.Join("artists", slug, "outputs", fmt.Sprintf("%s_%s_final.png", l.Date, slug))
}

// Document paths.
func (l Layout) RecordPath(slug string) string {
	return filepath.Join(l.InputsDir(slug), l.Date+"_record.json")
}
func (l Layout) NotePath(slug string) string {
	return filepath.Join(l.NotesDir(slug), l.Date+"_process.md")
}
func (l Layout) ManifestPath(slug string) string {
	return filepath.Join(l.OutputsDir(slug), l.Date+"_manifest.json")
}
func (l Layout) ScorePath(slug string) string {
	return filepath.Join(l.CuratorScoresDir(), fmt.Sprintf("%s_%s_score.json", l.Date, slug))
}
func (l Layout) ScoresCSVPath() string {
	return filepath.Join(l.CuratorScoresDir(), l.Date+"_scores.csv")
}
func (l Layout) ShortlistPath() string {
	return filepath.Join(l.CuratorShortlistsDir(), l.Date+"_shortlist.json")
}
func (l Layout) SummaryPath() string {
	return filepath.Join(l.CuratorSummariesDir(), l.Date+"_summary.md")
}
func (l Layout) EventsPath() string {
	return filepath.Join(l.EventsDir(), l.Date+"_events.ndjson")
}
func (l Layout) MetricsPath() string {
	return filepath.Join(l.MetricsDir(), l.Date+"_metrics.json")
}
func (l Layout) LastRunPath() string {
	return filepath.Join(l.StateDir(), "last_run.json")
}

// StateFilePath returns the cross-run crawl-state document path.
func (l Layout) StateFilePath() string {
	return filepath.Join(l.ResearchDir, "state.json")
}

// ExpansionPath returns this run's research-expansion document path.
func (l Layout) ExpansionPath() string {
	return filepath.Join(l.ResearchDir, l.Date+"_expansion.json")
}

// InitTree creates the run-scoped directory tree. Idempotent: re-running
// into an existing tree is safe. Directory creation failure is fatal.
func (l Layout) InitTree(ctx context.Context) error {
	dirs := []string{
		l.ResearchDir,
		l.EventsDir(),
		l.MetricsDir(),
		l.StateDir(),
		l.CuratorScoresDir(),
		l.CuratorSummariesDir(),
		l.CuratorShortlistsDir(),
	}

	g, _ := errgroup.WithContext(ctx)
	for _, dir := range dirs {
		g.Go(func() error {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// InitArtistDirs creates one artist's inputs/outputs/notes directories.
func (l Layout) InitArtistDirs(ctx context.Context, slug string) error {
	dirs := []string{l.InputsDir(slug), l.OutputsDir(slug), l.NotesDir(slug)}

	g, _ := errgroup.WithContext(ctx)
	for _, dir := range dirs {
		g.Go(func() error {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
			return nil
		})
	}
	return g.Wait()
}
