package persist

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/jeffschram/iamfranz/internal/types"
)

// WriteJSON writes v as two-space-indented JSON with a trailing newline.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteText writes a narrative text document.
func WriteText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ResetEventLog removes any prior event log at path. The log is the one
// append-mode artifact, so a re-run into an existing day directory must
// clear it first or completion lines from the aborted run accumulate.
func ResetEventLog(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to reset event log %s: %w", path, err)
	}
	return nil
}

// AppendEvent appends one JSON line to the run event log.
func AppendEvent(path string, event types.Event) error {
	line, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open event log %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append to event log %s: %w", path, err)
	}
	return nil
}

// scoresCSVHeader fixes the tabular score export column order.
var scoresCSVHeader = []string{
	"artistId", "total", "autonomyDepth", "creativeCoherence", "noveltyRisk",
	"researchToOutputIntegrity", "reflectionQuality", "exhibitReadiness",
}

// WriteScoresCSV writes the shared tabular score export, one row per artist
// in roster order.
func WriteScoresCSV(path string, cards []types.ScoreCard) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(scoresCSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, c := range cards {
		row := []string{
			c.ArtistID,
			strconv.Itoa(c.Total),
			strconv.Itoa(c.Scores.AutonomyDepth),
			strconv.Itoa(c.Scores.CreativeCoherence),
			strconv.Itoa(c.Scores.NoveltyRisk),
			strconv.Itoa(c.Scores.ResearchToOutputIntegrity),
			strconv.Itoa(c.Scores.ReflectionQuality),
			strconv.Itoa(c.Scores.ExhibitReadiness),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", c.ArtistID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

// LastRun is the completion marker written at the end of a successful run.
type LastRun struct {
	Date   string `json:"date"`
	RunID  string `json:"runId"`
	Status string `json:"status"`
}

// ExpansionEntry records what one artist learned this run.
type ExpansionEntry struct {
	ArtistID string `json:"artistId"`
	types.ResearchTrailEntry
}

// ExpansionDoc is the dated research-expansion document.
type ExpansionDoc struct {
	Date       string           `json:"date"`
	Expansions []ExpansionEntry `json:"expansions"`
}
