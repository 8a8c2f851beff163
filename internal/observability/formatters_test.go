package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeffschram/iamfranz/internal/types"
)

func TestPrintResearchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResearchResult("a1-maximalist-poet", &types.ResearchResult{
		OK:        true,
		URL:       "https://example.com/editorial",
		Title:     "Editorial Archive",
		Takeaways: []string{"borrow the grid"},
	})

	out := buf.String()
	assert.Contains(t, out, "Research: a1-maximalist-poet")
	assert.Contains(t, out, "Editorial Archive")
	assert.Contains(t, out, "borrow the grid")
}

func TestPrintResearchResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResearchResult("a1", nil)
	assert.Contains(t, buf.String(), "no research target this run")
}

func TestPrintScoreCard(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreCard(types.ScoreCard{
		ArtistID: "a2-systems-minimalist",
		Scores:   types.RubricScores{AutonomyDepth: 20},
		Total:    75,
		Verdict:  types.VerdictCandidate,
	})

	out := buf.String()
	assert.Contains(t, out, "ScoreCard: a2-systems-minimalist")
	assert.Contains(t, out, "Total: 75 (candidate)")
}

func TestPrintShortlist_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintShortlist(types.Shortlist{})
	assert.Contains(t, buf.String(), "no candidates this run")
}

func TestPrintShortlist_TruncatesLongLists(t *testing.T) {
	items := make([]types.ShortlistEntry, 8)
	for i := range items {
		items[i] = types.ShortlistEntry{ArtistID: "artist", Total: 75}
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintShortlist(types.Shortlist{Items: items})
	assert.Contains(t, buf.String(), "and 3 more")
}

func TestPrintRunManifest(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRunManifest(types.RunManifest{
		RunID:            "run-x",
		Date:             "2026-08-29",
		ArtistsProcessed: 3,
		AverageScore:     75.7,
	})

	out := buf.String()
	assert.Contains(t, out, "Run metrics")
	assert.Contains(t, out, "run-x")
	assert.Contains(t, out, "75.7")
}
