// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jeffschram/iamfranz/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResearchResult outputs a summary of one artist's research cycle.
func (p *Printer) PrintResearchResult(artistID string, r *types.ResearchResult) {
	if r == nil {
		p.printBox(fmt.Sprintf("Research: %s", artistID), "no research target this run")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "OK: %t\n", r.OK)
	fmt.Fprintf(&b, "URL: %s\n", r.URL)
	fmt.Fprintf(&b, "Title: %s\n", r.Title)
	fmt.Fprintf(&b, "Links: %d\n", len(r.DiscoveredLinks))
	fmt.Fprintf(&b, "Next: %s\n", r.NextURL)
	for i, t := range r.Takeaways {
		if i >= maxItemsToShow {
			break
		}
		fmt.Fprintf(&b, "- %s\n", t)
	}
	p.printBox(fmt.Sprintf("Research: %s", artistID), strings.TrimRight(b.String(), "\n"))
}

// PrintScoreCard outputs one artist's rubric result.
func (p *Printer) PrintScoreCard(card types.ScoreCard) {
	var b strings.Builder
	fmt.Fprintf(&b, "Autonomy depth: %d\n", card.Scores.AutonomyDepth)
	fmt.Fprintf(&b, "Creative coherence: %d\n", card.Scores.CreativeCoherence)
	fmt.Fprintf(&b, "Novelty/risk: %d\n", card.Scores.NoveltyRisk)
	fmt.Fprintf(&b, "Research integrity: %d\n", card.Scores.ResearchToOutputIntegrity)
	fmt.Fprintf(&b, "Reflection quality: %d\n", card.Scores.ReflectionQuality)
	fmt.Fprintf(&b, "Exhibit readiness: %d\n", card.Scores.ExhibitReadiness)
	fmt.Fprintf(&b, "Total: %d (%s)", card.Total, card.Verdict)
	p.printBox(fmt.Sprintf("ScoreCard: %s", card.ArtistID), b.String())
}

// PrintShortlist outputs the ranked candidate shortlist.
func (p *Printer) PrintShortlist(shortlist types.Shortlist) {
	if len(shortlist.Items) == 0 {
		p.printBox("Shortlist", "no candidates this run")
		return
	}

	var b strings.Builder
	for i, item := range shortlist.Items {
		if i >= maxItemsToShow {
			fmt.Fprintf(&b, "... and %d more\n", len(shortlist.Items)-maxItemsToShow)
			break
		}
		fmt.Fprintf(&b, "%d. %s (score %d)\n", i+1, item.ArtistID, item.Total)
	}
	p.printBox("Shortlist", strings.TrimRight(b.String(), "\n"))
}

// PrintRunManifest outputs the run-level aggregate metrics.
func (p *Printer) PrintRunManifest(m types.RunManifest) {
	var b strings.Builder
	fmt.Fprintf(&b, "Run: %s (%s)\n", m.RunID, m.Date)
	fmt.Fprintf(&b, "Artists processed: %d\n", m.ArtistsProcessed)
	fmt.Fprintf(&b, "Average score: %g\n", m.AverageScore)
	fmt.Fprintf(&b, "Candidates: %d\n", m.Candidates)
	fmt.Fprintf(&b, "Images generated: %d\n", m.ImagesGenerated)
	fmt.Fprintf(&b, "Fallback images: %d", m.FallbackImages)
	p.printBox("Run metrics", b.String())
}
