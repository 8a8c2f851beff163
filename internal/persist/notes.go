package persist

import (
	"fmt"
	"strings"

	"github.com/jeffschram/iamfranz/internal/types"
)

// ProcessNote renders the human-readable daily process note for one artist.
func ProcessNote(record types.ArtistDayRecord) string {
	researchURL, researchTitle, researchNext := "n/a", "n/a", "n/a"
	takeaways := []string{"n/a"}
	if len(record.ResearchTrail) > 0 {
		trail := record.ResearchTrail[0]
		researchURL = trail.URL
		researchTitle = trail.Title
		if trail.NextURL != "" {
			researchNext = trail.NextURL
		}
		if len(trail.Takeaways) > 0 {
			takeaways = trail.Takeaways
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s — %s daily process note\n\n", record.Date, record.ArtistID)
	fmt.Fprintf(&b, "## Intent\n%s\n\n", record.Intent)
	fmt.Fprintf(&b, "## Constraints\n- %s\n\n", strings.Join(record.Constraints, "\n- "))
	fmt.Fprintf(&b, "## Research\n- URL: %s\n- Title: %s\n- Takeaways:\n", researchURL, researchTitle)
	for _, t := range takeaways {
		fmt.Fprintf(&b, "  - %s\n", t)
	}
	fmt.Fprintf(&b, "- Next URL: %s\n\n", researchNext)
	fmt.Fprintf(&b, "## Method\n%s\n\n", record.Method)
	fmt.Fprintf(&b, "## Final output\n- %s\n- %s\n", record.FinalOutput.Path, record.FinalOutput.Rationale)
	return b.String()
}

// RunSummary renders the deterministic run summary narrative. It is also
// the fallback when the optional LLM-written narrative is unavailable.
func RunSummary(manifest types.RunManifest, shortlist types.Shortlist, model string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Autonomous Pilot Summary\n\n", manifest.Date)
	fmt.Fprintf(&b, "- Run ID: %s\n", manifest.RunID)
	fmt.Fprintf(&b, "- Artists processed: %d\n", manifest.ArtistsProcessed)
	fmt.Fprintf(&b, "- Average total score: %g\n", manifest.AverageScore)
	fmt.Fprintf(&b, "- Exhibit candidates: %d\n", manifest.Candidates)
	fmt.Fprintf(&b, "- Images generated: %d\n", manifest.ImagesGenerated)
	fmt.Fprintf(&b, "- Fallback images: %d\n\n", manifest.FallbackImages)

	b.WriteString("## Candidates\n")
	if len(shortlist.Items) == 0 {
		b.WriteString("- None\n")
	} else {
		for _, item := range shortlist.Items {
			fmt.Fprintf(&b, "- %s: %s (score %d)\n", item.ArtistID, item.FinalOutput, item.Total)
		}
	}

	b.WriteString("\n## Notes\n")
	b.WriteString("- Structured day records and scorecards were generated autonomously.\n")
	fmt.Fprintf(&b, "- Image generation uses the external image service (%s) when a credential is configured; otherwise fallback PNGs are written.\n", model)
	b.WriteString("- Research tree expanded from each artist's current URL and selected the next URL for tomorrow.\n")
	return b.String()
}
