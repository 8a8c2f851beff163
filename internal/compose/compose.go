// Package compose builds generation directives from persona, intent,
// iteration, and research context. All functions are pure.
package compose

import (
	"strconv"
	"strings"

	"github.com/jeffschram/iamfranz/internal/prompts"
	"github.com/jeffschram/iamfranz/internal/types"
)

const templateFile = "autonomy.json"

// Intent builds the day's intent sentence for a persona.
func Intent(persona types.ArtistPersona) string {
	return prompts.Format(prompts.MustGet(templateFile, "intent"), map[string]string{
		"Medium": persona.PrimaryMedium,
	})
}

// ImagePrompt builds the full generation directive for one iteration.
// The research entry may be nil; the directive then states explicitly that
// no research source is available.
func ImagePrompt(persona types.ArtistPersona, date, intent string, iteration int, research *types.ResearchTrailEntry) string {
	researchLine := prompts.MustGet(templateFile, "no-research-line")
	if research != nil {
		researchLine = prompts.Format(prompts.MustGet(templateFile, "research-line"), map[string]string{
			"Title": research.Title,
			"URL":   research.URL,
			"Cues":  strings.Join(research.Takeaways, " "),
		})
	}

	return prompts.Format(prompts.MustGet(templateFile, "image-directive"), map[string]string{
		"ArtistID":     persona.ID,
		"Date":         date,
		"Voice":        persona.Voice,
		"Medium":       persona.PrimaryMedium,
		"Intent":       intent,
		"Constraints":  strings.Join(persona.Constraints, "; "),
		"ResearchLine": researchLine,
		"Iteration":    strconv.Itoa(iteration),
	})
}
