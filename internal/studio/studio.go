// Package studio runs one artist's full day: intent, research, a fixed
// number of generation iterations, finalist selection, and record assembly.
package studio

import (
	"context"
	"fmt"
	"os"

	"github.com/jeffschram/iamfranz/internal/compose"
	"github.com/jeffschram/iamfranz/internal/curation"
	"github.com/jeffschram/iamfranz/internal/imagegen"
	"github.com/jeffschram/iamfranz/internal/persist"
	"github.com/jeffschram/iamfranz/internal/research"
	"github.com/jeffschram/iamfranz/internal/types"
)

// DefaultIterations is the number of generation iterations per artist.
const DefaultIterations = 4

// Studio holds the run-scoped collaborators shared by every artist's day.
type Studio struct {
	Layout         persist.Layout
	Generator      *imagegen.Generator
	Model          string
	GenerateImages bool
	Iterations     int
	DayOfMonth     int
	Seeds          []types.SeedNode
	Research       research.Options
}

// DayResult is everything one artist's day produced, ready for persistence.
type DayResult struct {
	Record         types.ArtistDayRecord
	Manifest       types.ArtifactManifest
	Research       *types.ResearchResult
	RealImages     int
	FallbackImages int
}

// RunArtistDay executes one artist's day. Research and generation failures
// are recovered locally; only artifact write failures return an error.
func (s *Studio) RunArtistDay(ctx context.Context, persona types.ArtistPersona, rosterIndex int, state *types.CrawlStateFile) (*DayResult, error) {
	iterations := s.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	if err := s.Layout.InitArtistDirs(ctx, persona.ID); err != nil {
		return nil, err
	}

	date := s.Layout.Date
	intent := compose.Intent(persona)

	// Resolve the research target: persisted crawl state first, then the
	// static seed roster.
	seed := research.PickSeed(s.Seeds, rosterIndex, s.DayOfMonth)
	sourceNode := "dynamic"
	researchURL := ""
	if prior, ok := state.ByArtist[persona.ID]; ok && prior.NextURL != "" {
		researchURL = prior.NextURL
	} else if seed != nil {
		researchURL = seed.URL
		sourceNode = seed.Label
	}

	var researchResult *types.ResearchResult
	if researchURL != "" {
		researchResult = research.Fetch(ctx, researchURL, persona.ID, s.Research)
	}

	inspiration := []types.Inspiration{
		{Source: "Constructivism + digital folklore", Takeaway: "balance structure with narrative residue"},
		{Source: "Systems art critiques", Takeaway: "show process scars, not just clean output"},
	}

	var trail []types.ResearchTrailEntry
	if researchResult != nil && researchResult.OK {
		entry := types.ResearchTrailEntry{
			Date:           date,
			SourceNode:     sourceNode,
			URL:            researchResult.URL,
			Title:          researchResult.Title,
			Takeaways:      researchResult.Takeaways,
			Borrow:         fmt.Sprintf("Borrow one structural tactic from %s.", researchResult.Title),
			Reject:         "Reject direct imitation.",
			InfluenceScore: 3 + (len(persona.ID)+len(date))%3,
			NextURL:        researchResult.NextURL,
		}
		trail = append(trail, entry)
		inspiration = append(inspiration, types.Inspiration{
			Source:   entry.Title,
			Takeaway: firstTakeaway(entry.Takeaways),
		})
	}

	var trailEntry *types.ResearchTrailEntry
	if len(trail) > 0 {
		trailEntry = &trail[0]
	}

	realImages, fallbackImages := 0, 0
	records := make([]types.IterationRecord, 0, iterations)
	for n := 1; n <= iterations; n++ {
		rel := s.Layout.IterationRelPath(persona.ID, n)

		result := types.ImageResult{OK: false, Mode: types.ModeSkipped}
		if s.GenerateImages {
			prompt := compose.ImagePrompt(persona, date, intent, n, trailEntry)
			var err error
			result, err = s.Generator.Generate(ctx, prompt, s.Layout.Abs(rel), s.Model)
			if err != nil {
				return nil, err
			}
			if result.OK {
				realImages++
			} else {
				fallbackImages++
			}
		}

		records = append(records, types.IterationRecord{
			ID:          fmt.Sprintf("%s-iter-%d", persona.ID, n),
			Iteration:   n,
			Summary:     fmt.Sprintf("Iteration %d: tested composition pressure level %d.", n, n),
			OutputPath:  rel,
			ImageResult: result,
		})
	}

	finalRel := s.Layout.FinalRelPath(persona.ID)
	finalResult := types.ImageResult{OK: false, Mode: types.ModeSkipped}
	if s.GenerateImages {
		var err error
		finalResult, err = s.selectFinalist(records, finalRel)
		if err != nil {
			return nil, err
		}
		if finalResult.OK {
			realImages++
		} else {
			fallbackImages++
		}
	}

	record := types.ArtistDayRecord{
		Date:          date,
		ArtistID:      persona.ID,
		Intent:        intent,
		Constraints:   persona.Constraints,
		Inspiration:   inspiration,
		ResearchTrail: trail,
		Method:        fmt.Sprintf("Generate %d iterations with escalating constraint pressure, then self-critique and select one finalist.", iterations),
		Iterations:    records,
		SelfCritique:  curation.SelfCritique(rosterIndex),
		FinalOutput: types.FinalOutput{
			Path:        finalRel,
			Rationale:   "Best balance of concept clarity and stylistic identity under constraints.",
			ImageResult: finalResult,
		},
	}

	manifest := types.ArtifactManifest{
		ArtistID: persona.ID,
		Date:     date,
		Status:   types.StatusGenerationDisabled,
		Model:    s.Model,
	}
	if s.GenerateImages {
		manifest.Status = types.StatusArtifactsGenerated
	}
	for _, it := range records {
		manifest.ExpectedArtifacts = append(manifest.ExpectedArtifacts, it.OutputPath)
	}
	manifest.ExpectedArtifacts = append(manifest.ExpectedArtifacts, finalRel)
	manifest.Generation.GenerateImages = s.GenerateImages
	manifest.Generation.SuccessfulIterations = countSuccessful(records)

	return &DayResult{
		Record:         record,
		Manifest:       manifest,
		Research:       researchResult,
		RealImages:     realImages,
		FallbackImages: fallbackImages,
	}, nil
}

// selectFinalist scans iterations from last to first and promotes the first
// externally generated artifact; with no success it falls back to the last
// iteration's placeholder. A copy failure writes a fresh placeholder at the
// finalist path instead.
func (s *Studio) selectFinalist(records []types.IterationRecord, finalRel string) (types.ImageResult, error) {
	best := records[len(records)-1]
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].ImageResult.OK {
			best = records[i]
			break
		}
	}

	finalAbs := s.Layout.Abs(finalRel)
	if err := copyFile(s.Layout.Abs(best.OutputPath), finalAbs); err != nil {
		if werr := imagegen.WritePlaceholder(finalAbs); werr != nil {
			return types.ImageResult{}, werr
		}
		return types.ImageResult{
			OK:    false,
			Mode:  types.ModeFallbackException,
			Model: best.ImageResult.Model,
			Error: fmt.Sprintf("finalist copy failed: %v", err),
		}, nil
	}

	return best.ImageResult, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

func countSuccessful(records []types.IterationRecord) int {
	count := 0
	for _, it := range records {
		if it.ImageResult.OK {
			count++
		}
	}
	return count
}

func firstTakeaway(takeaways []string) string {
	if len(takeaways) > 0 {
		return takeaways[0]
	}
	return "Research completed."
}
