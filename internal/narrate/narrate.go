// Package narrate produces the curator summary narrative for a run.
// When a Gemini key is configured it asks the model to write the summary;
// on any failure, or with no key, it falls back to the deterministic
// template so unattended runs never stall on the narrative.
package narrate

import (
	"context"
	"fmt"
	"strings"

	"github.com/jeffschram/iamfranz/internal/llm"
	"github.com/jeffschram/iamfranz/internal/persist"
	"github.com/jeffschram/iamfranz/internal/prompts"
	"github.com/jeffschram/iamfranz/internal/types"
)

// RunSummary returns the curator summary markdown for a completed run.
// The returned bool reports whether the narrative was LLM-written.
func RunSummary(ctx context.Context, manifest types.RunManifest, shortlist types.Shortlist, imageModel, geminiKey string) (string, bool) {
	fallback := persist.RunSummary(manifest, shortlist, imageModel)
	if geminiKey == "" {
		return fallback, false
	}

	narrative, err := generate(ctx, manifest, shortlist, geminiKey)
	if err != nil || strings.TrimSpace(narrative) == "" {
		return fallback, false
	}

	// The metrics header stays deterministic; only the narrative below it
	// comes from the model.
	return fallback + "\n## Curator note\n" + strings.TrimSpace(narrative) + "\n", true
}

func generate(ctx context.Context, manifest types.RunManifest, shortlist types.Shortlist, apiKey string) (string, error) {
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return "", err
	}
	defer func() { _ = client.Close() }()

	candidateList := "none"
	if len(shortlist.Items) > 0 {
		var items []string
		for _, item := range shortlist.Items {
			items = append(items, fmt.Sprintf("%s (score %d)", item.ArtistID, item.Total))
		}
		candidateList = strings.Join(items, ", ")
	}

	prompt := prompts.Format(prompts.MustGet("autonomy.json", "curator-summary"), map[string]string{
		"Date":             manifest.Date,
		"ArtistsProcessed": fmt.Sprintf("%d", manifest.ArtistsProcessed),
		"AverageScore":     fmt.Sprintf("%g", manifest.AverageScore),
		"Candidates":       fmt.Sprintf("%d", manifest.Candidates),
		"ImagesGenerated":  fmt.Sprintf("%d", manifest.ImagesGenerated),
		"FallbackImages":   fmt.Sprintf("%d", manifest.FallbackImages),
		"CandidateList":    candidateList,
	})

	return client.GenerateContent(ctx, prompt, llm.TierLite)
}
