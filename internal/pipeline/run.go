// Package pipeline provides the high-level orchestration for one autonomy
// day run: every rostered artist is processed in order, curation aggregates
// the results, and the full artifact tree is written. Artifact write
// failures are fatal; research and generation failures never are.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jeffschram/iamfranz/internal/curation"
	"github.com/jeffschram/iamfranz/internal/fetch"
	"github.com/jeffschram/iamfranz/internal/imagegen"
	"github.com/jeffschram/iamfranz/internal/narrate"
	"github.com/jeffschram/iamfranz/internal/observability"
	"github.com/jeffschram/iamfranz/internal/persist"
	"github.com/jeffschram/iamfranz/internal/research"
	"github.com/jeffschram/iamfranz/internal/roster"
	"github.com/jeffschram/iamfranz/internal/schemas"
	"github.com/jeffschram/iamfranz/internal/studio"
	"github.com/jeffschram/iamfranz/internal/types"
)

// RunOptions holds configuration for running one autonomy day.
type RunOptions struct {
	DayDir         string
	ResearchDir    string
	Date           string // YYYY-MM-DD; drives seed rotation and scoring, not wall clock
	ImageModel     string
	Iterations     int
	APIKey         string // Image service key; empty means every image is a fallback
	GeminiAPIKey   string // Optional curator narrative key
	GenerateImages bool
	UseBrowser     bool
	Verbose        bool
}

// RunPipeline executes one full autonomy day run.
func RunPipeline(ctx context.Context, opts RunOptions) error {
	day, err := time.Parse("2006-01-02", opts.Date)
	if err != nil {
		return fmt.Errorf("invalid run date %q: %w", opts.Date, err)
	}
	dayOfMonth := day.Day()

	printer := observability.NewPrinter(os.Stdout)
	runID := "run-" + uuid.New().String()

	personas := roster.Personas()
	if err := roster.Validate(personas); err != nil {
		return fmt.Errorf("roster validation failed: %w", err)
	}

	layout := persist.Layout{
		DayDir:      opts.DayDir,
		ResearchDir: opts.ResearchDir,
		Date:        opts.Date,
	}

	fmt.Printf("Step 1/6: Initializing run tree at %s...\n", opts.DayDir)
	if err := layout.InitTree(ctx); err != nil {
		return err
	}
	if err := persist.ResetEventLog(layout.EventsPath()); err != nil {
		return err
	}

	fmt.Printf("Step 2/6: Loading crawl state and seed roster...\n")
	state := persist.LoadCrawlState(layout.StateFilePath())
	seeds := research.Seeds(opts.ResearchDir)

	st := &studio.Studio{
		Layout:         layout,
		Generator:      imagegen.New(opts.APIKey),
		Model:          opts.ImageModel,
		GenerateImages: opts.GenerateImages,
		Iterations:     opts.Iterations,
		DayOfMonth:     dayOfMonth,
		Seeds:          seeds,
		Research: research.Options{
			Fetch:      fetch.DefaultOptions(),
			UseBrowser: opts.UseBrowser,
			Verbose:    opts.Verbose,
		},
	}

	fmt.Printf("Step 3/6: Running %d artist days...\n", len(personas))

	cards := make([]types.ScoreCard, 0, len(personas))
	shortlistEntries := make([]types.ShortlistEntry, 0, len(personas))
	expansions := make([]persist.ExpansionEntry, 0, len(personas))
	candidates, realImages, fallbackImages := 0, 0, 0

	for i, persona := range personas {
		fmt.Printf("  Artist %d/%d: %s...\n", i+1, len(personas), persona.ID)

		result, err := st.RunArtistDay(ctx, persona, i, state)
		if err != nil {
			return fmt.Errorf("artist day failed for %s: %w", persona.ID, err)
		}
		realImages += result.RealImages
		fallbackImages += result.FallbackImages

		if opts.Verbose {
			printer.PrintResearchResult(persona.ID, result.Research)
		}

		if err := writeDayRecord(layout.RecordPath(persona.ID), result.Record); err != nil {
			return err
		}
		if err := persist.WriteText(layout.NotePath(persona.ID), persist.ProcessNote(result.Record)); err != nil {
			return err
		}
		if err := persist.WriteJSON(layout.ManifestPath(persona.ID), result.Manifest); err != nil {
			return err
		}

		card := curation.BuildScoreCard(opts.Date, persona.ID, i+dayOfMonth)
		cards = append(cards, card)
		if opts.Verbose {
			printer.PrintScoreCard(card)
		}
		if err := persist.WriteJSON(layout.ScorePath(persona.ID), card); err != nil {
			return err
		}

		if card.Verdict == types.VerdictCandidate {
			candidates++
			shortlistEntries = append(shortlistEntries, types.ShortlistEntry{
				ArtistID:    persona.ID,
				FinalOutput: result.Record.FinalOutput.Path,
				Total:       card.Total,
			})
		}

		// Merge this artist's crawl position into the shared state; artists
		// with no research result this run keep their prior entry untouched.
		if len(result.Record.ResearchTrail) > 0 {
			trail := result.Record.ResearchTrail[0]
			next := trail.NextURL
			if next == "" {
				next = trail.URL
			}
			state.ByArtist[persona.ID] = types.CrawlState{
				CurrentURL:  trail.URL,
				NextURL:     next,
				LastTitle:   trail.Title,
				LastRunDate: opts.Date,
			}
			expansions = append(expansions, persist.ExpansionEntry{
				ArtistID:           persona.ID,
				ResearchTrailEntry: trail,
			})
		}

		if err := persist.AppendEvent(layout.EventsPath(), types.Event{
			TS:       time.Now().UTC().Format(time.RFC3339),
			Type:     types.EventArtistDayCompleted,
			RunID:    runID,
			ArtistID: persona.ID,
			Total:    card.Total,
			Verdict:  card.Verdict,
		}); err != nil {
			return err
		}
	}

	fmt.Printf("Step 4/6: Curating run results...\n")
	shortlist := curation.BuildShortlist(opts.Date, runID, shortlistEntries)
	manifest := curation.BuildManifest(opts.Date, runID, cards, candidates, realImages, fallbackImages)

	if opts.Verbose {
		printer.PrintShortlist(shortlist)
		printer.PrintRunManifest(manifest)
	}

	if err := persist.WriteScoresCSV(layout.ScoresCSVPath(), cards); err != nil {
		return err
	}
	if err := persist.WriteJSON(layout.ShortlistPath(), shortlist); err != nil {
		return err
	}
	if err := persist.WriteJSON(layout.MetricsPath(), manifest); err != nil {
		return err
	}

	fmt.Printf("Step 5/6: Writing run summary...\n")
	summary, llmWritten := narrate.RunSummary(ctx, manifest, shortlist, opts.ImageModel, opts.GeminiAPIKey)
	if opts.Verbose && llmWritten {
		fmt.Printf("[VERBOSE] Curator narrative written by LLM\n")
	}
	if err := persist.WriteText(layout.SummaryPath(), summary); err != nil {
		return err
	}

	fmt.Printf("Step 6/6: Persisting crawl state...\n")
	if err := persist.SaveCrawlState(layout.StateFilePath(), state); err != nil {
		return err
	}
	if err := persist.WriteJSON(layout.ExpansionPath(), persist.ExpansionDoc{
		Date:       opts.Date,
		Expansions: expansions,
	}); err != nil {
		return err
	}
	if err := persist.WriteJSON(layout.LastRunPath(), persist.LastRun{
		Date:   opts.Date,
		RunID:  runID,
		Status: "completed",
	}); err != nil {
		return err
	}

	fmt.Printf("Autonomy day run complete: %s\n", opts.DayDir)
	fmt.Printf("  Images generated: %d, fallback images: %d, candidates: %d\n",
		manifest.ImagesGenerated, manifest.FallbackImages, manifest.Candidates)
	return nil
}

// writeDayRecord schema-validates the record before it touches disk so a
// malformed document never lands in the tree.
func writeDayRecord(path string, record types.ArtistDayRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal day record: %w", err)
	}
	if err := schemas.Validate(schemas.DayRecordSchema, data); err != nil {
		return fmt.Errorf("day record for %s is invalid: %w", record.ArtistID, err)
	}
	return persist.WriteJSON(path, record)
}
