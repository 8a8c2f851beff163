package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jeffschram/iamfranz/internal/db"
	"github.com/jeffschram/iamfranz/internal/persist"
	"github.com/jeffschram/iamfranz/internal/roster"
	"github.com/jeffschram/iamfranz/internal/types"
)

// SyncOptions holds configuration for pushing a finished run to the
// gallery record store.
type SyncOptions struct {
	DayDir      string
	Date        string
	DatabaseURL string
	Verbose     bool
}

// SyncRun reads a finished run's artifacts back from disk and pushes them
// to the gallery record store. Re-syncing the same run is idempotent:
// existing artworks are skipped by their deterministic title and daily
// updates are upserted per (artist, date).
func SyncRun(ctx context.Context, opts SyncOptions) error {
	personas := roster.Personas()
	if err := roster.Validate(personas); err != nil {
		return fmt.Errorf("roster validation failed: %w", err)
	}

	layout := persist.Layout{DayDir: opts.DayDir, Date: opts.Date}

	store, err := db.Connect(ctx, opts.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	created, skipped := 0, 0
	for _, persona := range personas {
		artistID, err := store.UpsertArtist(ctx, persona)
		if err != nil {
			return err
		}

		title := fmt.Sprintf("%s — %s — Pilot Day Output", opts.Date, persona.Gallery.Name)
		exists, err := store.ArtworkExists(ctx, title)
		if err != nil {
			return err
		}

		if exists {
			skipped++
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Artwork already synced: %s\n", title)
			}
		} else {
			finalPath := layout.Abs(layout.FinalRelPath(persona.ID))
			pngData, err := os.ReadFile(finalPath)
			if err != nil {
				return fmt.Errorf("failed to read finalist %s: %w", finalPath, err)
			}

			imageID, err := store.UploadImage(ctx, "image/png", pngData)
			if err != nil {
				return err
			}

			year, err := strconv.Atoi(opts.Date[:4])
			if err != nil {
				return fmt.Errorf("invalid sync date %q: %w", opts.Date, err)
			}

			medium := ""
			if len(persona.Gallery.Mediums) > 0 {
				medium = persona.Gallery.Mediums[0]
			}

			if _, err := store.CreateArtwork(ctx, db.Artwork{
				Title:       title,
				Description: fmt.Sprintf("Autonomous pilot output for %s (%s).", persona.Gallery.Name, opts.Date),
				ArtistID:    artistID,
				ImageID:     imageID,
				Year:        year,
				Medium:      medium,
				Dimensions:  "1024x1024",
				IsAvailable: true,
				Featured:    true,
			}); err != nil {
				return err
			}
			created++
		}

		record, err := readRecord(layout.RecordPath(persona.ID))
		if err != nil {
			return err
		}
		card, err := readScoreCard(layout.ScorePath(persona.ID))
		if err != nil {
			return err
		}

		if err := store.UpsertDailyUpdate(ctx, db.DailyUpdate{
			ArtistID:    artistID,
			Date:        opts.Date,
			Summary:     updateSummary(record),
			Interests:   record.Constraints,
			Inspiration: inspirationLines(record),
			Score:       card.Total,
		}); err != nil {
			return err
		}
	}

	fmt.Printf("Sync complete. created=%d skipped=%d\n", created, skipped)
	return nil
}

func readRecord(path string) (types.ArtistDayRecord, error) {
	var record types.ArtistDayRecord
	data, err := os.ReadFile(path)
	if err != nil {
		return record, fmt.Errorf("failed to read day record %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("failed to parse day record %s: %w", path, err)
	}
	return record, nil
}

func readScoreCard(path string) (types.ScoreCard, error) {
	var card types.ScoreCard
	data, err := os.ReadFile(path)
	if err != nil {
		return card, fmt.Errorf("failed to read scorecard %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &card); err != nil {
		return card, fmt.Errorf("failed to parse scorecard %s: %w", path, err)
	}
	return card, nil
}

// inspirationLines prefers the research trail; with no trail the static
// inspiration pairs are used instead.
func inspirationLines(record types.ArtistDayRecord) []string {
	if len(record.ResearchTrail) > 0 {
		lines := make([]string, 0, len(record.ResearchTrail))
		for _, t := range record.ResearchTrail {
			lines = append(lines, fmt.Sprintf("%s: %s", t.SourceNode, t.URL))
		}
		return lines
	}

	lines := make([]string, 0, len(record.Inspiration))
	for _, i := range record.Inspiration {
		lines = append(lines, fmt.Sprintf("%s: %s", i.Source, i.Takeaway))
	}
	return lines
}

func updateSummary(record types.ArtistDayRecord) string {
	parts := []string{record.Intent}
	if len(record.ResearchTrail) > 0 {
		parts = append(parts, fmt.Sprintf("Research node: %s", record.ResearchTrail[0].SourceNode))
	}
	rationale := record.FinalOutput.Rationale
	if rationale == "" {
		rationale = "n/a"
	}
	parts = append(parts,
		fmt.Sprintf("Method: %s", record.Method),
		fmt.Sprintf("Final rationale: %s", rationale),
	)
	return strings.Join(parts, " ")
}
