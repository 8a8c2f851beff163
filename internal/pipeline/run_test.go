package pipeline

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffschram/iamfranz/internal/persist"
	"github.com/jeffschram/iamfranz/internal/roster"
	"github.com/jeffschram/iamfranz/internal/types"
)

// localSeedFile points every artist's research at the given URL so runs
// never leave the test host.
func localSeedFile(t *testing.T, researchDir, url string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(researchDir, 0o755))
	content := `{"nodes":[{"label":"local-test-node","url":"` + url + `"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(researchDir, "test_seed.json"), []byte(content), 0o644))
}

func researchServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Local Archive</title></head><body>
			<p>The artist collective documents a digital practice of daily generative experiments and code studies.</p>
			<a href="/essays/next">Next essay</a>
		</body></html>`))
	}))
	t.Cleanup(server.Close)
	return server
}

func testRunOptions(t *testing.T, root string, server *httptest.Server) RunOptions {
	t.Helper()
	researchDir := filepath.Join(root, "research_tree")
	localSeedFile(t, researchDir, server.URL)
	return RunOptions{
		DayDir:         filepath.Join(root, "2026-08-29_day1"),
		ResearchDir:    researchDir,
		Date:           "2026-08-29",
		ImageModel:     "gpt-image-1",
		Iterations:     4,
		GenerateImages: true,
	}
}

func TestRunPipeline_FullRunWithoutCredential(t *testing.T) {
	server := researchServer(t)
	opts := testRunOptions(t, t.TempDir(), server)

	require.NoError(t, RunPipeline(context.Background(), opts))

	layout := persist.Layout{DayDir: opts.DayDir, ResearchDir: opts.ResearchDir, Date: opts.Date}
	personas := roster.Personas()

	for _, persona := range personas {
		data, err := os.ReadFile(layout.RecordPath(persona.ID))
		require.NoError(t, err, persona.ID)

		var record types.ArtistDayRecord
		require.NoError(t, json.Unmarshal(data, &record))
		assert.Equal(t, persona.ID, record.ArtistID)
		assert.Len(t, record.Iterations, 4)
		require.Len(t, record.ResearchTrail, 1)
		assert.Equal(t, "Local Archive", record.ResearchTrail[0].Title)

		_, err = os.Stat(layout.Abs(layout.FinalRelPath(persona.ID)))
		require.NoError(t, err, persona.ID)
		_, err = os.Stat(layout.NotePath(persona.ID))
		require.NoError(t, err, persona.ID)
		_, err = os.Stat(layout.ManifestPath(persona.ID))
		require.NoError(t, err, persona.ID)
		_, err = os.Stat(layout.ScorePath(persona.ID))
		require.NoError(t, err, persona.ID)
	}

	// Without a credential every image is a fallback: four iterations plus
	// the finalist per artist.
	metricsData, err := os.ReadFile(layout.MetricsPath())
	require.NoError(t, err)
	var manifest types.RunManifest
	require.NoError(t, json.Unmarshal(metricsData, &manifest))
	assert.Equal(t, len(personas), manifest.ArtistsProcessed)
	assert.Equal(t, 0, manifest.ImagesGenerated)
	assert.Equal(t, len(personas)*5, manifest.FallbackImages)
	assert.True(t, strings.HasPrefix(manifest.RunID, "run-"))

	for _, path := range []string{
		layout.ScoresCSVPath(),
		layout.ShortlistPath(),
		layout.SummaryPath(),
		layout.LastRunPath(),
		layout.StateFilePath(),
		layout.ExpansionPath(),
	} {
		_, err := os.Stat(path)
		require.NoError(t, err, path)
	}

	eventsData, err := os.ReadFile(layout.EventsPath())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(eventsData), "\n"), "\n")
	assert.Len(t, lines, len(personas))
}

func TestRunPipeline_UpdatesCrawlState(t *testing.T) {
	server := researchServer(t)
	opts := testRunOptions(t, t.TempDir(), server)
	opts.GenerateImages = false

	require.NoError(t, RunPipeline(context.Background(), opts))

	layout := persist.Layout{DayDir: opts.DayDir, ResearchDir: opts.ResearchDir, Date: opts.Date}
	state := persist.LoadCrawlState(layout.StateFilePath())
	require.Len(t, state.ByArtist, len(roster.Personas()))

	entry := state.ByArtist["a1-maximalist-poet"]
	assert.Equal(t, server.URL, entry.CurrentURL)
	assert.Equal(t, server.URL+"/essays/next", entry.NextURL)
	assert.Equal(t, "Local Archive", entry.LastTitle)
	assert.Equal(t, "2026-08-29", entry.LastRunDate)
}

func TestRunPipeline_SecondRunMergesState(t *testing.T) {
	server := researchServer(t)
	root := t.TempDir()
	opts := testRunOptions(t, root, server)
	opts.GenerateImages = false

	require.NoError(t, RunPipeline(context.Background(), opts))

	// Plant a foreign entry; a second run must preserve it.
	layout := persist.Layout{DayDir: opts.DayDir, ResearchDir: opts.ResearchDir, Date: opts.Date}
	state := persist.LoadCrawlState(layout.StateFilePath())
	state.ByArtist["retired-artist"] = types.CrawlState{
		CurrentURL:  "https://example.com/x",
		NextURL:     "https://example.com/y",
		LastTitle:   "Old",
		LastRunDate: "2026-08-01",
	}
	require.NoError(t, persist.SaveCrawlState(layout.StateFilePath(), state))

	second := opts
	second.DayDir = filepath.Join(root, "2026-08-30_day1")
	second.Date = "2026-08-30"
	require.NoError(t, RunPipeline(context.Background(), second))

	merged := persist.LoadCrawlState(layout.StateFilePath())
	assert.Contains(t, merged.ByArtist, "retired-artist")
	assert.Equal(t, "2026-08-30", merged.ByArtist["a1-maximalist-poet"].LastRunDate)
}

func TestRunPipeline_RerunIntoSameDayDirResetsEventLog(t *testing.T) {
	server := researchServer(t)
	opts := testRunOptions(t, t.TempDir(), server)
	opts.GenerateImages = false

	// A retry after a mid-run abort lands in the same day directory; every
	// artifact including the event log must reflect only the latest run.
	require.NoError(t, RunPipeline(context.Background(), opts))
	require.NoError(t, RunPipeline(context.Background(), opts))

	layout := persist.Layout{DayDir: opts.DayDir, ResearchDir: opts.ResearchDir, Date: opts.Date}
	eventsData, err := os.ReadFile(layout.EventsPath())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(eventsData), "\n"), "\n")
	assert.Len(t, lines, len(roster.Personas()))
}

func TestRunPipeline_GenerationDisabled(t *testing.T) {
	server := researchServer(t)
	opts := testRunOptions(t, t.TempDir(), server)
	opts.GenerateImages = false

	require.NoError(t, RunPipeline(context.Background(), opts))

	layout := persist.Layout{DayDir: opts.DayDir, ResearchDir: opts.ResearchDir, Date: opts.Date}

	var manifest types.ArtifactManifest
	data, err := os.ReadFile(layout.ManifestPath("a1-maximalist-poet"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, types.StatusGenerationDisabled, manifest.Status)

	_, err = os.Stat(layout.Abs(layout.FinalRelPath("a1-maximalist-poet")))
	assert.True(t, os.IsNotExist(err))
}

func TestRunPipeline_RejectsInvalidDate(t *testing.T) {
	err := RunPipeline(context.Background(), RunOptions{Date: "not-a-date"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid run date")
}
