package persist

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffschram/iamfranz/internal/types"
)

func testLayout(t *testing.T) Layout {
	t.Helper()
	root := t.TempDir()
	return Layout{
		DayDir:      filepath.Join(root, "runs", "2026-08-29_day1"),
		ResearchDir: filepath.Join(root, "runs", "research_tree"),
		Date:        "2026-08-29",
	}
}

func TestInitTree_CreatesAllDirectories(t *testing.T) {
	layout := testLayout(t)
	require.NoError(t, layout.InitTree(context.Background()))

	for _, dir := range []string{
		layout.ResearchDir,
		layout.CuratorScoresDir(),
		layout.CuratorSummariesDir(),
		layout.CuratorShortlistsDir(),
		layout.EventsDir(),
		layout.MetricsDir(),
		layout.StateDir(),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir())
	}
}

func TestInitTree_Idempotent(t *testing.T) {
	layout := testLayout(t)
	require.NoError(t, layout.InitTree(context.Background()))
	require.NoError(t, layout.InitTree(context.Background()))
}

func TestInitArtistDirs(t *testing.T) {
	layout := testLayout(t)
	require.NoError(t, layout.InitArtistDirs(context.Background(), "a1-maximalist-poet"))

	for _, dir := range []string{
		layout.InputsDir("a1-maximalist-poet"),
		layout.OutputsDir("a1-maximalist-poet"),
		layout.NotesDir("a1-maximalist-poet"),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir())
	}
}

func TestLayout_ArtifactPaths(t *testing.T) {
	layout := Layout{DayDir: "runs/2026-08-29_day1", ResearchDir: "runs/research_tree", Date: "2026-08-29"}

	assert.Equal(t,
		filepath.Join("artists", "a1", "outputs", "2026-08-29_a1_iter2.png"),
		layout.IterationRelPath("a1", 2))
	assert.Equal(t,
		filepath.Join("artists", "a1", "outputs", "2026-08-29_a1_final.png"),
		layout.FinalRelPath("a1"))
	assert.Equal(t,
		filepath.Join("runs", "2026-08-29_day1", "artists", "a1", "inputs", "2026-08-29_record.json"),
		layout.RecordPath("a1"))
	assert.Equal(t,
		filepath.Join("runs", "research_tree", "state.json"),
		layout.StateFilePath())
	assert.Equal(t,
		filepath.Join("runs", "research_tree", "2026-08-29_expansion.json"),
		layout.ExpansionPath())
}

func TestWriteJSON_IndentedWithTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, WriteJSON(path, map[string]string{"key": "value"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"key\": \"value\"\n}\n", string(data))
}

func TestAppendEvent_OneLinePerEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.ndjson")

	require.NoError(t, AppendEvent(path, types.Event{Type: types.EventArtistDayCompleted, ArtistID: "a1", Total: 75}))
	require.NoError(t, AppendEvent(path, types.Event{Type: types.EventArtistDayCompleted, ArtistID: "a2", Total: 81}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"a1"`)
	assert.Contains(t, lines[1], `"a2"`)
}

func TestResetEventLog_RemovesExistingLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.ndjson")
	require.NoError(t, AppendEvent(path, types.Event{ArtistID: "a1"}))

	require.NoError(t, ResetEventLog(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestResetEventLog_MissingFileIsFine(t *testing.T) {
	assert.NoError(t, ResetEventLog(filepath.Join(t.TempDir(), "absent.ndjson")))
}

func TestWriteScoresCSV_FixedColumnOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.csv")
	cards := []types.ScoreCard{
		{
			ArtistID: "a1-maximalist-poet",
			Scores: types.RubricScores{
				AutonomyDepth:             20,
				CreativeCoherence:         15,
				NoveltyRisk:               15,
				ResearchToOutputIntegrity: 13,
				ReflectionQuality:         8,
				ExhibitReadiness:          4,
			},
			Total: 75,
		},
	}

	require.NoError(t, WriteScoresCSV(path, cards))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"artistId", "total", "autonomyDepth", "creativeCoherence", "noveltyRisk",
		"researchToOutputIntegrity", "reflectionQuality", "exhibitReadiness",
	}, rows[0])
	assert.Equal(t, []string{"a1-maximalist-poet", "75", "20", "15", "15", "13", "8", "4"}, rows[1])
}

func TestCrawlState_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	state := &types.CrawlStateFile{ByArtist: map[string]types.CrawlState{
		"a1-maximalist-poet": {
			CurrentURL:  "https://example.com/a",
			NextURL:     "https://example.com/b",
			LastTitle:   "Editorial",
			LastRunDate: "2026-08-29",
		},
	}}

	require.NoError(t, SaveCrawlState(path, state))
	loaded := LoadCrawlState(path)
	assert.Equal(t, state.ByArtist, loaded.ByArtist)
}

func TestLoadCrawlState_MissingFile(t *testing.T) {
	loaded := LoadCrawlState(filepath.Join(t.TempDir(), "absent.json"))
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.ByArtist)
}

func TestLoadCrawlState_CorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	loaded := LoadCrawlState(path)
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.ByArtist)
}

func TestLoadCrawlState_SchemaInvalidDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"byArtist":{"a1":{"currentUrl":42}}}`), 0o644))

	loaded := LoadCrawlState(path)
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.ByArtist)
}

func TestProcessNote_WithResearch(t *testing.T) {
	record := types.ArtistDayRecord{
		Date:        "2026-08-29",
		ArtistID:    "a1-maximalist-poet",
		Intent:      "Explore collage tension.",
		Constraints: []string{"high color tension"},
		ResearchTrail: []types.ResearchTrailEntry{{
			URL:       "https://example.com/editorial",
			Title:     "Editorial Archive",
			Takeaways: []string{"borrow the grid"},
			NextURL:   "https://example.com/next",
		}},
		Method: "Four iterations.",
		FinalOutput: types.FinalOutput{
			Path:      "artists/a1/outputs/final.png",
			Rationale: "Strongest thesis.",
		},
	}

	note := ProcessNote(record)
	assert.Contains(t, note, "# 2026-08-29 — a1-maximalist-poet daily process note")
	assert.Contains(t, note, "https://example.com/editorial")
	assert.Contains(t, note, "borrow the grid")
	assert.Contains(t, note, "https://example.com/next")
	assert.Contains(t, note, "Strongest thesis.")
}

func TestProcessNote_WithoutResearch(t *testing.T) {
	record := types.ArtistDayRecord{
		Date:        "2026-08-29",
		ArtistID:    "a2-systems-minimalist",
		Constraints: []string{"max 3 shapes"},
	}

	note := ProcessNote(record)
	assert.Contains(t, note, "- URL: n/a")
	assert.Contains(t, note, "- Next URL: n/a")
}

func TestRunSummary_ListsCandidates(t *testing.T) {
	manifest := types.RunManifest{
		Date:             "2026-08-29",
		RunID:            "run-x",
		ArtistsProcessed: 3,
		AverageScore:     75.7,
		Candidates:       2,
		ImagesGenerated:  10,
		FallbackImages:   5,
	}
	shortlist := types.Shortlist{Items: []types.ShortlistEntry{
		{ArtistID: "a1", FinalOutput: "artists/a1/outputs/final.png", Total: 80},
	}}

	summary := RunSummary(manifest, shortlist, "gpt-image-1")
	assert.Contains(t, summary, "# 2026-08-29 Autonomous Pilot Summary")
	assert.Contains(t, summary, "- Average total score: 75.7")
	assert.Contains(t, summary, "- a1: artists/a1/outputs/final.png (score 80)")
	assert.Contains(t, summary, "gpt-image-1")
}

func TestRunSummary_NoCandidates(t *testing.T) {
	summary := RunSummary(types.RunManifest{Date: "2026-08-29"}, types.Shortlist{}, "gpt-image-1")
	assert.Contains(t, summary, "- None")
}
