package types

// RubricScores holds the six named rubric dimensions for one artist's run.
type RubricScores struct {
	AutonomyDepth             int `json:"autonomyDepth"`
	CreativeCoherence         int `json:"creativeCoherence"`
	NoveltyRisk               int `json:"noveltyRisk"`
	ResearchToOutputIntegrity int `json:"researchToOutputIntegrity"`
	ReflectionQuality         int `json:"reflectionQuality"`
	ExhibitReadiness          int `json:"exhibitReadiness"`
}

// Total sums the six rubric dimensions.
func (s RubricScores) Total() int {
	return s.AutonomyDepth + s.CreativeCoherence + s.NoveltyRisk +
		s.ResearchToOutputIntegrity + s.ReflectionQuality + s.ExhibitReadiness
}

// Verdict is the binary curation outcome derived from the score threshold.
type Verdict string

// Curation verdicts.
const (
	VerdictCandidate Verdict = "candidate"
	VerdictHold      Verdict = "hold"
)

// ScoreCard is the per-artist rubric result for one run.
type ScoreCard struct {
	Date     string       `json:"date"`
	ArtistID string       `json:"artistId"`
	Scores   RubricScores `json:"scores"`
	Total    int          `json:"total"`
	Verdict  Verdict      `json:"verdict"`
	Notes    string       `json:"notes"`
}

// ShortlistEntry is a candidate artist in the ranked shortlist.
type ShortlistEntry struct {
	ArtistID    string `json:"artistId"`
	FinalOutput string `json:"finalOutput"`
	Total       int    `json:"total"`
}

// Shortlist is the ranked candidate list for one run, ordered by total
// score descending with ties keeping roster order.
type Shortlist struct {
	Date  string           `json:"date"`
	RunID string           `json:"runId"`
	Count int              `json:"count"`
	Items []ShortlistEntry `json:"items"`
}

// RunManifest holds the write-once aggregate metrics for one run.
type RunManifest struct {
	Date             string  `json:"date"`
	RunID            string  `json:"runId"`
	ArtistsProcessed int     `json:"artistsProcessed"`
	AverageScore     float64 `json:"averageScore"`
	Candidates       int     `json:"candidates"`
	ImagesGenerated  int     `json:"imagesGenerated"`
	FallbackImages   int     `json:"fallbackImages"`
}

// Event is one line in the append-only run event log.
type Event struct {
	TS       string  `json:"ts"`
	Type     string  `json:"type"`
	RunID    string  `json:"runId"`
	ArtistID string  `json:"artistId"`
	Total    int     `json:"total"`
	Verdict  Verdict `json:"verdict"`
}

// EventArtistDayCompleted is emitted after each artist finishes its day.
const EventArtistDayCompleted = "artist_day_completed"
