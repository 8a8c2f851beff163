package types

// Inspiration is one source/takeaway pair feeding an artist's day.
type Inspiration struct {
	Source   string `json:"source"`
	Takeaway string `json:"takeaway"`
}

// IterationRecord is one generation iteration inside an artist's day.
type IterationRecord struct {
	ID          string      `json:"id"`
	Iteration   int         `json:"iteration"`
	Summary     string      `json:"summary"`
	OutputPath  string      `json:"outputPath"`
	ImageResult ImageResult `json:"imageResult"`
}

// SelfCritique holds the deterministic self-assessment for an artist's day.
// The values come from a fixed formula seeded by roster position; this is an
// explicitly labeled placeholder, not a judged evaluation.
type SelfCritique struct {
	Coherence       int    `json:"coherence"`
	Novelty         int    `json:"novelty"`
	EmotionalImpact int    `json:"emotionalImpact"`
	Notes           string `json:"notes"`
}

// FinalOutput is the finalist selection for an artist's day.
type FinalOutput struct {
	Path        string      `json:"path"`
	Rationale   string      `json:"rationale"`
	ImageResult ImageResult `json:"imageResult"`
}

// ArtistDayRecord is the full per-artist result for one run.
// Created once per artist per run and never mutated after being written.
type ArtistDayRecord struct {
	Date          string               `json:"date"`
	ArtistID      string               `json:"artistId"`
	Intent        string               `json:"intent"`
	Constraints   []string             `json:"constraints"`
	Inspiration   []Inspiration        `json:"inspiration"`
	ResearchTrail []ResearchTrailEntry `json:"researchTrail"`
	Method        string               `json:"method"`
	Iterations    []IterationRecord    `json:"iterations"`
	SelfCritique  SelfCritique         `json:"selfCritique"`
	FinalOutput   FinalOutput          `json:"finalOutput"`
}

// ArtifactManifest lists the artifacts a run was expected to produce for
// one artist, plus generation outcome counts.
type ArtifactManifest struct {
	ArtistID          string   `json:"artistId"`
	Date              string   `json:"date"`
	Status            string   `json:"status"`
	ExpectedArtifacts []string `json:"expectedArtifacts"`
	Model             string   `json:"model"`
	Generation        struct {
		GenerateImages       bool `json:"generateImages"`
		SuccessfulIterations int  `json:"successfulIterations"`
	} `json:"generation"`
}

// Manifest status values.
const (
	StatusArtifactsGenerated = "artifacts-generated"
	StatusGenerationDisabled = "generation-disabled"
)
