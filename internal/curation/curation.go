// Package curation computes rubric scores, verdicts, and the ranked
// shortlist for a run. Scoring is an explicitly labeled placeholder: a
// fixed deterministic formula over a small seed, not a judged evaluation.
package curation

import (
	"math"
	"sort"

	"github.com/jeffschram/iamfranz/internal/types"
)

// CandidateThreshold is the minimum rubric total for a candidate verdict.
const CandidateThreshold = 70

// scoreNotes annotates every scorecard produced by the rubric.
const scoreNotes = "Autonomous run score from rubric."

// PseudoScore derives the six rubric dimensions from a seed
// (artist roster position + day-of-month). Identical seeds always yield
// identical scores.
func PseudoScore(seed int) types.RubricScores {
	return types.RubricScores{
		AutonomyDepth:             20 + seed%8,
		CreativeCoherence:         14 + (seed+1)%6,
		NoveltyRisk:               13 + (seed+2)%7,
		ResearchToOutputIntegrity: 10 + (seed+3)%5,
		ReflectionQuality:         8 + seed%3,
		ExhibitReadiness:          3 + (seed+4)%3,
	}
}

// VerdictFor maps a rubric total to its curation verdict.
func VerdictFor(total int) types.Verdict {
	if total >= CandidateThreshold {
		return types.VerdictCandidate
	}
	return types.VerdictHold
}

// BuildScoreCard scores one artist's day. Verdict is candidate iff the
// rubric total meets CandidateThreshold.
func BuildScoreCard(date, artistID string, seed int) types.ScoreCard {
	scores := PseudoScore(seed)
	total := scores.Total()

	return types.ScoreCard{
		Date:     date,
		ArtistID: artistID,
		Scores:   scores,
		Total:    total,
		Verdict:  VerdictFor(total),
		Notes:    scoreNotes,
	}
}

// SelfCritique derives the per-artist self-assessment from roster position.
func SelfCritique(rosterIndex int) types.SelfCritique {
	return types.SelfCritique{
		Coherence:       7 + rosterIndex%3,
		Novelty:         7 + (rosterIndex+1)%3,
		EmotionalImpact: 6 + (rosterIndex+2)%4,
		Notes:           "Selected version with strongest visual thesis and least derivative structure.",
	}
}

// BuildShortlist collects candidate-verdict entries ordered by total score
// descending. The sort is stable so ties keep roster order.
func BuildShortlist(date, runID string, entries []types.ShortlistEntry) types.Shortlist {
	items := make([]types.ShortlistEntry, len(entries))
	copy(items, entries)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Total > items[j].Total
	})

	return types.Shortlist{
		Date:  date,
		RunID: runID,
		Count: len(items),
		Items: items,
	}
}

// BuildManifest aggregates run-level metrics. The average score is rounded
// to one decimal place.
func BuildManifest(date, runID string, cards []types.ScoreCard, candidates, realImages, fallbackImages int) types.RunManifest {
	avg := 0.0
	if len(cards) > 0 {
		sum := 0
		for _, c := range cards {
			sum += c.Total
		}
		avg = math.Round(float64(sum)/float64(len(cards))*10) / 10
	}

	return types.RunManifest{
		Date:             date,
		RunID:            runID,
		ArtistsProcessed: len(cards),
		AverageScore:     avg,
		Candidates:       candidates,
		ImagesGenerated:  realImages,
		FallbackImages:   fallbackImages,
	}
}
