package research

import (
	"fmt"
	"regexp"
)

// MaxTakeaways bounds the takeaway sentences kept per page.
const MaxTakeaways = 3

// Sentence length bounds (exclusive) for takeaway candidates.
const (
	minSentenceLen = 60
	maxSentenceLen = 220
)

// domainKeywordRe marks sentences on-topic for art practice research.
var domainKeywordRe = regexp.MustCompile(`(?i)art|artist|digital|exhibit|gallery|collection|practice|creative|algorithm|code`)

// Takeaways extracts up to MaxTakeaways sentences from sanitized page text.
// Candidates are sentences with length strictly between the bounds; those
// matching a domain keyword are preferred, falling back to the unfiltered
// candidate set, then to two fixed generic takeaways naming the artist.
func Takeaways(text, artistID string) []string {
	var candidates []string
	for _, s := range splitSentences(text) {
		if len(s) > minSentenceLen && len(s) < maxSentenceLen {
			candidates = append(candidates, s)
		}
	}

	var keyworded []string
	for _, s := range candidates {
		if domainKeywordRe.MatchString(s) {
			keyworded = append(keyworded, s)
		}
	}

	picked := keyworded
	if len(picked) == 0 {
		picked = candidates
	}
	if len(picked) > MaxTakeaways {
		picked = picked[:MaxTakeaways]
	}

	if len(picked) == 0 {
		return genericTakeaways(artistID)
	}
	return picked
}

func genericTakeaways(artistID string) []string {
	return []string{
		fmt.Sprintf("%s found minimal structured text; focus on visual framing and contextual cues from the page.", artistID),
		"Use one compositional principle and one conceptual framing idea from this source.",
	}
}

// splitSentences splits text on ./!/? boundaries followed by whitespace,
// keeping the terminator with its sentence. Sanitized input has collapsed
// whitespace, so a single space marks the boundary.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c == '.' || c == '!' || c == '?') && i+1 < len(text) && text[i+1] == ' ' {
			sentences = append(sentences, text[start:i+1])
			start = i + 2
			i++
		}
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}
