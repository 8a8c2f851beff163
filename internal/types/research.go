package types

// ResearchResult is the outcome of one fetch-and-extract cycle.
// A failed fetch is a valid result (OK=false), not an error: the research
// trail for the day is simply empty and the pipeline continues.
type ResearchResult struct {
	OK              bool     `json:"ok"`
	URL             string   `json:"url"`
	Title           string   `json:"title"`
	Takeaways       []string `json:"takeaways"`
	DiscoveredLinks []string `json:"discoveredLinks"`

	// NextURL is the chosen crawl target for the following run.
	// Empty means no next URL was selected (failed fetch).
	NextURL string `json:"nextUrl,omitempty"`
}

// ResearchTrailEntry is a research result folded into an ArtistDayRecord.
type ResearchTrailEntry struct {
	Date           string   `json:"date"`
	SourceNode     string   `json:"sourceNode"`
	URL            string   `json:"url"`
	Title          string   `json:"title"`
	Takeaways      []string `json:"takeaways"`
	Borrow         string   `json:"borrow"`
	Reject         string   `json:"reject"`
	InfluenceScore int      `json:"influenceScore"`
	NextURL        string   `json:"nextUrl,omitempty"`
}

// CrawlState is the per-artist crawl position persisted across runs.
// Invariant: NextURL is always either a previously discovered link or equal
// to CurrentURL; it never references an untried URL.
type CrawlState struct {
	CurrentURL  string `json:"currentUrl"`
	NextURL     string `json:"nextUrl"`
	LastTitle   string `json:"lastTitle"`
	LastRunDate string `json:"lastRunDate"`
}

// CrawlStateFile is the cross-run state document, keyed by artist id.
// This is the only durable, mutable state in the system: it is loaded at
// run start and merged (never replaced wholesale) at run end.
type CrawlStateFile struct {
	ByArtist map[string]CrawlState `json:"byArtist"`
}

// SeedNode is a starting point for an artist with no persisted crawl state.
type SeedNode struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}
