package persist

import (
	"encoding/json"
	"log"
	"os"

	"github.com/jeffschram/iamfranz/internal/schemas"
	"github.com/jeffschram/iamfranz/internal/types"
)

// LoadCrawlState reads the cross-run crawl-state document. A missing,
// unparsable, or schema-invalid file degrades to empty state: the run then
// starts every artist from a seed node, mirroring a first run. Corrupt
// state is never fatal.
func LoadCrawlState(path string) *types.CrawlStateFile {
	empty := &types.CrawlStateFile{ByArtist: map[string]types.CrawlState{}}

	data, err := os.ReadFile(path)
	if err != nil {
		return empty
	}

	if err := schemas.Validate(schemas.CrawlStateSchema, data); err != nil {
		log.Printf("Warning: ignoring invalid crawl state %s: %v", path, err)
		return empty
	}

	var state types.CrawlStateFile
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("Warning: ignoring unreadable crawl state %s: %v", path, err)
		return empty
	}
	if state.ByArtist == nil {
		state.ByArtist = map[string]types.CrawlState{}
	}
	return &state
}

// SaveCrawlState writes the merged crawl-state document back. This is the
// only read-modify-write in the system; entries for artists that produced
// no research result this run must already be preserved in state.
func SaveCrawlState(path string, state *types.CrawlStateFile) error {
	return WriteJSON(path, state)
}
