package research

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/jeffschram/iamfranz/internal/types"
)

// defaultSeeds are the built-in research starting points used for artists
// with no persisted crawl state.
var defaultSeeds = []types.SeedNode{
	{Label: "rhizome-editorial", URL: "https://rhizome.org/editorial/"},
	{Label: "artsy-editorial", URL: "https://www.artsy.net/articles"},
	{Label: "creative-applications", URL: "https://www.creativeapplications.net/"},
	{Label: "eflux-journal", URL: "https://www.e-flux.com/journal/"},
	{Label: "hyperallergic", URL: "https://hyperallergic.com/"},
}

type seedFile struct {
	Nodes []types.SeedNode `json:"nodes"`
}

// Seeds returns the seed node list: the first *_seed.json found in the
// research directory, or the built-in list when none is present or the
// file is unreadable.
func Seeds(researchDir string) []types.SeedNode {
	matches, err := filepath.Glob(filepath.Join(researchDir, "*_seed.json"))
	if err != nil || len(matches) == 0 {
		return defaultSeeds
	}
	sort.Strings(matches)

	data, err := os.ReadFile(matches[0])
	if err != nil {
		return defaultSeeds
	}

	var sf seedFile
	if err := json.Unmarshal(data, &sf); err != nil || len(sf.Nodes) == 0 {
		return defaultSeeds
	}
	return sf.Nodes
}

// PickSeed deterministically selects a seed node for an artist, rotating
// through the list by roster position and day-of-month.
func PickSeed(seeds []types.SeedNode, artistIndex, dayOfMonth int) *types.SeedNode {
	if len(seeds) == 0 {
		return nil
	}
	node := seeds[(artistIndex+dayOfMonth)%len(seeds)]
	return &node
}
