// Package research performs one unattended fetch-and-extract cycle per
// artist per run, producing a structured ResearchResult.
package research

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffschram/iamfranz/internal/fetch"
	"github.com/jeffschram/iamfranz/internal/frontier"
	"github.com/jeffschram/iamfranz/internal/sanitize"
	"github.com/jeffschram/iamfranz/internal/types"
)

// Options configures a research fetch.
type Options struct {
	Fetch      *fetch.Options
	UseBrowser bool
	Verbose    bool
}

// Fetch runs one research cycle against the URL. Failures are terminal for
// the day and encoded in the result (OK=false, diagnostic takeaway, no
// links, no next URL); this function never returns an error.
func Fetch(ctx context.Context, url, artistID string, opts Options) *types.ResearchResult {
	result, err := fetch.URL(ctx, url, opts.Fetch)
	if err != nil {
		if result != nil && result.StatusCode != 0 {
			return &types.ResearchResult{
				OK:        false,
				URL:       url,
				Title:     "Fetch failed",
				Takeaways: []string{fmt.Sprintf("HTTP %d while fetching %s", result.StatusCode, url)},
			}
		}
		return &types.ResearchResult{
			OK:        false,
			URL:       url,
			Title:     "Fetch exception",
			Takeaways: []string{err.Error()},
		}
	}

	html := result.HTML
	text := sanitize.Text(html)

	// JavaScript-rendered shells produce nearly empty sanitized text; one
	// browser render attempt may recover real content. A render failure is
	// not a research failure.
	if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		if rendered, rerr := fetch.WithBrowser(ctx, url, 30*time.Second, opts.Verbose); rerr == nil {
			html = rendered
			text = sanitize.Text(html)
		}
	}

	links := frontier.ExtractLinks(html, url)

	return &types.ResearchResult{
		OK:              true,
		URL:             url,
		Title:           sanitize.Title(html),
		Takeaways:       Takeaways(text, artistID),
		DiscoveredLinks: links,
		NextURL:         frontier.ChooseNext(url, links),
	}
}
