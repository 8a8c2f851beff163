package frontier

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks_ResolvesRelativeAndDeduplicates(t *testing.T) {
	html := `<html><body>
		<a href="/editorial/piece">One</a>
		<a href="/editorial/piece">Duplicate</a>
		<a href="https://other.example.org/essay">Offsite</a>
		<a href="#section">Anchor</a>
		<a href="mailto:studio@example.com">Mail</a>
		<a href="javascript:void(0)">JS</a>
		<a href="ftp://example.com/file">FTP</a>
	</body></html>`

	links := ExtractLinks(html, "https://example.com/editorial/")
	require.Len(t, links, 2)
	assert.Equal(t, "https://example.com/editorial/piece", links[0])
	assert.Equal(t, "https://other.example.org/essay", links[1])
}

func TestExtractLinks_CapsAtMaxLinks(t *testing.T) {
	var b strings.Builder
	for i := 0; i < MaxLinks+10; i++ {
		fmt.Fprintf(&b, `<a href="/page-%d">p</a>`, i)
	}

	links := ExtractLinks(b.String(), "https://example.com/")
	assert.Len(t, links, MaxLinks)
}

func TestFilterCandidates_RejectsDenylistedAndAssets(t *testing.T) {
	links := []string{
		"https://example.com/essay",
		"https://www.googletagmanager.com/gtm.js",
		"https://cdn.example.com/bundle",
		"https://fonts.gstatic.com/face",
		"https://example.com/analytics/pixel",
		"https://example.com/logo.png",
		"https://example.com/app.js",
		"http://localhost/dev",
	}

	kept := FilterCandidates(links)
	assert.Equal(t, []string{"https://example.com/essay"}, kept)
}

func TestFilterCandidates_Idempotent(t *testing.T) {
	links := []string{
		"https://example.com/a",
		"https://cdn.example.com/b",
		"https://example.com/c.css",
	}

	once := FilterCandidates(links)
	twice := FilterCandidates(once)
	assert.Equal(t, once, twice)
}

func TestChooseNext_PrefersSameHost(t *testing.T) {
	links := []string{
		"https://other.example.org/first",
		"https://example.com/second",
	}

	next := ChooseNext("https://example.com/current", links)
	assert.Equal(t, "https://example.com/second", next)
}

func TestChooseNext_FallsBackToOffsite(t *testing.T) {
	links := []string{"https://other.example.org/essay"}

	next := ChooseNext("https://example.com/current", links)
	assert.Equal(t, "https://other.example.org/essay", next)
}

func TestChooseNext_StallsInPlaceWhenNoCandidates(t *testing.T) {
	// Links exist but every one is filtered out, so the crawl stays put.
	links := []string{"https://cdn.example.com/bundle.js"}

	next := ChooseNext("https://example.com/current", links)
	assert.Equal(t, "https://example.com/current", next)
}

func TestChooseNext_EmptyLinks(t *testing.T) {
	assert.Equal(t, "", ChooseNext("https://example.com/current", nil))
}
