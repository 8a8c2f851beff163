// Package frontier extracts, filters, and ranks outbound links from a
// fetched page to choose the next crawl target.
package frontier

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxLinks caps the number of discovered links kept per page.
const MaxLinks = 20

// blockedPatterns rejects tracking, CDN, font, analytics, and share hosts.
// Each pattern is tested against the hostname and the full URL.
var blockedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)googletagmanager`),
	regexp.MustCompile(`(?i)doubleclick`),
	regexp.MustCompile(`(?i)cdn\.`),
	regexp.MustCompile(`(?i)fonts\.`),
	regexp.MustCompile(`(?i)analytics`),
	regexp.MustCompile(`(?i)facebook\.com/sharer`),
	regexp.MustCompile(`(?i)twitter\.com/intent`),
	regexp.MustCompile(`(?i)googleapis`),
	regexp.MustCompile(`(?i)gstatic`),
	regexp.MustCompile(`(?i)cloudflare`),
	regexp.MustCompile(`(?i)shopifycdn`),
}

// assetExtRe rejects paths ending in static-asset extensions.
var assetExtRe = regexp.MustCompile(`(?i)\.(js|css|svg|png|jpg|jpeg|gif|webp|ico|woff2?|ttf|map)$`)

// ExtractLinks collects every href in the markup, resolves it against the
// base URL, and keeps absolute http(s) URLs, de-duplicated in document
// order and capped at MaxLinks.
func ExtractLinks(html string, baseURL string) []string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if !ok || href == "" || strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") {
			return true
		}

		ref, err := url.Parse(href)
		if err != nil {
			return true
		}

		abs := base.ResolveReference(ref)
		if abs.Scheme != "http" && abs.Scheme != "https" {
			return true
		}

		u := abs.String()
		if !seen[u] {
			seen[u] = true
			links = append(links, u)
		}
		return len(links) < MaxLinks
	})

	return links
}

// FilterCandidates rejects links with non-dotted hostnames, denylisted
// tracking/CDN/analytics hosts, and static-asset paths. It is idempotent:
// re-filtering its own output removes nothing further.
func FilterCandidates(links []string) []string {
	var kept []string
	for _, link := range links {
		if isCandidate(link) {
			kept = append(kept, link)
		}
	}
	return kept
}

func isCandidate(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if !strings.Contains(host, ".") {
		return false
	}
	for _, re := range blockedPatterns {
		if re.MatchString(host) || re.MatchString(link) {
			return false
		}
	}
	return !assetExtRe.MatchString(u.Path)
}

// ChooseNext picks tomorrow's crawl target from the discovered links:
// the first candidate on the current page's host, else the first candidate
// on a different host, else the current URL itself. The frontier therefore
// never empties; a page with no usable links stalls the crawl in place.
func ChooseNext(currentURL string, links []string) string {
	if len(links) == 0 {
		return ""
	}

	currentHost := ""
	if u, err := url.Parse(currentURL); err == nil {
		currentHost = u.Hostname()
	}

	candidates := FilterCandidates(links)

	for _, c := range candidates {
		if u, err := url.Parse(c); err == nil && u.Hostname() == currentHost {
			return c
		}
	}
	for _, c := range candidates {
		if u, err := url.Parse(c); err == nil && u.Hostname() != currentHost {
			return c
		}
	}
	return currentURL
}
