// Package sanitize strips fetched page markup down to plain text and a title.
// It has no error conditions: malformed markup degrades gracefully to
// whatever text remains after stripping.
package sanitize

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// MaxTextLength caps sanitized page text to bound downstream processing.
const MaxTextLength = 30000

// UntitledPage is the title reported for pages without a <title> element.
const UntitledPage = "Untitled page"

var whitespaceRe = regexp.MustCompile(`\s+`)

// Title extracts the <title> text from raw markup, collapsing internal
// whitespace. Pages without a usable title yield UntitledPage.
func Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return UntitledPage
	}

	title := collapseWhitespace(doc.Find("title").First().Text())
	if title == "" {
		return UntitledPage
	}
	return title
}

// Text strips script/style blocks and all remaining tags from raw markup,
// collapses whitespace, and caps the result at MaxTextLength.
func Text(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return cap30k(collapseWhitespace(html))
	}

	doc.Find("script, style, noscript").Remove()

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		// Fragments without a body element still carry text nodes.
		text = doc.Text()
	}

	return cap30k(collapseWhitespace(text))
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

func cap30k(s string) string {
	if len(s) <= MaxTextLength {
		return s
	}
	// Back off to a rune boundary so the cap never leaves invalid UTF-8.
	cut := MaxTextLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
