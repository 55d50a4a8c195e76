package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
)

// pageMetadata holds metadata recovered from a page.
type pageMetadata struct {
	title     string
	byline    string
	published time.Time
}

// titleMetaSelectors are tried in order before falling back to h1/title.
var titleMetaSelectors = []string{
	`meta[property="og:title"]`,
	`meta[name="twitter:title"]`,
}

// bylineMetaSelectors are tried in order before heuristic byline patterns.
var bylineMetaSelectors = []string{
	`meta[name="author"]`,
	`meta[property="article:author"]`,
}

// dateMetaSelectors are tried in order before heuristic date patterns.
var dateMetaSelectors = []string{
	`meta[property="article:published_time"]`,
	`meta[name="date"]`,
	`meta[name="dc.date"]`,
}

// extractMetadata recovers title, byline, and publication date. Structured
// metadata tags win; the first h1 or the title tag comes next; heuristic
// byline/date patterns near the top of the content root are the last resort.
func extractMetadata(doc *goquery.Document, contentRoot *goquery.Selection) pageMetadata {
	var meta pageMetadata

	for _, sel := range titleMetaSelectors {
		if v := metaContent(doc, sel); v != "" {
			meta.title = v
			break
		}
	}
	if meta.title == "" {
		meta.title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if meta.title == "" {
		meta.title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	for _, sel := range bylineMetaSelectors {
		if v := metaContent(doc, sel); v != "" {
			meta.byline = v
			break
		}
	}
	if meta.byline == "" {
		meta.byline = heuristicByline(contentRoot)
	}

	for _, sel := range dateMetaSelectors {
		if t, ok := parseDate(metaContent(doc, sel)); ok {
			meta.published = t
			break
		}
	}
	if meta.published.IsZero() {
		if t, ok := heuristicDate(doc, contentRoot); ok {
			meta.published = t
		}
	}

	return meta
}

// metaContent returns the content attribute of the first element matching
// the selector.
func metaContent(doc *goquery.Document, selector string) string {
	v, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(v)
}

// heuristicByline looks for author attribution near the top of the content
// root: rel=author links or elements with byline/author class names.
func heuristicByline(root *goquery.Selection) string {
	for _, sel := range []string{`[rel="author"]`, ".byline", ".author", `[itemprop="author"]`} {
		if v := strings.TrimSpace(root.Find(sel).First().Text()); v != "" {
			return strings.TrimPrefix(strings.TrimPrefix(v, "By "), "by ")
		}
	}
	return ""
}

// heuristicDate looks for a parseable date in time elements near the top of
// the page.
func heuristicDate(doc *goquery.Document, root *goquery.Selection) (time.Time, bool) {
	var found time.Time
	var ok bool

	scan := func(_ int, sel *goquery.Selection) bool {
		if v, exists := sel.Attr("datetime"); exists {
			if t, parsed := parseDate(v); parsed {
				found, ok = t, true
				return false
			}
		}
		if t, parsed := parseDate(strings.TrimSpace(sel.Text())); parsed {
			found, ok = t, true
			return false
		}
		return true
	}

	root.Find("time").EachWithBreak(scan)
	if !ok {
		doc.Find("time").EachWithBreak(scan)
	}
	return found, ok
}

// parseDate parses a date string in any common format.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
