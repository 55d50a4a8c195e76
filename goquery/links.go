package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
)

// ExtractLinks harvests absolute http(s) links from raw HTML, resolving
// relative hrefs against baseURL. Links are deduplicated, keeping document
// order of first occurrence.
func ExtractLinks(rawHTML string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, notes.Errorf(notes.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, notes.Errorf(notes.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || isNonHTTPLink(href) {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}
		resolved.Fragment = ""

		s := resolved.String()
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		links = append(links, s)
	})

	return links, nil
}

// isNonHTTPLink reports whether an href uses a scheme that can never
// resolve to a fetchable page.
func isNonHTTPLink(href string) bool {
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:", "#"} {
		if strings.HasPrefix(href, prefix) {
			return true
		}
	}
	return false
}
