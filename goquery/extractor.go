// Package goquery provides the density-scoring content extractor and raw
// page link harvesting, built on CSS-selector HTML traversal.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
)

// Config holds the tunable thresholds of the density heuristic. The
// heuristic is inherently fuzzy; these are configuration, not constants, so
// they can be calibrated against a corpus of known pages.
type Config struct {
	// MinScore is the minimum density score a container must reach to be
	// accepted as the content root.
	MinScore float64

	// MaxLinkDensity disqualifies containers whose text is mostly link
	// text (likely navigation, not content).
	MaxLinkDensity float64

	// BoilerplatePenalty multiplies the score of containers inside known
	// boilerplate tags.
	BoilerplatePenalty float64

	// MinTextLength is the minimum visible text length for a container
	// to be considered at all.
	MinTextLength int
}

// DefaultConfig returns thresholds calibrated for typical article pages.
func DefaultConfig() Config {
	return Config{
		MinScore:           8,
		MaxLinkDensity:     0.5,
		BoilerplatePenalty: 0.1,
		MinTextLength:      140,
	}
}

// boilerplateTags are penalized both as candidates and as ancestors.
var boilerplateTags = map[string]bool{
	"nav":    true,
	"footer": true,
	"header": true,
	"aside":  true,
	"form":   true,
}

// candidateSelector lists elements considered as potential content roots.
const candidateSelector = "article, main, section, div, td, body"

// Ensure Extractor implements notes.Extractor at compile time.
var _ notes.Extractor = (*Extractor)(nil)

// Extractor recovers the primary content container of a page by scoring
// candidates on their visible-text to tag-count ratio.
type Extractor struct {
	config Config
}

// NewExtractor creates an Extractor with the given thresholds.
func NewExtractor(config Config) *Extractor {
	return &Extractor{config: config}
}

// Extract parses raw HTML, scores candidate containers, and returns the
// highest-scoring one along with page metadata. Fails with EEXTRACTION when
// nothing on the page scores above the minimum (the page is not prose-like).
func (e *Extractor) Extract(rawHTML string) (*notes.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, notes.Errorf(notes.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, notes.Errorf(notes.EINVALID, "failed to parse HTML: %v", err)
	}

	// Non-content nodes never contribute to text measurements.
	doc.Find("script, style, noscript, template").Remove()

	best, bestScore := e.selectContentRoot(doc)
	if best == nil || bestScore < e.config.MinScore {
		return nil, notes.Errorf(notes.EEXTRACTION, "no content-like container found")
	}

	contentHTML, err := goquery.OuterHtml(best)
	if err != nil {
		return nil, notes.Errorf(notes.EINTERNAL, "failed to render content root: %v", err)
	}

	meta := extractMetadata(doc, best)

	return &notes.ExtractResult{
		Title:       meta.title,
		Byline:      meta.byline,
		PublishedAt: meta.published,
		ContentHTML: contentHTML,
	}, nil
}

// selectContentRoot scores every candidate container and returns the winner.
func (e *Extractor) selectContentRoot(doc *goquery.Document) (*goquery.Selection, float64) {
	var (
		best      *goquery.Selection
		bestScore float64
	)

	doc.Find(candidateSelector).Each(func(_ int, sel *goquery.Selection) {
		score, ok := e.score(sel)
		if !ok {
			return
		}
		if best == nil || score > bestScore {
			best = sel
			bestScore = score
		}
	})

	return best, bestScore
}

// score computes the density score of a candidate: visible text length per
// tag, discounted for link-heavy or boilerplate-nested containers.
// Returns ok=false for containers disqualified outright.
func (e *Extractor) score(sel *goquery.Selection) (float64, bool) {
	text := strings.TrimSpace(sel.Text())
	textLen := len(text)
	if textLen < e.config.MinTextLength {
		return 0, false
	}

	linkLen := 0
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		linkLen += len(strings.TrimSpace(a.Text()))
	})
	if float64(linkLen)/float64(textLen) > e.config.MaxLinkDensity {
		return 0, false
	}

	tags := sel.Find("*").Length() + 1
	score := float64(textLen) / float64(tags)

	if insideBoilerplate(sel) {
		score *= e.config.BoilerplatePenalty
	}

	return score, true
}

// insideBoilerplate reports whether the selection is, or sits inside, a
// known boilerplate element.
func insideBoilerplate(sel *goquery.Selection) bool {
	for n := sel; n.Length() > 0; n = n.Parent() {
		if boilerplateTags[goquery.NodeName(n)] {
			return true
		}
	}
	return false
}
