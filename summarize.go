package notes

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultChunkTokens bounds the token budget of a single summarization
// chunk, so grouped section text stays within a downstream model's input
// limit.
const DefaultChunkTokens = 2000

// dedupeOverlap is the word-overlap ratio above which two candidate bullets
// are considered near-duplicates and merged.
const dedupeOverlap = 0.6

// maxLeadSentence caps the length of the span lifted from a section.
const maxLeadSentence = 240

// candidate is a bullet candidate before ranking and deduplication.
type candidate struct {
	text     string
	depth    int
	position int
	cites    []Citation
}

// Summarize reduces a page's sections to a bullet summary at the requested
// tier. Sections are grouped into token-bounded chunks, each section yields
// a candidate bullet from its lead sentence, near-duplicates are merged
// keeping the more specific phrasing, and candidates are ranked by depth
// (shallower first) then position until the tier's target is reached.
//
// Every retained bullet cites at least one section resolvable in the page's
// index; a bullet whose citations do not resolve is dropped. Pages with no
// body-bearing sections fail with EEMPTYCONTENT.
func Summarize(ctx context.Context, page *PageNotes, tier LengthTier, counter TokenCounter) (*Summary, error) {
	idx := page.Sections
	if idx.Len() == 0 {
		return nil, Errorf(EEMPTYCONTENT, "no sections to summarize: %s", page.Document.URL)
	}

	var withBody []*Section
	for _, s := range idx.Sections() {
		if s.Body != "" {
			withBody = append(withBody, s)
		}
	}
	if len(withBody) == 0 {
		return nil, Errorf(EEMPTYCONTENT, "page has no body text under any section: %s", page.Document.URL)
	}

	var candidates []candidate
	for _, chunk := range chunkSections(ctx, withBody, counter, DefaultChunkTokens) {
		candidates = append(candidates, reduceChunk(chunk)...)
	}

	candidates = mergeNearDuplicates(candidates)

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].depth != candidates[j].depth {
			return candidates[i].depth < candidates[j].depth
		}
		return candidates[i].position < candidates[j].position
	})

	target := tier.TargetBullets()
	bullets := make([]Bullet, 0, target)
	for _, c := range candidates {
		if len(bullets) >= target {
			break
		}
		cites := resolvableCitations(c.cites, idx)
		if len(cites) == 0 {
			continue
		}
		bullets = append(bullets, Bullet{Text: c.text, Citations: cites})
	}

	return &Summary{
		SourceURL: page.Document.URL,
		Title:     page.Document.Title,
		Tier:      tier,
		Bullets:   bullets,
	}, nil
}

// chunkSections groups sections into runs whose combined token count stays
// within budget. A single oversized section still forms its own chunk.
func chunkSections(ctx context.Context, sections []*Section, counter TokenCounter, budget int) [][]*Section {
	var (
		chunks  [][]*Section
		current []*Section
		used    int
	)

	for _, s := range sections {
		n := countTokens(ctx, counter, s.Body)
		if len(current) > 0 && used+n > budget {
			chunks = append(chunks, current)
			current = nil
			used = 0
		}
		current = append(current, s)
		used += n
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}

// countTokens counts tokens with the configured counter, falling back to a
// rune-based estimate when no counter is set or counting fails.
func countTokens(ctx context.Context, counter TokenCounter, text string) int {
	if counter != nil {
		if n, err := counter.CountTokens(ctx, text); err == nil {
			return n
		}
	}
	return utf8.RuneCountInString(text)/4 + 1
}

// reduceChunk extracts one candidate bullet per section in the chunk.
func reduceChunk(chunk []*Section) []candidate {
	out := make([]candidate, 0, len(chunk))
	for _, s := range chunk {
		lead := leadSentence(s.Body)
		if lead == "" {
			continue
		}
		text := lead
		if s.Heading != "" {
			text = s.Heading + ": " + lead
		}
		out = append(out, candidate{
			text:     text,
			depth:    s.Depth,
			position: sectionPosition(s.ID),
			cites: []Citation{{
				SectionID: s.ID,
				Heading:   s.Heading,
				Quote:     lead,
			}},
		})
	}
	return out
}

// mergeNearDuplicates folds candidates with high lexical overlap into one,
// keeping the more specific (longer) phrasing and the union of citations.
func mergeNearDuplicates(candidates []candidate) []candidate {
	var merged []candidate
	for _, c := range candidates {
		dup := -1
		for i := range merged {
			if wordOverlap(merged[i].text, c.text) >= dedupeOverlap {
				dup = i
				break
			}
		}
		if dup < 0 {
			merged = append(merged, c)
			continue
		}
		if len(c.text) > len(merged[dup].text) {
			kept := merged[dup]
			c.depth = min(c.depth, kept.depth)
			c.position = min(c.position, kept.position)
			c.cites = append(kept.cites, c.cites...)
			merged[dup] = c
		} else {
			merged[dup].cites = append(merged[dup].cites, c.cites...)
		}
	}
	return merged
}

// wordOverlap returns the Jaccard similarity of the lowercased word sets of
// a and b.
func wordOverlap(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	var shared int
	for w := range setA {
		if _, ok := setB[w]; ok {
			shared++
		}
	}
	union := len(setA) + len(setB) - shared
	return float64(shared) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ".,;:!?()[]\"'")
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// leadSentence returns the first sentence of the text, with markdown list
// and emphasis markers stripped and length capped.
func leadSentence(text string) string {
	line := firstProseLine(text)
	if line == "" {
		return ""
	}

	for _, sep := range []string{". ", "! ", "? "} {
		if i := strings.Index(line, sep); i >= 0 {
			line = line[:i+1]
			break
		}
	}

	line = strings.TrimRight(line, ".!? ")
	if utf8.RuneCountInString(line) > maxLeadSentence {
		runes := []rune(line)
		line = strings.TrimRight(string(runes[:maxLeadSentence]), " ") + "…"
	}
	if line == "" {
		return ""
	}
	return line + "."
}

// firstProseLine returns the first non-empty line that is not a code fence,
// with leading list markers and blockquote markers removed.
func firstProseLine(text string) string {
	inFence := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence || trimmed == "" {
			continue
		}
		trimmed = strings.TrimLeft(trimmed, ">-*+ ")
		trimmed = strings.Trim(trimmed, "*_")
		if trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// resolvableCitations filters citations down to those whose section exists
// in the index, deduplicating by section ID.
func resolvableCitations(cites []Citation, idx *SectionIndex) []Citation {
	seen := make(map[string]struct{}, len(cites))
	out := make([]Citation, 0, len(cites))
	for _, c := range cites {
		if _, dup := seen[c.SectionID]; dup {
			continue
		}
		if _, ok := idx.Lookup(c.SectionID); !ok {
			continue
		}
		seen[c.SectionID] = struct{}{}
		out = append(out, c)
	}
	return out
}

// sectionPosition recovers the ordinal from a positional section ID.
func sectionPosition(id string) int {
	var n int
	for _, r := range strings.TrimPrefix(id, "s") {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
