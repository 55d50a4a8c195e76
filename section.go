package notes

import (
	"regexp"
	"strconv"
	"strings"
)

// Section is an addressable, heading-bounded unit of a rendered page.
// Sections form an ordered forest mirroring heading nesting: a section's
// depth is exactly one greater than its parent's, and sibling order matches
// document order.
type Section struct {
	// ID is a stable, position-derived identifier ("s0", "s1", ...).
	// Re-running indexing on the same input yields identical IDs.
	ID string `json:"id"`

	// Heading is the heading text that opened the section. Empty only for
	// the implicit page-preamble section when no title is known.
	Heading string `json:"heading,omitempty"`

	// Depth is the nesting depth: 0 for the page-title level, 1..n for
	// nested headings.
	Depth int `json:"depth"`

	// Body is the section's plain body text, without the heading line.
	Body string `json:"body"`

	// Markdown is the exact slice of the rendered document covered by
	// this section, heading line included.
	Markdown string `json:"markdown"`
}

// SectionIndex is a read-only, ordered index of a page's sections, used for
// citation resolution. It is built once per document and never mutated.
type SectionIndex struct {
	sections []*Section
	byID     map[string]*Section
}

// Len returns the number of sections in the index.
func (x *SectionIndex) Len() int {
	if x == nil {
		return 0
	}
	return len(x.sections)
}

// Sections returns the sections in document order.
// The returned slice must not be modified.
func (x *SectionIndex) Sections() []*Section {
	if x == nil {
		return nil
	}
	return x.sections
}

// Lookup returns the section with the given ID.
func (x *SectionIndex) Lookup(id string) (*Section, bool) {
	if x == nil {
		return nil, false
	}
	s, ok := x.byID[id]
	return s, ok
}

// headingRe matches ATX markdown headings: # through ######.
var headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*$`)

// BuildSectionIndex partitions rendered Markdown into sections. A new
// section begins at every heading; body text before the first heading forms
// an implicit page-title section at depth 0 carrying the given title.
// Heading lines inside fenced code blocks are ignored.
//
// Concatenating the Markdown of all sections in order reproduces the input
// exactly.
func BuildSectionIndex(markdown string, title string) *SectionIndex {
	x := &SectionIndex{byID: make(map[string]*Section)}
	if strings.TrimSpace(markdown) == "" {
		return x
	}

	lines := splitAfterLines(markdown)

	var (
		current   *Section
		pending   strings.Builder // blank preamble carried into the next section
		inFence   bool
		lastDepth = -1
		count     int
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Body = sectionBody(current.Markdown)
		x.sections = append(x.sections, current)
		x.byID[current.ID] = current
		current = nil
	}

	nextID := func() string {
		id := "s" + strconv.Itoa(count)
		count++
		return id
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
		}

		var m []string
		if !inFence {
			m = headingRe.FindStringSubmatch(strings.TrimRight(line, "\n"))
		}

		if m == nil {
			if current != nil {
				current.Markdown += line
			} else if strings.TrimSpace(line) == "" {
				// Blank preamble: defer until we know whether an
				// implicit section is needed.
				pending.WriteString(line)
			} else {
				current = &Section{
					ID:       nextID(),
					Heading:  title,
					Depth:    0,
					Markdown: pending.String() + line,
				}
				pending.Reset()
				lastDepth = 0
			}
			continue
		}

		depth := len(m[1]) - 1
		if depth > lastDepth+1 {
			// Clamp skipped heading levels so every section sits
			// exactly one deeper than its parent.
			depth = lastDepth + 1
		}

		flush()
		current = &Section{
			ID:       nextID(),
			Heading:  m[2],
			Depth:    depth,
			Markdown: pending.String() + line,
		}
		pending.Reset()
		lastDepth = depth
	}

	if current != nil && pending.Len() > 0 {
		current.Markdown += pending.String()
	}
	flush()

	return x
}

// sectionBody strips the section's opening heading line (the first
// non-blank line, when it is a heading) and returns the trimmed remainder.
func sectionBody(markdown string) string {
	var b strings.Builder
	started := false
	for _, line := range splitAfterLines(markdown) {
		if !started {
			if strings.TrimSpace(line) == "" {
				continue
			}
			started = true
			if headingRe.MatchString(strings.TrimRight(line, "\n")) {
				continue
			}
		}
		b.WriteString(line)
	}
	return strings.TrimSpace(b.String())
}

// splitAfterLines splits s into lines, each retaining its trailing newline.
func splitAfterLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
