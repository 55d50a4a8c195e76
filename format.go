package notes

import (
	"fmt"
	"strings"
	"time"
)

// maxRenderedLinks caps the links list appended to rendered notes.
const maxRenderedLinks = 20

// FormatNotes renders a processed page as Markdown with a metadata header,
// the extracted content, and a capped list of outbound links.
func FormatNotes(page *PageNotes) string {
	doc := page.Document

	var b strings.Builder
	if doc.Title != "" {
		b.WriteString("# " + doc.Title + "\n")
	} else {
		b.WriteString("# Page Notes\n")
	}
	if doc.Byline != "" {
		b.WriteString("By: " + doc.Byline + "\n")
	}
	if !doc.PublishedAt.IsZero() {
		b.WriteString("Published: " + doc.PublishedAt.Format(time.RFC3339) + "\n")
	}
	b.WriteString("Canonical: " + doc.URL + "\n")
	fmt.Fprintf(&b, "Estimated reading time: %d min\n", ReadingTime(page.Markdown))

	b.WriteString("\n## Extracted Content\n\n")
	b.WriteString(strings.TrimRight(page.Markdown, "\n"))
	b.WriteString("\n")

	if len(doc.Links) > 0 {
		b.WriteString("\n## Links\n\n")
		links := doc.Links
		if len(links) > maxRenderedLinks {
			links = links[:maxRenderedLinks]
		}
		for _, l := range links {
			b.WriteString("- " + l + "\n")
		}
	}

	return b.String()
}

// FormatSummary renders a summary as Markdown: bullets with inline citation
// markers, followed by a legend resolving markers to section headings.
func FormatSummary(s *Summary) string {
	title := s.Title
	if title == "" {
		title = "Summary"
	}

	var b strings.Builder
	b.WriteString("# " + title + "\n\n## Key Points\n\n")
	for _, bullet := range s.Bullets {
		b.WriteString("- " + bullet.Text)
		for _, c := range bullet.Citations {
			b.WriteString(" [" + c.SectionID + "]")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n## Citations\n\n")
	for _, c := range summaryCitations(s) {
		heading := c.Heading
		if heading == "" {
			heading = "(untitled section)"
		}
		fmt.Fprintf(&b, "- [%s] %s — %s\n", c.SectionID, heading, s.SourceURL)
	}

	return b.String()
}

// summaryCitations returns the summary's citations deduplicated by section,
// in first-use order.
func summaryCitations(s *Summary) []Citation {
	seen := make(map[string]struct{})
	var out []Citation
	for _, bullet := range s.Bullets {
		for _, c := range bullet.Citations {
			if _, dup := seen[c.SectionID]; dup {
				continue
			}
			seen[c.SectionID] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// FormatOutline renders outline entries as an indented Markdown list.
func FormatOutline(entries []OutlineEntry) string {
	var b strings.Builder
	b.WriteString("## Outline\n\n")
	for _, e := range entries {
		heading := e.Heading
		if heading == "" {
			heading = "(untitled)"
		}
		b.WriteString(strings.Repeat("  ", e.Depth))
		b.WriteString("- " + heading + "\n")
	}
	return b.String()
}

// FormatStudyGuide merges batch items into one study guide: successful
// summaries under per-URL headings, a numbered references list, and an
// appendix describing each failed URL.
func FormatStudyGuide(items []BatchItem) string {
	var b strings.Builder
	b.WriteString("# Study Guide\n")

	var refs []string
	var failures []BatchItem

	for i, item := range items {
		if !item.OK() {
			failures = append(failures, item)
			continue
		}

		s := item.Summary
		title := s.Title
		if title == "" {
			title = fmt.Sprintf("Source %d", i+1)
		}

		b.WriteString("\n## " + title + "\n\n")
		for _, bullet := range s.Bullets {
			b.WriteString("- " + bullet.Text + "\n")
		}
		refs = append(refs, fmt.Sprintf("[%d] %s — %s", len(refs)+1, title, s.SourceURL))
	}

	if len(refs) > 0 {
		b.WriteString("\n## References\n\n")
		for _, r := range refs {
			b.WriteString(r + "\n")
		}
	}

	if len(failures) > 0 {
		b.WriteString("\n## Failed Sources\n\n")
		for _, f := range failures {
			fmt.Fprintf(&b, "- %s — %s: %s\n", f.URL, f.ErrCode, f.ErrMessage)
		}
	}

	return b.String()
}
