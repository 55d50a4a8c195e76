package notes

// OutlineEntry is one node of a page outline.
type OutlineEntry struct {
	Depth     int    `json:"depth"`
	Heading   string `json:"heading"`
	SectionID string `json:"sectionId"`
}

// BuildOutline projects a section index onto its heading hierarchy. It is a
// pure structural projection: no body text, no summarization. Headingless
// body-continuation sections are skipped, except the implicit page-title
// section at depth 0. An empty index fails with EEMPTYCONTENT.
func BuildOutline(idx *SectionIndex) ([]OutlineEntry, error) {
	if idx.Len() == 0 {
		return nil, Errorf(EEMPTYCONTENT, "no sections to outline")
	}

	entries := make([]OutlineEntry, 0, idx.Len())
	for _, s := range idx.Sections() {
		if s.Heading == "" && s.Depth != 0 {
			continue
		}
		entries = append(entries, OutlineEntry{
			Depth:     s.Depth,
			Heading:   s.Heading,
			SectionID: s.ID,
		})
	}
	return entries, nil
}
