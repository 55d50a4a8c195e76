package notes

// LengthTier controls the target bullet-count budget of a summary.
type LengthTier string

// Supported length tiers.
const (
	TierShort  LengthTier = "short"
	TierMedium LengthTier = "medium"
	TierLong   LengthTier = "long"
)

// DefaultTier is used when no tier is specified.
const DefaultTier = TierShort

// ParseLengthTier validates a tier string. The empty string maps to
// DefaultTier. Unknown values return EINVALID.
func ParseLengthTier(s string) (LengthTier, error) {
	switch LengthTier(s) {
	case "":
		return DefaultTier, nil
	case TierShort, TierMedium, TierLong:
		return LengthTier(s), nil
	}
	return "", Errorf(EINVALID, "unknown length tier %q", s)
}

// TargetBullets returns the bullet-count budget for the tier. The budget is
// a target, not a hard floor: short pages may produce fewer bullets.
func (t LengthTier) TargetBullets() int {
	switch t {
	case TierMedium:
		return 10
	case TierLong:
		return 20
	default:
		return 5
	}
}

// Citation points a summary bullet back at the section it was derived from.
// It is a reference into a SectionIndex, never a copy of section body text;
// Heading and Quote are small display labels only.
type Citation struct {
	// SectionID identifies the cited section in the index that produced
	// the summary.
	SectionID string `json:"sectionId"`

	// Heading is the cited section's heading, kept for rendering after
	// the index is gone.
	Heading string `json:"heading,omitempty"`

	// Quote is the short span the bullet was derived from.
	Quote string `json:"quote,omitempty"`
}

// Bullet is a single summary point with its supporting citations.
type Bullet struct {
	Text      string     `json:"text"`
	Citations []Citation `json:"citations"`
}

// Summary is a length-bounded bullet summary of one page.
type Summary struct {
	SourceURL string     `json:"sourceUrl"`
	Title     string     `json:"title,omitempty"`
	Tier      LengthTier `json:"lengthTier"`
	Bullets   []Bullet   `json:"bullets"`
}
