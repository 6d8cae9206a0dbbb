// Package caption recognizes and decomposes caption text such as
// "Figure 1: Overview" or "Table 2.3 — Results" into its kind, number,
// and remaining text.
package caption

import (
	"regexp"
	"strings"
)

// Kind represents what a caption describes.
type Kind int

const (
	// Unknown indicates text that is not a recognized caption.
	Unknown Kind = iota
	// Figure indicates a figure caption.
	Figure
	// Table indicates a table caption.
	Table
)

func (k Kind) String() string {
	switch k {
	case Figure:
		return "Figure"
	case Table:
		return "Table"
	default:
		return "Unknown"
	}
}

// Caption is a decomposed caption: its kind, the (possibly dotted or
// dashed) number as written, and the caption text with the label stripped.
type Caption struct {
	Kind   Kind
	Number string
	Text   string
}

// The label word, a number group (digits joined by dots or dashes), an
// optional separator, then the caption text.
var captionRe = regexp.MustCompile(`(?i)^\s*(figure|fig\.?|table)\s+([0-9]+(?:[.-][0-9]+)*)\s*[:.\-\x{2013}\x{2014}]?\s*(.*?)\s*$`)

// Parse decomposes caption-like text. The second return value reports
// whether the text matched the caption shape at all.
func Parse(text string) (Caption, bool) {
	m := captionRe.FindStringSubmatch(text)
	if m == nil {
		return Caption{}, false
	}

	kind := Figure
	if strings.EqualFold(m[1], "table") {
		kind = Table
	}

	return Caption{
		Kind:   kind,
		Number: m[2],
		Text:   m[3],
	}, true
}

// Matches reports whether text looks like a caption without decomposing it.
func Matches(text string) bool {
	return captionRe.MatchString(text)
}

// RefName derives a normalized cross-reference name from the caption, such
// as "figure-1" or "table-2-3".
func (c Caption) RefName() string {
	num := strings.Map(func(r rune) rune {
		if r == '.' || r == '-' {
			return '-'
		}
		return r
	}, c.Number)
	return strings.ToLower(c.Kind.String()) + "-" + num
}
