package rstword

import (
	"strings"

	"github.com/ericb-bissell/rst-word-addin/model"
)

// Warning is a non-fatal message produced during conversion. Warnings
// indicate issues where conversion succeeded but the output may be
// imperfect: an image payload that could not be embedded, a suspicious
// directive name, a markup problem the linter noticed.
type Warning = model.Warning

// Result holds the output of one conversion.
type Result struct {
	// Text is the rendered reStructuredText.
	Text string

	// Images lists the image payloads Text references, in reference
	// order. A ref with empty Base64Data points at an external source
	// the caller must resolve before packaging.
	Images []*model.ImageRef

	// Meta carries the metadata found in the source document head.
	Meta model.Metadata

	// Warnings lists the non-fatal issues encountered by the parser,
	// the renderer, and the output linter, in that order.
	Warnings []Warning
}

// FormatWarnings joins warnings into a single display string, one warning
// per line. An empty slice formats as the empty string.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = string(w)
	}
	return strings.Join(lines, "\n")
}
