// Package transform implements the post-processing pass that runs between
// parsing and rendering: it folds the flat parsed element sequence into its
// final shape by merging adjacent same-style directive blocks, rebuilding
// nested lists from flat indent-annotated items, and attaching standalone
// caption paragraphs to the figure or table they describe.
package transform

import (
	"strings"

	"github.com/ericb-bissell/rst-word-addin/caption"
	"github.com/ericb-bissell/rst-word-addin/model"
)

// Apply folds the parsed sequence into the final element sequence. The
// input is consumed; callers use the returned slice. Elements the fold
// does not touch pass through in order.
func Apply(elements []model.Element) []model.Element {
	out := make([]model.Element, 0, len(elements))
	consumed := make([]bool, len(elements))
	var listRun []*model.List

	flushRun := func() {
		if len(listRun) > 0 {
			out = append(out, mergeFlatLists(listRun))
			listRun = nil
		}
	}

	for i, e := range elements {
		if consumed[i] {
			continue
		}

		if l, ok := e.(*model.List); ok && l.Flat {
			listRun = append(listRun, l)
			continue
		}
		flushRun()

		switch v := e.(type) {
		case *model.CustomDirective:
			if len(out) > 0 {
				if prev, ok := out[len(out)-1].(*model.CustomDirective); ok &&
					prev.Name == v.Name && prev.StyleName == v.StyleName {
					mergeDirectives(prev, v)
					continue
				}
			}
			out = append(out, v)

		case *model.Table, *model.Figure, *model.Image:
			out = append(out, attachNearbyCaption(v, elements, i, consumed, &out))

		default:
			out = append(out, e)
		}
	}
	flushRun()

	return out
}

// mergeDirectives folds src into dst: the first non-empty argument wins,
// options accumulate in insertion order, and bodies join with one blank
// line.
func mergeDirectives(dst, src *model.CustomDirective) {
	if dst.Argument == "" {
		dst.Argument = src.Argument
	}
	for _, opt := range src.Options {
		dst.SetOption(opt.Name, opt.Value)
	}
	switch {
	case dst.Content == "":
		dst.Content = src.Content
	case src.Content != "":
		dst.Content += "\n\n" + src.Content
	}
}

// attachNearbyCaption binds an adjacent caption paragraph to the element.
// The next sibling is preferred over the previous one, mirroring how the
// parser resolves captions inside a block. A consumed caption paragraph is
// dropped from the sequence; an element that already carries a caption
// absorbs nothing. Attaching a figure caption to a plain Image promotes it
// to a Figure, so the returned element may differ from the input.
func attachNearbyCaption(e model.Element, elements []model.Element, i int, consumed []bool, out *[]model.Element) model.Element {
	if hasCaption(e) {
		return e
	}

	if i+1 < len(elements) && !consumed[i+1] {
		if c, ok := captionOf(elements[i+1]); ok && captionMatches(c, e) {
			consumed[i+1] = true
			return attachCaption(e, c)
		}
	}

	if n := len(*out); n > 0 {
		if c, ok := captionOf((*out)[n-1]); ok && captionMatches(c, e) {
			*out = (*out)[:n-1]
			return attachCaption(e, c)
		}
	}

	return e
}

// captionOf extracts a caption candidate from an element. A paragraph
// qualifies when its text parses as a caption, or when its source style is
// caption-like; in the latter case the whole text becomes the caption and
// the kind stays Unknown.
func captionOf(e model.Element) (caption.Caption, bool) {
	p, ok := e.(*model.Paragraph)
	if !ok || p.IsBlockQuote {
		return caption.Caption{}, false
	}
	if c, ok := caption.Parse(p.Content); ok {
		return c, true
	}
	if isCaptionStyle(p.StyleName) && strings.TrimSpace(p.Content) != "" {
		return caption.Caption{Text: strings.TrimSpace(p.Content)}, true
	}
	return caption.Caption{}, false
}

func isCaptionStyle(style string) bool {
	return strings.Contains(strings.ToLower(style), "caption")
}

// captionMatches reports whether c may describe e. A typed caption binds
// only to its own element kind; a style-only caption binds to either.
func captionMatches(c caption.Caption, e model.Element) bool {
	switch e.(type) {
	case *model.Table:
		return c.Kind == caption.Table || c.Kind == caption.Unknown
	case *model.Figure, *model.Image:
		return c.Kind == caption.Figure || c.Kind == caption.Unknown
	}
	return false
}

func hasCaption(e model.Element) bool {
	switch v := e.(type) {
	case *model.Table:
		return v.Options.Caption != "" || v.Options.TableNumber != ""
	case *model.Figure:
		return v.Caption != ""
	case *model.Image:
		return false
	}
	return true
}

func attachCaption(e model.Element, c caption.Caption) model.Element {
	switch v := e.(type) {
	case *model.Table:
		v.Options.Caption = c.Text
		v.Options.TableNumber = c.Number
		if v.Options.Name == "" && c.Kind != caption.Unknown {
			v.Options.Name = c.RefName()
		}
		return v

	case *model.Figure:
		v.Caption = c.Text
		v.FigureNumber = c.Number
		if v.FigName == "" && c.Kind != caption.Unknown {
			v.FigName = c.RefName()
		}
		return v

	case *model.Image:
		f := &model.Figure{
			Origin:       v.Origin,
			Options:      v.Options,
			Ref:          v.Ref,
			Caption:      c.Text,
			FigureNumber: c.Number,
		}
		if c.Kind != caption.Unknown {
			f.FigName = c.RefName()
		}
		return f
	}
	return e
}
