package rst

import (
	"strings"

	"github.com/ericb-bissell/rst-word-addin/directive"
	"github.com/ericb-bissell/rst-word-addin/model"
)

// The generators serialize directive-shaped elements through
// directive.Render, so declaration lines, option indentation, and body
// placement stay identical across every directive the package emits.
// Option order is fixed per directive and is part of the output contract.

func renderImage(img *model.Image) string {
	d := &model.CustomDirective{Name: "image", Argument: img.Options.URI}
	d.Options = append(commonImageOptions(img.Options), populated(
		model.DirectiveOption{Name: "class", Value: img.Options.Class},
		model.DirectiveOption{Name: "name", Value: img.Options.Name},
		model.DirectiveOption{Name: "loading", Value: img.Options.Loading},
	)...)
	return directive.Render(d)
}

func renderFigure(f *model.Figure) string {
	d := &model.CustomDirective{Name: "figure", Argument: f.Options.URI}
	d.Options = append(commonImageOptions(f.Options), populated(
		model.DirectiveOption{Name: "figwidth", Value: f.FigWidth},
		model.DirectiveOption{Name: "figclass", Value: f.FigClass},
		model.DirectiveOption{Name: "name", Value: f.FigName},
	)...)
	d.Content = figureBody(f)
	return directive.Render(d)
}

// figureBody lays out caption then legend, blank-line separated. A legend
// without a caption gets the empty-comment placeholder docutils requires
// before legend content.
func figureBody(f *model.Figure) string {
	caption := strings.TrimSpace(f.Caption)
	legend := strings.TrimSpace(f.Legend)
	switch {
	case legend == "":
		return caption
	case caption == "":
		return "..\n\n" + legend
	default:
		return caption + "\n\n" + legend
	}
}

func (r *renderer) renderTable(t *model.Table) string {
	grid := renderGrid(t)
	if grid == "" {
		r.warnf("dropping table with no cells")
		return ""
	}

	d := &model.CustomDirective{Name: "table", Argument: t.Options.Caption}
	d.Options = populated(
		model.DirectiveOption{Name: "align", Value: t.Options.Align},
		model.DirectiveOption{Name: "width", Value: t.Options.Width},
		model.DirectiveOption{Name: "widths", Value: t.Options.Widths},
		model.DirectiveOption{Name: "class", Value: t.Options.Class},
		model.DirectiveOption{Name: "name", Value: t.Options.Name},
	)
	d.Content = grid
	return directive.Render(d)
}

func renderContents(toc *model.TableOfContents) string {
	d := &model.CustomDirective{Name: "contents", Argument: toc.Options.Title}
	d.Options = populated(model.DirectiveOption{Name: "depth", Value: toc.Options.Depth})
	if toc.Options.Local {
		d.Options = append(d.Options, model.DirectiveOption{Name: "local"})
	}
	d.Options = append(d.Options, populated(
		model.DirectiveOption{Name: "backlinks", Value: toc.Options.Backlinks},
		model.DirectiveOption{Name: "class", Value: toc.Options.Class},
	)...)
	return directive.Render(d)
}

// renderDirective passes a custom directive through verbatim. An unknown
// name close to a known directive earns an advisory warning; the output is
// the same either way.
func (r *renderer) renderDirective(d *model.CustomDirective) string {
	if s := suggestDirective(d.Name); s != "" {
		r.warnf("unknown directive %q (did you mean %q?)", d.Name, s)
	}
	return directive.Render(d)
}

// commonImageOptions returns the option prefix shared by the image and
// figure directives, in the fixed order.
func commonImageOptions(o model.ImageOptions) []model.DirectiveOption {
	return populated(
		model.DirectiveOption{Name: "alt", Value: o.Alt},
		model.DirectiveOption{Name: "width", Value: o.Width},
		model.DirectiveOption{Name: "height", Value: o.Height},
		model.DirectiveOption{Name: "scale", Value: o.Scale},
		model.DirectiveOption{Name: "align", Value: o.Align},
		model.DirectiveOption{Name: "target", Value: o.Target},
	)
}

// populated filters out options with empty values, keeping order. Flag
// options are appended by the caller directly, since an empty value is
// their populated form.
func populated(opts ...model.DirectiveOption) []model.DirectiveOption {
	out := make([]model.DirectiveOption, 0, len(opts))
	for _, opt := range opts {
		if opt.Value != "" {
			out = append(out, opt)
		}
	}
	return out
}

// knownDirectives is the advisory lookup set used for near-miss detection:
// the docutils standard directives plus the ones this package emits. A name
// outside the set is not an error; style-driven directives are open-ended.
var knownDirectives = map[string]bool{
	"admonition": true, "attention": true, "caution": true, "danger": true,
	"error": true, "hint": true, "important": true, "note": true,
	"tip": true, "warning": true,
	"code": true, "code-block": true, "math": true, "highlights": true,
	"epigraph": true, "pull-quote": true, "compound": true, "container": true,
	"image": true, "figure": true,
	"table": true, "csv-table": true, "list-table": true,
	"contents": true, "sectnum": true, "header": true, "footer": true,
	"topic": true, "sidebar": true, "rubric": true, "raw": true,
	"include": true, "class": true, "role": true, "default-role": true,
	"title": true, "meta": true, "replace": true, "unicode": true,
	"date": true,
}

// suggestDirective returns the known directive closest to name, or "" when
// the name is already known or nothing is close. Close means an edit
// distance of at most two, enough for the typos style names actually
// contain without matching unrelated words.
func suggestDirective(name string) string {
	if name == "" || knownDirectives[name] {
		return ""
	}
	best, bestDist := "", 3
	for known := range knownDirectives {
		if d := editDistance(name, known); d < bestDist {
			best, bestDist = known, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance over bytes. Directive names are
// ASCII, so byte distance and rune distance agree.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
