package rst

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ericb-bissell/rst-word-addin/directive"
	"github.com/ericb-bissell/rst-word-addin/model"
)

// headingAdornments are the per-level section adornment characters, level 1
// first. The assignment is fixed; consistent adornment order matters more to
// docutils than the characters themselves.
var headingAdornments = [6]rune{'=', '-', '~', '^', '"', '\''}

// blockQuoteIndent is the fixed indentation of block-quote lines.
const blockQuoteIndent = "    "

// Render serializes the element sequence to reStructuredText. Every element
// renders to one block; non-empty blocks are joined by exactly one blank
// line and the result ends with a newline. Rendering never fails: elements
// that produce no output are dropped with a warning where that loses
// content.
func Render(elements []model.Element, opts Options) (string, []model.Warning) {
	r := &renderer{opts: opts}

	var blocks []string
	for _, e := range elements {
		if e == nil {
			continue
		}
		block := strings.TrimRight(r.renderElement(e), " \t\n")
		if block != "" {
			blocks = append(blocks, block)
		}
	}

	if len(blocks) == 0 {
		return "", r.warnings
	}
	return strings.Join(blocks, "\n\n") + "\n", r.warnings
}

type renderer struct {
	opts     Options
	warnings []model.Warning
}

func (r *renderer) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, model.Warning(fmt.Sprintf(format, args...)))
}

func (r *renderer) renderElement(e model.Element) string {
	switch v := e.(type) {
	case *model.Heading:
		return r.renderHeading(v)
	case *model.Paragraph:
		return r.renderParagraph(v)
	case *model.List:
		return r.renderList(v, 0)
	case *model.Image:
		return renderImage(v)
	case *model.Figure:
		return renderFigure(v)
	case *model.Table:
		return r.renderTable(v)
	case *model.TableOfContents:
		return renderContents(v)
	case *model.CustomDirective:
		return r.renderDirective(v)
	case *model.FieldList:
		return directive.RenderFields(v.Fields)
	default:
		r.warnf("dropping unrenderable element kind %s", e.Kind())
		return ""
	}
}

// renderHeading emits the heading text over an adornment line of the same
// rune count. Rune count, not byte length: multibyte heading text with a
// short underline is the most common docutils complaint about generated
// RST.
func (r *renderer) renderHeading(h *model.Heading) string {
	text := strings.TrimSpace(h.Text)
	if text == "" {
		return ""
	}

	level := h.Level
	if level < 1 {
		level = 1
	}
	if level > len(headingAdornments) {
		level = len(headingAdornments)
	}

	line := strings.Repeat(string(headingAdornments[level-1]), utf8.RuneCountInString(text))
	if level == 1 && r.opts.HeadingOverline {
		return line + "\n" + text + "\n" + line
	}
	return text + "\n" + line
}

func (r *renderer) renderParagraph(p *model.Paragraph) string {
	content := strings.TrimSpace(p.Content)
	if content == "" {
		return ""
	}
	if p.IsBlockQuote {
		return indentBlock(content, blockQuoteIndent, r.opts.WrapWidth)
	}
	return strings.Join(Wrap(content, r.opts.WrapWidth), "\n")
}

// renderList emits the list at the given nesting depth. Items sit on
// consecutive lines; a nested list is set off from its parent item and from
// the following sibling by blank lines, which docutils requires. An item
// with no text of its own contributes only its nested items, spliced in at
// the same depth.
func (r *renderer) renderList(l *model.List, depth int) string {
	indent := strings.Repeat("  ", depth)
	marker := "- "
	if l.Type == model.ListTypeOrdered {
		marker = "#. "
	}
	cont := indent + strings.Repeat(" ", len(marker))

	var lines []string
	for _, item := range l.Items {
		if item == nil {
			continue
		}
		text := strings.TrimSpace(item.Content)
		if text == "" {
			if item.Nested != nil {
				lines = appendBlock(lines, r.renderList(item.Nested, depth))
			}
			continue
		}

		width := r.opts.WrapWidth
		if width > 0 {
			width -= len(cont)
			if width < 1 {
				width = 1
			}
		}
		for i, line := range Wrap(text, width) {
			switch {
			case i == 0:
				lines = append(lines, indent+marker+line)
			case line == "":
				lines = append(lines, "")
			default:
				lines = append(lines, cont+line)
			}
		}

		if item.Nested != nil && len(item.Nested.Items) > 0 {
			lines = appendBlock(lines, r.renderList(item.Nested, depth+1))
			lines = append(lines, "")
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// appendBlock appends the lines of block after a separating blank line.
func appendBlock(lines []string, block string) []string {
	if block == "" {
		return lines
	}
	if len(lines) > 0 && lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return append(lines, strings.Split(block, "\n")...)
}

// indentBlock wraps text so the indented result stays inside width, then
// prefixes every non-blank line with indent. The indent counts against the
// width.
func indentBlock(text, indent string, width int) string {
	inner := width
	if width > 0 {
		inner = width - len(indent)
		if inner < 1 {
			inner = 1
		}
	}
	lines := Wrap(text, inner)
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}
