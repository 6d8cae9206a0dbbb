// Package directive implements the mini-language used by style-driven
// directive blocks: an optional bracketed argument line, zero or more
// :name: value option lines, then a verbatim body. Render inverts Parse
// exactly, so a parsed directive can be re-serialized byte for byte.
package directive

import (
	"regexp"
	"strings"

	"github.com/ericb-bissell/rst-word-addin/model"
)

// Indent is the fixed indentation applied to option and body lines of a
// rendered directive.
const Indent = "   "

var (
	argumentRe = regexp.MustCompile(`^\[(.*)\]$`)
	optionRe   = regexp.MustCompile(`^:([A-Za-z][\w-]*):\s*(.*)$`)
)

// Parse reads the raw flattened text of a directive-styled block.
//
// The grammar is line-oriented: leading blank lines are skipped; if the
// first non-blank line is [argument] it is consumed as the argument; each
// following :name: value line is an option, order preserved; the first
// line matching neither pattern starts the body, and everything from there
// on belongs to the body. An option-looking line after the body has begun
// stays body text. The body is dedented and stripped of edge blank lines;
// interior blank lines survive.
func Parse(name, raw string) *model.CustomDirective {
	d := &model.CustomDirective{Name: name}

	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	i := 0

	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}

	if i < len(lines) {
		if m := argumentRe.FindStringSubmatch(lines[i]); m != nil {
			d.Argument = strings.TrimSpace(m[1])
			i++
		}
	}

	for i < len(lines) {
		m := optionRe.FindStringSubmatch(lines[i])
		if m == nil {
			break
		}
		d.Options = append(d.Options, model.DirectiveOption{
			Name:  m[1],
			Value: strings.TrimSpace(m[2]),
		})
		i++
	}

	if i < len(lines) {
		d.Content = dedent(trimBlankEdges(lines[i:]))
	}

	return d
}

// Render serializes a directive back to RST: the declaration line, one
// indented option line per option in insertion order, then a blank line
// and the indented body when the body is non-empty. Flag options render
// bare, without a trailing space.
func Render(d *model.CustomDirective) string {
	var sb strings.Builder

	sb.WriteString(".. ")
	sb.WriteString(d.Name)
	sb.WriteString("::")
	if d.Argument != "" {
		sb.WriteString(" ")
		sb.WriteString(d.Argument)
	}

	for _, opt := range d.Options {
		sb.WriteString("\n")
		sb.WriteString(Indent)
		sb.WriteString(":")
		sb.WriteString(opt.Name)
		sb.WriteString(":")
		if opt.Value != "" {
			sb.WriteString(" ")
			sb.WriteString(opt.Value)
		}
	}

	if d.Content != "" {
		sb.WriteString("\n\n")
		sb.WriteString(IndentBlock(d.Content, Indent))
	}

	return sb.String()
}

// IndentBlock prefixes every non-blank line of text with the given indent.
// Blank lines stay empty so trailing whitespace never leaks into output.
func IndentBlock(text, indent string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}

// trimBlankEdges removes leading and trailing blank lines, keeping
// interior ones.
func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// dedent strips the longest common leading whitespace from all non-blank
// lines.
func dedent(lines []string) string {
	prefix := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ws := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix = ws
			first = false
			continue
		}
		prefix = commonPrefix(prefix, ws)
	}

	if prefix == "" {
		return strings.Join(lines, "\n")
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = ""
			continue
		}
		out[i] = strings.TrimPrefix(line, prefix)
	}
	return strings.Join(out, "\n")
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
