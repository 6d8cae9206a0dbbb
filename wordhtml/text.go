package wordhtml

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// shouldSkip reports whether an element never contributes document
// content.
func shouldSkip(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "template", "head", "iframe", "object", "embed":
		return true
	}
	return false
}

// findElement returns the first element with the given tag name, depth
// first.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// elementChildren returns the element-type children of n in order.
func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// rawText extracts the plain text of a node and its descendants with all
// formatting stripped and whitespace collapsed to single spaces. Bullet
// glyph spans (mso-list:Ignore) are excluded; they are list furniture, not
// content.
func rawText(n *html.Node) string {
	var sb strings.Builder
	rawTextInto(n, &sb)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func rawTextInto(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if shouldSkip(n.Data) || isListIgnoreSpan(n) {
			return
		}
		if n.Data == "br" {
			sb.WriteString(" ")
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rawTextInto(c, sb)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
			sb.WriteString(" ")
		}
	}
}

// softBreakRe collapses the hard wraps word processors insert into the
// HTML source; only <br> and block boundaries are real line breaks.
var softBreakRe = regexp.MustCompile(`[ \t\r\n]+`)

// flatText flattens a block to plain multi-line text for the directive
// and field grammars: <br> and nested block boundaries become newlines,
// source-formatting whitespace collapses to single spaces, and no-break
// space runs survive so indentation typed as &nbsp; reaches the grammar
// intact.
func flatText(n *html.Node) string {
	var sb strings.Builder
	flatTextInto(n, &sb)

	lines := strings.Split(sb.String(), "\n")
	for i, line := range lines {
		line = softBreakRe.ReplaceAllString(line, " ")
		line = strings.ReplaceAll(line, " ", " ")
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.TrimLeft(strings.Join(lines, "\n"), " ")
}

func flatTextInto(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if shouldSkip(n.Data) || isListIgnoreSpan(n) {
			return
		}
		if n.Data == "br" {
			sb.WriteString("\n")
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flatTextInto(c, sb)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "tr":
			sb.WriteString("\n")
		}
	}
}

// isListIgnoreSpan reports whether the node is the span Word wraps around
// a list item's bullet or number glyph (style mso-list:Ignore).
func isListIgnoreSpan(n *html.Node) bool {
	if n.Data != "span" {
		return false
	}
	return strings.EqualFold(styleVal(n, "mso-list"), "ignore")
}
