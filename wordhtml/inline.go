package wordhtml

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// inlineText converts a node's inline content to RST inline markup:
// bold/italic/literal wrappers, sub/sup roles, links, and hard line
// breaks. Formatting carried only by inline styles (font-weight,
// font-style, text-decoration, monospace families) is inferred when no
// semantic tag is present. Underline has no RST equivalent and degrades
// to italic.
func inlineText(n *html.Node) string {
	var sb strings.Builder
	inlineChildren(n, &sb)
	return collapseInline(sb.String())
}

func inlineChildren(n *html.Node, sb *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		inlineNode(c, sb)
	}
}

func inlineNode(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
	default:
		return
	}

	if shouldSkip(n.Data) || isListIgnoreSpan(n) {
		return
	}

	switch n.Data {
	case "br":
		sb.WriteString("\n")
	case "b", "strong":
		writeWrapped(n, sb, "**", "**")
	case "i", "em":
		writeWrapped(n, sb, "*", "*")
	case "u", "ins":
		// no underline in RST; italic is the nearest rendering
		writeWrapped(n, sb, "*", "*")
	case "code", "tt", "kbd", "samp":
		writeLiteral(n, sb)
	case "sub":
		writeRole(n, sb, "sub")
	case "sup":
		writeRole(n, sb, "sup")
	case "a":
		writeLink(n, sb)
	case "img":
		// images are extracted at block level, never inline
	case "span", "font":
		writeStyledSpan(n, sb)
	default:
		inlineChildren(n, sb)
	}
}

// splitEdges separates a rendered run into its leading whitespace, core
// text, and trailing whitespace so inline markers always hug the text.
func splitEdges(text string) (lead, core, trail string) {
	const cutset = " \t\r\n "
	core = strings.TrimLeft(text, cutset)
	lead = text[:len(text)-len(core)]
	trimmed := strings.TrimRight(core, cutset)
	trail = core[len(trimmed):]
	return lead, trimmed, trail
}

// writeWrapped renders the node's children and surrounds the result with
// the given markers. Whitespace-only content passes through unmarked.
// Nested emphasis is written as-is (***x*** for bold italic); the linter
// flags pathological marker runs instead of rewriting user text.
func writeWrapped(n *html.Node, sb *strings.Builder, open, close string) {
	var inner strings.Builder
	inlineChildren(n, &inner)
	lead, core, trail := splitEdges(inner.String())
	if core == "" {
		sb.WriteString(inner.String())
		return
	}
	sb.WriteString(lead)
	sb.WriteString(open)
	sb.WriteString(core)
	sb.WriteString(close)
	sb.WriteString(trail)
}

// writeLiteral renders the node's plain text as an inline literal.
// Markup cannot nest inside RST literals, so descendant formatting is
// stripped.
func writeLiteral(n *html.Node, sb *strings.Builder) {
	text := rawText(n)
	if text == "" {
		return
	}
	sb.WriteString("``")
	sb.WriteString(text)
	sb.WriteString("``")
}

func writeRole(n *html.Node, sb *strings.Builder, role string) {
	text := rawText(n)
	if text == "" {
		return
	}
	fmt.Fprintf(sb, ":%s:`%s`", role, text)
}

// writeLink splits hyperlinks into internal cross-references (fragment
// targets, the shape Word gives intra-document links) and external inline
// hyperlinks. A link without an href or without visible text degrades to
// its text.
func writeLink(n *html.Node, sb *strings.Builder) {
	var inner strings.Builder
	inlineChildren(n, &inner)
	lead, core, trail := splitEdges(inner.String())

	href := attrVal(n, "href")
	if core == "" || href == "" {
		sb.WriteString(inner.String())
		return
	}

	sb.WriteString(lead)
	if target, ok := strings.CutPrefix(href, "#"); ok {
		fmt.Fprintf(sb, ":ref:`%s <%s>`", core, target)
	} else {
		fmt.Fprintf(sb, "`%s <%s>`_", core, href)
	}
	sb.WriteString(trail)
}

// writeStyledSpan infers formatting from inline style declarations when
// Word emits styled spans instead of semantic tags. Monospace font
// families become literals; vertical-align sub/super become roles;
// font-weight, font-style, and text-decoration map to emphasis markers,
// underline degrading to italic.
func writeStyledSpan(n *html.Node, sb *strings.Builder) {
	if isMonospace(styleVal(n, "font-family")) {
		writeLiteral(n, sb)
		return
	}

	switch strings.ToLower(styleVal(n, "vertical-align")) {
	case "sub":
		writeRole(n, sb, "sub")
		return
	case "super":
		writeRole(n, sb, "sup")
		return
	}

	bold := isBoldWeight(styleVal(n, "font-weight"))
	italic := strings.Contains(strings.ToLower(styleVal(n, "font-style")), "italic") ||
		strings.Contains(strings.ToLower(styleVal(n, "text-decoration")), "underline")

	switch {
	case bold && italic:
		writeWrapped(n, sb, "***", "***")
	case bold:
		writeWrapped(n, sb, "**", "**")
	case italic:
		writeWrapped(n, sb, "*", "*")
	default:
		inlineChildren(n, sb)
	}
}

// isMonospace reports whether a font-family declaration names a monospace
// face, which Word uses to mark code runs.
func isMonospace(family string) bool {
	family = strings.ToLower(family)
	if family == "" {
		return false
	}
	for _, face := range []string{"courier", "consolas", "monaco", "menlo", "monospace", "lucida console"} {
		if strings.Contains(family, face) {
			return true
		}
	}
	return false
}

// isBoldWeight reports whether a font-weight value means bold: the bold
// and bolder keywords, or a numeric weight of 600 and up.
func isBoldWeight(weight string) bool {
	weight = strings.ToLower(strings.TrimSpace(weight))
	switch weight {
	case "bold", "bolder":
		return true
	case "":
		return false
	}
	if len(weight) == 3 && weight[0] >= '6' && weight[0] <= '9' && weight[1] == '0' && weight[2] == '0' {
		return true
	}
	return false
}

// collapseInline normalizes converted inline text: source-formatting
// whitespace collapses to single spaces while the newlines written for
// <br> survive as hard break markers.
func collapseInline(s string) string {
	segments := strings.Split(s, "\n")
	for i, seg := range segments {
		segments[i] = strings.Join(strings.Fields(seg), " ")
	}
	out := strings.Join(segments, "\n")
	return strings.Trim(out, "\n ")
}
