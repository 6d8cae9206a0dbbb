package wordhtml

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/ericb-bissell/rst-word-addin/model"
)

// isListParagraph reports whether the block is one flat item of a Word
// list: an mso-list style property or an MsoList* paragraph class
// (MsoListParagraph, MsoListParagraphCxSpMiddle, MsoListBullet, ...).
func isListParagraph(n *html.Node) bool {
	if styleVal(n, "mso-list") != "" {
		return true
	}
	for _, c := range classes(n) {
		if strings.HasPrefix(strings.ToLower(c), "msolist") {
			return true
		}
	}
	return false
}

// parseListParagraph converts one flat list paragraph into a single-item
// list that carries its indent level and glyph-derived type as hints for
// the post-processing merge.
func (p *parser) parseListParagraph(n *html.Node) *model.List {
	glyph, family := listGlyph(n)
	content := inlineText(n)
	if glyph == "" {
		glyph, content = splitLeadingGlyph(content)
	}

	return &model.List{
		Origin: model.Origin{StyleName: styleName(n)},
		Type:   glyphListType(glyph, family),
		Items:  []*model.ListItem{{Content: content}},
		Flat:   true,
		Indent: listIndent(n),
	}
}

// listGlyph returns the bullet or number glyph from the mso-list:Ignore
// span, along with the font family the glyph is set in. Symbol-font
// glyphs land in the Private Use Area and identify bullets regardless of
// shape.
func listGlyph(n *html.Node) (glyph, family string) {
	span := findListIgnoreSpan(n)
	if span == nil {
		return "", ""
	}
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		if c.Type == html.ElementNode {
			if f := styleVal(c, "font-family"); f != "" && family == "" {
				family = f
			}
		}
		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			collect(gc)
		}
	}
	collect(span)
	if f := styleVal(span, "font-family"); f != "" {
		family = f
	}
	return strings.TrimSpace(strings.ReplaceAll(sb.String(), " ", " ")), family
}

func findListIgnoreSpan(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && isListIgnoreSpan(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findListIgnoreSpan(c); found != nil {
			return found
		}
	}
	return nil
}

// leadingGlyphRe matches a bullet character or a numeric/alpha/roman
// marker with its punctuation at the start of converted item text.
var leadingGlyphRe = regexp.MustCompile(`^([•·§‣◦▪○■□►*o-]|\d+[.)]|[A-Za-z][.)]|[ivxlcdmIVXLCDM]+[.)])\s+(.*)$`)

// splitLeadingGlyph strips a leading bullet or number glyph from item
// text when the bullet span was absent (cleaned or pasted HTML). Returns
// the glyph and the remaining content; the glyph is empty when the text
// does not start with one.
func splitLeadingGlyph(content string) (glyph, rest string) {
	m := leadingGlyphRe.FindStringSubmatch(content)
	if m == nil {
		return "", content
	}
	return m[1], m[2]
}

var orderedGlyphRe = regexp.MustCompile(`^(?:\d+|[A-Za-z]|[ivxlcdmIVXLCDM]+)[.)]$`)

// glyphListType classifies the item from its glyph shape. A symbol font
// (Symbol, Wingdings, Webdings) or a Private Use Area code point marks a
// bullet whatever the glyph looks like; a number, letter, or roman
// numeral followed by . or ) marks an ordered item; anything else is a
// bullet.
func glyphListType(glyph, family string) model.ListType {
	if isSymbolFont(family) || hasPrivateUseRune(glyph) {
		return model.ListTypeUnordered
	}
	if orderedGlyphRe.MatchString(glyph) {
		return model.ListTypeOrdered
	}
	return model.ListTypeUnordered
}

func isSymbolFont(family string) bool {
	family = strings.ToLower(family)
	for _, f := range []string{"symbol", "wingdings", "webdings"} {
		if strings.Contains(family, f) {
			return true
		}
	}
	return false
}

// hasPrivateUseRune reports whether the glyph contains a Private Use Area
// code point (U+E000-U+F8FF). Word maps Symbol and Wingdings bullets
// there (typically U+F0xx).
func hasPrivateUseRune(s string) bool {
	for _, r := range s {
		if r >= 0xE000 && r <= 0xF8FF {
			return true
		}
	}
	return false
}

var msoListLevelRe = regexp.MustCompile(`(?i)\blevel([1-9])`)

// listIndent derives the zero-based indent level of a flat item. An
// explicit mso-list levelN takes precedence; otherwise every half inch
// (36pt) of left margin is one level, the first half inch being level
// zero.
func listIndent(n *html.Node) int {
	if m := msoListLevelRe.FindStringSubmatch(styleVal(n, "mso-list")); m != nil {
		level, _ := strconv.Atoi(m[1])
		return level - 1
	}
	pt := cssLengthPoints(styleVal(n, "margin-left"))
	if pt <= 0 {
		return 0
	}
	level := int(pt/36 + 0.5)
	if level > 0 {
		level--
	}
	return level
}

// parseSemanticList builds a nested list directly from genuine ul/ol
// markup, which Word emits when its export is set to filtered HTML.
// The returned list is final (no indent hints); nesting follows the
// markup itself.
func (p *parser) parseSemanticList(n *html.Node) *model.List {
	list := &model.List{
		Origin: model.Origin{StyleName: styleName(n)},
		Type:   model.ListTypeUnordered,
	}
	if n.Data == "ol" {
		list.Type = model.ListTypeOrdered
	}

	for _, li := range elementChildren(n) {
		if li.Data != "li" {
			continue
		}
		item := &model.ListItem{Content: inlineItemText(li)}
		for _, c := range elementChildren(li) {
			if c.Data == "ul" || c.Data == "ol" {
				item.Nested = p.parseSemanticList(c)
				break
			}
		}
		list.Items = append(list.Items, item)
	}
	return list
}

// inlineItemText converts an li's own content, excluding any nested list.
func inlineItemText(li *html.Node) string {
	var sb strings.Builder
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
			continue
		}
		inlineNode(c, &sb)
	}
	return collapseInline(sb.String())
}
