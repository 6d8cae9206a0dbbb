package wordhtml

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// attrVal returns the value of the named attribute, or "" when absent.
func attrVal(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}

// classes returns the node's class names. Word emits classes with
// inconsistent casing, so callers compare case-insensitively.
func classes(n *html.Node) []string {
	return strings.Fields(attrVal(n, "class"))
}

// styleVal extracts one property value from the inline style attribute.
// Property names match case-insensitively; the value is returned trimmed,
// "" when the property is absent.
func styleVal(n *html.Node, prop string) string {
	style := attrVal(n, "style")
	if style == "" {
		return ""
	}
	for _, decl := range strings.Split(style, ";") {
		name, value, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(name), prop) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// styleName picks the element's originating style name for Origin: the
// first class when present, the tag name otherwise.
func styleName(n *html.Node) string {
	if cls := classes(n); len(cls) > 0 {
		return cls[0]
	}
	return n.Data
}

var msoHeadingClassRe = regexp.MustCompile(`(?i)^(?:Mso)?Heading\s*([1-9])$`)

// headingLevel classifies heading indicators: an h1..h6 tag, a HeadingN or
// MsoHeadingN class, or an mso-outline-level style property. It returns 0
// when the node carries none of them. Levels above 6 are reported as
// written; the model constructor clamps.
func headingLevel(n *html.Node) int {
	if len(n.Data) == 2 && n.Data[0] == 'h' && n.Data[1] >= '1' && n.Data[1] <= '6' {
		return int(n.Data[1] - '0')
	}
	for _, c := range classes(n) {
		if m := msoHeadingClassRe.FindStringSubmatch(c); m != nil {
			level, _ := strconv.Atoi(m[1])
			return level
		}
	}
	if v := styleVal(n, "mso-outline-level"); v != "" {
		if level, err := strconv.Atoi(v); err == nil && level > 0 {
			return level
		}
	}
	return 0
}

// cssLengthPoints converts a CSS length such as "36.0pt", ".5in", or
// "48px" to printer's points. Unknown units and unparseable values yield
// zero.
func cssLengthPoints(v string) float64 {
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "" {
		return 0
	}

	factor := 1.0
	switch {
	case strings.HasSuffix(v, "pt"):
		v = v[:len(v)-2]
	case strings.HasSuffix(v, "in"):
		v, factor = v[:len(v)-2], 72
	case strings.HasSuffix(v, "px"):
		v, factor = v[:len(v)-2], 0.75
	case strings.HasSuffix(v, "cm"):
		v, factor = v[:len(v)-2], 72/2.54
	case strings.HasSuffix(v, "mm"):
		v, factor = v[:len(v)-2], 72/25.4
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f * factor
}

// isBlockQuote recognizes quote-shaped blocks: the blockquote tag, a
// quote-styled class (MsoQuote, MsoIntenseQuote), or a large uniform left
// margin without list styling, which is how Word renders indented quotes.
func isBlockQuote(n *html.Node) bool {
	if n.Data == "blockquote" {
		return true
	}
	for _, c := range classes(n) {
		if strings.Contains(strings.ToLower(c), "quote") {
			return true
		}
	}
	if isListParagraph(n) {
		return false
	}
	return cssLengthPoints(styleVal(n, "margin-left")) >= 36
}
