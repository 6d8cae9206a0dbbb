package rst

import (
	"strings"
	"unicode/utf8"
)

// Wrap greedily packs whitespace-delimited words into lines of at most
// width characters. Embedded hard line breaks are paragraph boundaries:
// wrapping restarts after each one and blank segments survive as empty
// lines. A single word longer than the width stands alone on its own
// line, unbroken. A width of zero or less disables wrapping, splitting on
// hard breaks only.
func Wrap(text string, width int) []string {
	segments := strings.Split(text, "\n")
	if width <= 0 {
		return segments
	}

	var lines []string
	for _, seg := range segments {
		lines = append(lines, wrapSegment(seg, width, false)...)
	}
	return lines
}

// wrapCell wraps like Wrap but chops words longer than the width at the
// width boundary. Grid column math depends on no line ever exceeding the
// column width.
func wrapCell(text string, width int) []string {
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	var lines []string
	for _, seg := range strings.Split(text, "\n") {
		lines = append(lines, wrapSegment(seg, width, true)...)
	}
	return lines
}

func wrapSegment(seg string, width int, chop bool) []string {
	words := strings.Fields(seg)
	if len(words) == 0 {
		return []string{""}
	}

	if chop {
		words = chopLongWords(words, width)
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) <= width {
			line += " " + word
			continue
		}
		lines = append(lines, line)
		line = word
	}
	return append(lines, line)
}

func chopLongWords(words []string, width int) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		for len(word) > width {
			cut := width
			for cut > 0 && !utf8.RuneStart(word[cut]) {
				cut--
			}
			if cut == 0 {
				break
			}
			out = append(out, word[:cut])
			word = word[cut:]
		}
		out = append(out, word)
	}
	return out
}
