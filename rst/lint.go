package rst

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ericb-bissell/rst-word-addin/model"
)

// Lint scans rendered reStructuredText for markup likely to upset docutils:
// unpaired emphasis or literal markers on a line, a heading underline
// shorter than its text, and literal tab characters. It is best effort and
// advisory only; clean text returns nil. Line numbers are 1-based.
func Lint(text string) []model.Warning {
	if text == "" {
		return nil
	}

	var warnings []model.Warning
	warnf := func(format string, args ...any) {
		warnings = append(warnings, model.Warning(fmt.Sprintf(format, args...)))
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		n := i + 1

		if strings.Contains(line, "\t") {
			warnf("line %d: literal tab character", n)
		}

		if isAdornmentLine(line) {
			if i == 0 || isAdornmentLine(lines[i-1]) {
				continue
			}
			prev := strings.TrimRight(lines[i-1], " \t")
			if prev != "" && utf8.RuneCountInString(line) < utf8.RuneCountInString(prev) {
				warnf("line %d: heading underline shorter than its text", n)
			}
			continue
		}

		// Split on `` so markers inside literal spans don't count. An
		// even part count means an odd number of `` runs, so one is
		// unpaired; further marker checks on such a line are noise.
		parts := strings.Split(line, "``")
		if len(parts)%2 == 0 {
			warnf("line %d: unpaired `` marker", n)
			continue
		}
		var sb strings.Builder
		for j := 0; j < len(parts); j += 2 {
			sb.WriteString(parts[j])
		}
		outside := sb.String()

		if strings.Count(outside, "**")%2 != 0 {
			warnf("line %d: unpaired ** marker", n)
		}
		if strings.Count(strings.ReplaceAll(outside, "**", ""), "*")%2 != 0 {
			warnf("line %d: unpaired * marker", n)
		}
		if strings.Count(outside, "`")%2 != 0 {
			warnf("line %d: unpaired ` marker", n)
		}
	}

	return warnings
}

// adornmentChars are the characters accepted as section adornment lines:
// the six this package emits plus the other common docutils choices.
const adornmentChars = `=-~^"'#*+.` + "`"

// isAdornmentLine reports whether the line is a run of one repeated
// adornment character.
func isAdornmentLine(line string) bool {
	if line == "" {
		return false
	}
	first, size := utf8.DecodeRuneInString(line)
	if !strings.ContainsRune(adornmentChars, first) {
		return false
	}
	for _, r := range line[size:] {
		if r != first {
			return false
		}
	}
	return true
}
