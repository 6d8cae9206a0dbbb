package rst

import (
	"strings"
	"testing"

	"github.com/ericb-bissell/rst-word-addin/model"
)

func lintContains(t *testing.T, warnings []model.Warning, substr string) {
	t.Helper()
	for _, w := range warnings {
		if strings.Contains(string(w), substr) {
			return
		}
	}
	t.Errorf("warnings %v contain nothing matching %q", warnings, substr)
}

func TestLint_CleanTextPasses(t *testing.T) {
	text := strings.Join([]string{
		"Title",
		"=====",
		"",
		"A **bold** word, an *italic* one, and a ``literal``.",
		"",
		"- item with a :ref:`link <target>` inside",
	}, "\n")

	if got := Lint(text); got != nil {
		t.Errorf("warnings = %v, want none", got)
	}
}

func TestLint_Empty(t *testing.T) {
	if got := Lint(""); got != nil {
		t.Errorf("warnings = %v, want none", got)
	}
}

func TestLint_UnpairedStrong(t *testing.T) {
	got := Lint("An **unclosed marker here.")
	if len(got) != 1 {
		t.Fatalf("warnings = %v, want exactly one", got)
	}
	lintContains(t, got, "line 1: unpaired ** marker")
}

func TestLint_UnpairedEmphasis(t *testing.T) {
	got := Lint("one\nan *unclosed emphasis\nthree")
	lintContains(t, got, "line 2: unpaired * marker")
}

func TestLint_UnpairedLiteral(t *testing.T) {
	lintContains(t, Lint("a ``dangling literal"), "line 1: unpaired `` marker")
	lintContains(t, Lint("a `dangling role"), "line 1: unpaired ` marker")
}

// Markers inside a literal span are verbatim text, not markup.
func TestLint_MarkersInsideLiteralIgnored(t *testing.T) {
	if got := Lint("escape it as ``*`` in source"); got != nil {
		t.Errorf("warnings = %v, want none", got)
	}
}

// Bold italic nests the markers; the line stays balanced.
func TestLint_NestedEmphasisBalanced(t *testing.T) {
	if got := Lint("some ***very strong*** text"); got != nil {
		t.Errorf("warnings = %v, want none", got)
	}
}

func TestLint_ShortUnderline(t *testing.T) {
	got := Lint("Long Heading\n====\n\nBody.")
	if len(got) != 1 {
		t.Fatalf("warnings = %v, want exactly one", got)
	}
	lintContains(t, got, "line 2: heading underline shorter than its text")
}

func TestLint_UnderlineRuneCount(t *testing.T) {
	if got := Lint("Résumé\n======"); got != nil {
		t.Errorf("warnings = %v, want none (underline matches rune count)", got)
	}
}

// An overline is preceded by a blank line or nothing, so only the closing
// line is measured against the text.
func TestLint_OverlinedHeadingPasses(t *testing.T) {
	if got := Lint("=====\nTitle\n====="); got != nil {
		t.Errorf("warnings = %v, want none", got)
	}
}

func TestLint_LiteralTab(t *testing.T) {
	got := Lint("ok line\nbad\tline")
	lintContains(t, got, "line 2: literal tab character")
}

// Grid table borders and rows carry no inline markers and are not
// adornment lines, so tables lint clean.
func TestLint_GridTablePasses(t *testing.T) {
	text := strings.Join([]string{
		"+-----+-----+",
		"| A   | B   |",
		"+=====+=====+",
		"| 1   | 2   |",
		"+-----+-----+",
	}, "\n")
	if got := Lint(text); got != nil {
		t.Errorf("warnings = %v, want none", got)
	}
}

func TestIsAdornmentLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"=====", true},
		{"-", true},
		{"~~~", true},
		{"'''", true},
		{"=-=", false},
		{"- item", false},
		{"", false},
		{"text", false},
	}
	for _, tt := range tests {
		if got := isAdornmentLine(tt.line); got != tt.want {
			t.Errorf("isAdornmentLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
