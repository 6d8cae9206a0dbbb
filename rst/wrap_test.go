package rst

import (
	"reflect"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits on one line", "one two three", 20, []string{"one two three"}},
		{"greedy packing", "one two three", 9, []string{"one two", "three"}},
		{"width zero disables", "one two three", 0, []string{"one two three"}},
		{"long word stands alone", "a verylongword b", 6, []string{"a", "verylongword", "b"}},
		{"hard break restarts", "first part\nsecond part", 20, []string{"first part", "second part"}},
		{"blank segment survives", "a\n\nb", 10, []string{"a", "", "b"}},
		{"collapses internal runs", "a   b", 10, []string{"a b"}},
		{"empty input", "", 10, []string{""}},
	}

	for _, tt := range tests {
		if got := Wrap(tt.text, tt.width); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: Wrap(%q, %d) = %q, want %q", tt.name, tt.text, tt.width, got, tt.want)
		}
	}
}

// wrapCell chops words longer than the width so no line can exceed it; the
// cut never lands inside a multibyte rune.
func TestWrapCell(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"chops long word", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"short word unchanged", "ab cd", 5, []string{"ab cd"}},
		{"multibyte cut lands on rune boundary", "“““", 3, []string{"“", "“", "“"}},
		{"width zero splits on breaks only", "a b\nc", 0, []string{"a b", "c"}},
	}

	for _, tt := range tests {
		got := wrapCell(tt.text, tt.width)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: wrapCell(%q, %d) = %q, want %q", tt.name, tt.text, tt.width, got, tt.want)
		}
		if tt.width > 0 {
			for _, line := range got {
				if len(line) > tt.width && len([]rune(line)) > 1 {
					t.Errorf("%s: line %q exceeds width %d", tt.name, line, tt.width)
				}
			}
		}
	}
}
