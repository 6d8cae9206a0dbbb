package directive

import (
	"testing"

	"github.com/ericb-bissell/rst-word-addin/model"
)

func TestParseFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []model.Field
	}{
		{
			name: "empty value",
			raw:  "Status::",
			want: []model.Field{{Name: "Status", Value: ""}},
		},
		{
			name: "empty value with trailing tab",
			raw:  "Status::\t",
			want: []model.Field{{Name: "Status", Value: ""}},
		},
		{
			name: "name and value",
			raw:  "Author:: Jane Roe",
			want: []model.Field{{Name: "Author", Value: "Jane Roe"}},
		},
		{
			name: "tab separated value",
			raw:  "Version::\t2.1",
			want: []model.Field{{Name: "Version", Value: "2.1"}},
		},
		{
			name: "multiple fields with blank lines",
			raw:  "Status:: Draft\n\nDate:: 2024-03-01\nReviewer::",
			want: []model.Field{
				{Name: "Status", Value: "Draft"},
				{Name: "Date", Value: "2024-03-01"},
				{Name: "Reviewer", Value: ""},
			},
		},
		{
			name: "line without separator",
			raw:  "Orphan line",
			want: []model.Field{{Name: "Orphan line", Value: ""}},
		},
		{
			name: "value containing single colons",
			raw:  "Link:: https://example.com/page",
			want: []model.Field{{Name: "Link", Value: "https://example.com/page"}},
		},
		{
			name: "blank input",
			raw:  "\n  \n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFields(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%+v)", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("field[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// The same field name must yield the same empty value whether or not a
// trailing tab follows the separator.
func TestParseFields_TabInsensitive(t *testing.T) {
	withTab := ParseFields("Status::\t")
	without := ParseFields("Status::")

	if len(withTab) != 1 || len(without) != 1 {
		t.Fatalf("field counts = %d, %d, want 1, 1", len(withTab), len(without))
	}
	if withTab[0] != without[0] {
		t.Errorf("fields differ: %+v vs %+v", withTab[0], without[0])
	}
	if withTab[0].Value != "" {
		t.Errorf("Value = %q, want empty string", withTab[0].Value)
	}
}

func TestRenderFields(t *testing.T) {
	fields := []model.Field{
		{Name: "Status", Value: "Draft"},
		{Name: "Reviewer", Value: ""},
		{Name: "Date", Value: "2024-03-01"},
	}
	want := ":Status: Draft\n:Reviewer:\n:Date: 2024-03-01"
	if got := RenderFields(fields); got != want {
		t.Errorf("RenderFields() = %q, want %q", got, want)
	}
}
