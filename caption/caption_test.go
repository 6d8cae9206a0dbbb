package caption

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantKind   Kind
		wantNumber string
		wantText   string
	}{
		{"figure with colon", "Figure 1: System Overview", Figure, "1", "System Overview"},
		{"table with colon", "Table 1: Sales", Table, "1", "Sales"},
		{"lowercase", "figure 2: results", Figure, "2", "results"},
		{"uppercase", "TABLE 3: TOTALS", Table, "3", "TOTALS"},
		{"fig abbreviation", "Fig. 4 Overview", Figure, "4", "Overview"},
		{"fig without period", "Fig 5: Pipeline", Figure, "5", "Pipeline"},
		{"dotted number", "Table 2.3: Quarterly Results", Table, "2.3", "Quarterly Results"},
		{"dashed number", "Figure 1-2: Detail", Figure, "1-2", "Detail"},
		{"em dash separator", "Table 2.3 — Results", Table, "2.3", "Results"},
		{"en dash separator", "Figure 7 – Flow", Figure, "7", "Flow"},
		{"period separator", "Figure 3. Architecture", Figure, "3", "Architecture"},
		{"hyphen separator", "Table 4 - Breakdown", Table, "4", "Breakdown"},
		{"no separator", "Figure 6 Data Path", Figure, "6", "Data Path"},
		{"no text", "Table 9:", Table, "9", ""},
		{"number only", "Figure 10", Figure, "10", ""},
		{"leading whitespace", "  Table 1: Sales", Table, "1", "Sales"},
		{"trailing whitespace", "Table 1: Sales  ", Table, "1", "Sales"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.text)
			if !ok {
				t.Fatalf("Parse(%q) did not match", tt.text)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Number != tt.wantNumber {
				t.Errorf("Number = %q, want %q", got.Number, tt.wantNumber)
			}
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
		})
	}
}

func TestParse_NonCaptions(t *testing.T) {
	tests := []string{
		"",
		"Just a paragraph about figures.",
		"Figurine 1: Not a figure",
		"Table",
		"Figure : missing number",
		"Table X: letters are not numbers",
		"The Table 1 reference mid-sentence",
	}

	for _, text := range tests {
		if got, ok := Parse(text); ok {
			t.Errorf("Parse(%q) matched as %+v, want no match", text, got)
		}
	}
}

func TestMatches(t *testing.T) {
	if !Matches("Figure 1: X") {
		t.Error("Matches(Figure 1: X) = false, want true")
	}
	if Matches("No caption here") {
		t.Error("Matches(No caption here) = true, want false")
	}
}

func TestRefName(t *testing.T) {
	tests := []struct {
		caption Caption
		want    string
	}{
		{Caption{Kind: Figure, Number: "1"}, "figure-1"},
		{Caption{Kind: Table, Number: "1"}, "table-1"},
		{Caption{Kind: Table, Number: "2.3"}, "table-2-3"},
		{Caption{Kind: Figure, Number: "1-2"}, "figure-1-2"},
	}

	for _, tt := range tests {
		if got := tt.caption.RefName(); got != tt.want {
			t.Errorf("RefName(%+v) = %q, want %q", tt.caption, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Figure, "Figure"},
		{Table, "Table"},
		{Unknown, "Unknown"},
		{Kind(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
