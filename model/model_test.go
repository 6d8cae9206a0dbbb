package model

import "testing"

// ============================================================================
// ElementKind Tests
// ============================================================================

func TestElementKindString(t *testing.T) {
	tests := []struct {
		kind ElementKind
		want string
	}{
		{ElementKindHeading, "Heading"},
		{ElementKindParagraph, "Paragraph"},
		{ElementKindList, "List"},
		{ElementKindImage, "Image"},
		{ElementKindFigure, "Figure"},
		{ElementKindTable, "Table"},
		{ElementKindTableOfContents, "TableOfContents"},
		{ElementKindCustomDirective, "CustomDirective"},
		{ElementKindFieldList, "FieldList"},
		{ElementKindUnknown, "Unknown"},
		{ElementKind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ElementKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestElementKinds(t *testing.T) {
	tests := []struct {
		name string
		elem Element
		want ElementKind
	}{
		{"heading", &Heading{}, ElementKindHeading},
		{"paragraph", &Paragraph{}, ElementKindParagraph},
		{"list", &List{}, ElementKindList},
		{"image", &Image{}, ElementKindImage},
		{"figure", &Figure{}, ElementKindFigure},
		{"table", &Table{}, ElementKindTable},
		{"toc", &TableOfContents{}, ElementKindTableOfContents},
		{"directive", &CustomDirective{}, ElementKindCustomDirective},
		{"field list", &FieldList{}, ElementKindFieldList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.elem.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOriginSource(t *testing.T) {
	h := &Heading{Origin: Origin{StyleName: "Heading1", Raw: "<h1>x</h1>"}, Level: 1, Text: "x"}
	src := h.Source()
	if src.StyleName != "Heading1" {
		t.Errorf("Source().StyleName = %q, want %q", src.StyleName, "Heading1")
	}
	if src.Raw != "<h1>x</h1>" {
		t.Errorf("Source().Raw = %q, want %q", src.Raw, "<h1>x</h1>")
	}
}

// ============================================================================
// Heading Tests
// ============================================================================

func TestNewHeadingClampsLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 1},
		{3, 3},
		{6, 6},
		{0, 1},
		{-2, 1},
		{7, 6},
		{99, 6},
	}

	for _, tt := range tests {
		h := NewHeading(tt.level, "Title")
		if h.Level != tt.want {
			t.Errorf("NewHeading(%d).Level = %d, want %d", tt.level, h.Level, tt.want)
		}
	}
}

// ============================================================================
// Table Tests
// ============================================================================

func TestTableColCount(t *testing.T) {
	tests := []struct {
		name  string
		table *Table
		want  int
	}{
		{"empty", &Table{}, 0},
		{
			"simple 2x3",
			&Table{Rows: []*TableRow{
				{Cells: []*TableCell{{}, {}, {}}},
				{Cells: []*TableCell{{}, {}, {}}},
			}},
			3,
		},
		{
			"colspan widens",
			&Table{Rows: []*TableRow{
				{Cells: []*TableCell{{ColSpan: 2}, {}}},
				{Cells: []*TableCell{{}, {}}},
			}},
			3,
		},
		{
			"ragged rows take max",
			&Table{Rows: []*TableRow{
				{Cells: []*TableCell{{}}},
				{Cells: []*TableCell{{}, {}, {}, {}}},
			}},
			4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.table.ColCount(); got != tt.want {
				t.Errorf("ColCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTablePlainText(t *testing.T) {
	table := &Table{Rows: []*TableRow{
		{Cells: []*TableCell{{Content: "a"}, {Content: "b"}}},
		{Cells: []*TableCell{{Content: "c"}, {Content: "d"}}},
	}}
	want := "a\tb\nc\td"
	if got := table.PlainText(); got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}

// ============================================================================
// CustomDirective Tests
// ============================================================================

func TestCustomDirectiveOptions(t *testing.T) {
	cd := &CustomDirective{Name: "code-block"}
	cd.SetOption("linenos", "")
	cd.SetOption("caption", "Example")
	cd.SetOption("linenos", "inline")

	if len(cd.Options) != 2 {
		t.Fatalf("len(Options) = %d, want 2", len(cd.Options))
	}
	if cd.Options[0].Name != "linenos" || cd.Options[1].Name != "caption" {
		t.Errorf("option order = [%s %s], want [linenos caption]",
			cd.Options[0].Name, cd.Options[1].Name)
	}
	if v, ok := cd.Option("linenos"); !ok || v != "inline" {
		t.Errorf("Option(linenos) = %q, %v, want %q, true", v, ok, "inline")
	}
	if _, ok := cd.Option("missing"); ok {
		t.Error("Option(missing) reported present, want absent")
	}
}

// ============================================================================
// Document Tests
// ============================================================================

func TestDocumentAddElement(t *testing.T) {
	doc := NewDocument()
	doc.AddElement(&Paragraph{Content: "one"})
	doc.AddElement(nil)
	doc.AddElement(NewHeading(2, "two"))

	if doc.ElementCount() != 2 {
		t.Errorf("ElementCount() = %d, want 2", doc.ElementCount())
	}
	if len(doc.Headings()) != 1 {
		t.Errorf("len(Headings()) = %d, want 1", len(doc.Headings()))
	}
}

func TestDocumentWarnf(t *testing.T) {
	doc := NewDocument()
	doc.Warnf("image %d: %s", 3, "no payload")

	if len(doc.Warnings) != 1 {
		t.Fatalf("len(Warnings) = %d, want 1", len(doc.Warnings))
	}
	want := Warning("image 3: no payload")
	if doc.Warnings[0] != want {
		t.Errorf("Warnings[0] = %q, want %q", doc.Warnings[0], want)
	}
}
