package wordhtml

import (
	"testing"

	"github.com/ericb-bissell/rst-word-addin/model"
)

func TestBuildTable_HeaderRowInference(t *testing.T) {
	src := `<table class=MsoTableGrid>
<tr><th>Name</th><th>Qty</th></tr>
<tr><td>Bolt</td><td>42</td></tr>
</table>`

	p := newTestParser()
	tbl := p.buildTable(firstBlock(t, src))

	if !tbl.Options.HasHeader {
		t.Error("HasHeader = false, want true")
	}
	if !tbl.Rows[0].IsHeader {
		t.Error("row 0 IsHeader = false, want true")
	}
	if tbl.Rows[1].IsHeader {
		t.Error("row 1 IsHeader = true, want false")
	}
	if tbl.Rows[0].Cells[0].Content != "Name" {
		t.Errorf("cell = %q", tbl.Rows[0].Cells[0].Content)
	}
	if tbl.StyleName != "MsoTableGrid" {
		t.Errorf("StyleName = %q", tbl.StyleName)
	}
}

func TestBuildTable_TheadSection(t *testing.T) {
	src := `<table>
<thead><tr><td>A</td><td>B</td></tr></thead>
<tbody><tr><td>1</td><td>2</td></tr></tbody>
</table>`

	p := newTestParser()
	tbl := p.buildTable(firstBlock(t, src))

	if !tbl.Rows[0].IsHeader {
		t.Error("thead row not marked as header")
	}
	if tbl.Rows[1].IsHeader {
		t.Error("tbody row marked as header")
	}
}

func TestBuildTable_NoHeader(t *testing.T) {
	src := `<table><tr><td>a</td></tr><tr><td>b</td></tr></table>`

	p := newTestParser()
	tbl := p.buildTable(firstBlock(t, src))

	if tbl.Options.HasHeader {
		t.Error("HasHeader = true for all-td table")
	}
}

func TestBuildTable_MixedFirstRowNotHeader(t *testing.T) {
	src := `<table><tr><th>label</th><td>value</td></tr></table>`

	p := newTestParser()
	tbl := p.buildTable(firstBlock(t, src))

	if tbl.Rows[0].IsHeader {
		t.Error("row with mixed th/td cells marked as header")
	}
}

func TestBuildTable_Spans(t *testing.T) {
	src := `<table>
<tr><td colspan=2>wide</td><td>x</td></tr>
<tr><td rowspan=2>tall</td><td>a</td><td>b</td></tr>
<tr><td>c</td><td>d</td></tr>
</table>`

	p := newTestParser()
	tbl := p.buildTable(firstBlock(t, src))

	if got := tbl.Rows[0].Cells[0].ColSpan; got != 2 {
		t.Errorf("ColSpan = %d, want 2", got)
	}
	if got := tbl.Rows[1].Cells[0].RowSpan; got != 2 {
		t.Errorf("RowSpan = %d, want 2", got)
	}
	if got := tbl.ColCount(); got != 3 {
		t.Errorf("ColCount = %d, want 3", got)
	}
}

func TestBuildTable_CellAlignment(t *testing.T) {
	src := `<table><tr>
<td align=right>1</td>
<td style='text-align:center'>2</td>
<td>3</td>
</tr></table>`

	p := newTestParser()
	tbl := p.buildTable(firstBlock(t, src))

	cells := tbl.Rows[0].Cells
	if cells[0].Align != model.CellAlignRight {
		t.Errorf("cell 0 align = %v, want right", cells[0].Align)
	}
	if cells[1].Align != model.CellAlignCenter {
		t.Errorf("cell 1 align = %v, want center", cells[1].Align)
	}
	if cells[2].Align != model.CellAlignDefault {
		t.Errorf("cell 2 align = %v, want default", cells[2].Align)
	}
}

func TestBuildTable_NumberedCaption(t *testing.T) {
	src := `<table>
<caption>Table 2.1: Fastener sizes</caption>
<tr><td>x</td></tr>
</table>`

	p := newTestParser()
	tbl := p.buildTable(firstBlock(t, src))

	if tbl.Options.Caption != "Fastener sizes" {
		t.Errorf("Caption = %q", tbl.Options.Caption)
	}
	if tbl.Options.TableNumber != "2.1" {
		t.Errorf("TableNumber = %q", tbl.Options.TableNumber)
	}
	if tbl.Options.Name != "table-2-1" {
		t.Errorf("Name = %q", tbl.Options.Name)
	}
}

func TestBuildTable_PlainCaption(t *testing.T) {
	src := `<table><caption>Sizes at a glance</caption><tr><td>x</td></tr></table>`

	p := newTestParser()
	tbl := p.buildTable(firstBlock(t, src))

	if tbl.Options.Caption != "Sizes at a glance" {
		t.Errorf("Caption = %q", tbl.Options.Caption)
	}
	if tbl.Options.TableNumber != "" {
		t.Errorf("TableNumber = %q, want empty", tbl.Options.TableNumber)
	}
}

func TestBuildTable_CellInlineMarkup(t *testing.T) {
	src := `<table><tr><td>run <code>make</code> <b>now</b></td></tr></table>`

	p := newTestParser()
	tbl := p.buildTable(firstBlock(t, src))

	want := "run ``make`` **now**"
	if got := tbl.Rows[0].Cells[0].Content; got != want {
		t.Errorf("cell content = %q, want %q", got, want)
	}
}

func TestIsLayoutTable(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{
			name: "image positioning table",
			src:  `<table cellpadding=0 cellspacing=0><tr><td><img src="a.png"></td></tr></table>`,
			want: true,
		},
		{
			name: "grid class is always content",
			src:  `<table class=MsoTableGrid cellpadding=0 cellspacing=0><tr><td><img src="a.png"></td></tr></table>`,
			want: false,
		},
		{
			name: "text content",
			src:  `<table cellpadding=0 cellspacing=0><tr><td><img src="a.png">label</td></tr></table>`,
			want: false,
		},
		{
			name: "no images",
			src:  `<table cellpadding=0 cellspacing=0><tr><td></td></tr></table>`,
			want: false,
		},
		{
			name: "padded table",
			src:  `<table cellpadding=4 cellspacing=0><tr><td><img src="a.png"></td></tr></table>`,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isLayoutTable(firstBlock(t, tt.src)); got != tt.want {
				t.Errorf("isLayoutTable = %v, want %v", got, tt.want)
			}
		})
	}
}
