package model

import "strings"

// CellAlignment represents horizontal cell alignment
type CellAlignment int

const (
	CellAlignDefault CellAlignment = iota
	CellAlignLeft
	CellAlignCenter
	CellAlignRight
)

func (ca CellAlignment) String() string {
	switch ca {
	case CellAlignLeft:
		return "left"
	case CellAlignCenter:
		return "center"
	case CellAlignRight:
		return "right"
	default:
		return ""
	}
}

// TableCell represents a single cell. ColSpan and RowSpan default to 1 when
// zero.
type TableCell struct {
	Content string
	ColSpan int
	RowSpan int
	Align   CellAlignment
}

// TableRow represents one table row
type TableRow struct {
	Cells    []*TableCell
	IsHeader bool
}

// TableOptions carries the table-level directive options.
type TableOptions struct {
	Caption     string
	TableNumber string
	Align       string
	Width       string
	Widths      string
	Class       string
	Name        string
	HasHeader   bool
}

// Table represents a table with cells organized in rows and columns
type Table struct {
	Origin
	Rows    []*TableRow
	Options TableOptions
}

func (t *Table) Kind() ElementKind { return ElementKindTable }

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the column count, accounting for column spans. A table
// is rectangular at this width even when individual rows carry fewer cells.
func (t *Table) ColCount() int {
	max := 0
	for _, row := range t.Rows {
		n := 0
		for _, cell := range row.Cells {
			span := cell.ColSpan
			if span < 1 {
				span = 1
			}
			n += span
		}
		if n > max {
			max = n
		}
	}
	return max
}

// PlainText returns the tab-separated cell text, rows joined by newlines.
// Useful for diagnostics and degraded output paths.
func (t *Table) PlainText() string {
	var sb strings.Builder
	for i, row := range t.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, cell := range row.Cells {
			if j > 0 {
				sb.WriteString("\t")
			}
			sb.WriteString(cell.Content)
		}
	}
	return sb.String()
}
