package rst

import (
	"strings"

	"github.com/ericb-bissell/rst-word-addin/model"
)

const (
	minColumnWidth = 3
	maxColumnWidth = 40
)

// renderGrid serializes a table in grid syntax. Column widths come from
// wrapped line lengths: every cell is wrapped at the cap first and the
// longest wrapped line of each column, clamped to [minColumnWidth,
// maxColumnWidth], becomes the column width. Measuring raw cell text
// instead would misalign columns whenever a cell wraps.
//
// Spanned cells are expanded into their top-left cell plus empty
// continuation cells, keeping the grid rectangular. A = border follows the
// last header row; every other row is followed by a - border. Every output
// line has identical length.
func renderGrid(t *model.Table) string {
	cols := t.ColCount()
	if cols == 0 || len(t.Rows) == 0 {
		return ""
	}

	cells := expandSpans(t, cols)

	widths := make([]int, cols)
	for c := range widths {
		widths[c] = minColumnWidth
	}
	for _, row := range cells {
		for c, cell := range row {
			for _, line := range wrapCell(cell.Content, maxColumnWidth) {
				if len(line) > widths[c] {
					widths[c] = len(line)
				}
			}
		}
	}

	headerRows := headerRowCount(t)

	var sb strings.Builder
	dashBorder := gridBorder(widths, '-')
	sb.WriteString(dashBorder)

	for r, row := range cells {
		wrapped := make([][]string, cols)
		height := 1
		for c, cell := range row {
			wrapped[c] = wrapCell(cell.Content, widths[c])
			if len(wrapped[c]) > height {
				height = len(wrapped[c])
			}
		}

		for line := 0; line < height; line++ {
			sb.WriteString("\n|")
			for c := 0; c < cols; c++ {
				text := ""
				if line < len(wrapped[c]) {
					text = wrapped[c][line]
				}
				sb.WriteString(" ")
				sb.WriteString(padCell(text, widths[c], row[c].Align))
				sb.WriteString(" |")
			}
		}

		sb.WriteString("\n")
		if r == headerRows-1 {
			sb.WriteString(gridBorder(widths, '='))
		} else {
			sb.WriteString(dashBorder)
		}
	}

	return sb.String()
}

// expandSpans lays the table out on a rectangular grid. A spanning cell
// occupies its top-left position; the remaining positions it covers get
// empty continuation cells sharing its alignment. Missing trailing cells
// are filled so every row is exactly cols wide.
func expandSpans(t *model.Table, cols int) [][]*model.TableCell {
	grid := make([][]*model.TableCell, len(t.Rows))
	for r := range grid {
		grid[r] = make([]*model.TableCell, cols)
	}

	for r, row := range t.Rows {
		c := 0
		for _, cell := range row.Cells {
			for c < cols && grid[r][c] != nil {
				c++
			}
			if c >= cols {
				break
			}
			grid[r][c] = cell

			colSpan := cell.ColSpan
			if colSpan < 1 {
				colSpan = 1
			}
			rowSpan := cell.RowSpan
			if rowSpan < 1 {
				rowSpan = 1
			}
			for dr := 0; dr < rowSpan && r+dr < len(grid); dr++ {
				for dc := 0; dc < colSpan && c+dc < cols; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if grid[r+dr][c+dc] == nil {
						grid[r+dr][c+dc] = &model.TableCell{Align: cell.Align}
					}
				}
			}
			c += colSpan
		}

		for j := 0; j < cols; j++ {
			if grid[r][j] == nil {
				grid[r][j] = &model.TableCell{}
			}
		}
	}

	return grid
}

// headerRowCount returns how many leading rows form the header section.
func headerRowCount(t *model.Table) int {
	n := 0
	for _, row := range t.Rows {
		if !row.IsHeader {
			break
		}
		n++
	}
	if n == 0 && t.Options.HasHeader && len(t.Rows) > 1 {
		n = 1
	}
	return n
}

func gridBorder(widths []int, ch byte) string {
	var sb strings.Builder
	sb.WriteString("+")
	for _, w := range widths {
		sb.WriteString(strings.Repeat(string(ch), w+2))
		sb.WriteString("+")
	}
	return sb.String()
}

func padCell(text string, width int, align model.CellAlignment) string {
	gap := width - len(text)
	if gap <= 0 {
		return text
	}
	switch align {
	case model.CellAlignRight:
		return strings.Repeat(" ", gap) + text
	case model.CellAlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	default:
		return text + strings.Repeat(" ", gap)
	}
}
