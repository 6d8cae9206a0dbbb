package wordhtml

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/ericb-bissell/rst-word-addin/caption"
	"github.com/ericb-bissell/rst-word-addin/model"
)

// isLayoutTable distinguishes tables used purely to position images from
// tables that convey data: zero cell padding and spacing, at least one
// image, no text content, and no grid-styling class (MsoTableGrid and
// friends always mean a content table).
func isLayoutTable(n *html.Node) bool {
	if strings.Contains(strings.ToLower(attrVal(n, "class")), "grid") {
		return false
	}
	if attrVal(n, "cellpadding") != "0" || attrVal(n, "cellspacing") != "0" {
		return false
	}
	if len(imageNodes(n)) == 0 {
		return false
	}
	return rawText(n) == ""
}

// buildTable converts a content table to the table model: header row
// detection, per-cell span and alignment, and the table-level caption.
func (p *parser) buildTable(n *html.Node) *model.Table {
	t := &model.Table{Origin: model.Origin{StyleName: styleName(n)}}

	var captionText string

	var walkSection func(*html.Node, bool)
	walkSection = func(section *html.Node, inHead bool) {
		for _, c := range elementChildren(section) {
			switch c.Data {
			case "caption":
				captionText = rawText(c)
			case "thead":
				walkSection(c, true)
			case "tbody", "tfoot":
				walkSection(c, inHead)
			case "tr":
				t.Rows = append(t.Rows, parseTableRow(c, inHead))
			}
		}
	}
	walkSection(n, false)

	for _, row := range t.Rows {
		if row.IsHeader {
			t.Options.HasHeader = true
			break
		}
	}

	if captionText != "" {
		applyTableCaption(t, captionText)
	}
	if v := attrVal(n, "align"); v != "" {
		t.Options.Align = strings.ToLower(v)
	}
	return t
}

// applyTableCaption parses caption text through the caption grammar. A
// recognized table caption contributes its number and a normalized
// cross-reference name; anything else is carried verbatim.
func applyTableCaption(t *model.Table, text string) {
	if c, ok := caption.Parse(text); ok && c.Kind == caption.Table {
		t.Options.Caption = c.Text
		t.Options.TableNumber = c.Number
		t.Options.Name = c.RefName()
		return
	}
	t.Options.Caption = text
}

// parseTableRow builds one row. A row is a header row when it sits inside
// thead or when every cell in it is a th element.
func parseTableRow(tr *html.Node, inHead bool) *model.TableRow {
	row := &model.TableRow{IsHeader: inHead}
	allTH := true
	for _, c := range elementChildren(tr) {
		if c.Data != "td" && c.Data != "th" {
			continue
		}
		if c.Data != "th" {
			allTH = false
		}
		cell := &model.TableCell{
			Content: inlineText(c),
			Align:   cellAlignment(c),
		}
		if v, err := strconv.Atoi(attrVal(c, "colspan")); err == nil && v > 1 {
			cell.ColSpan = v
		}
		if v, err := strconv.Atoi(attrVal(c, "rowspan")); err == nil && v > 1 {
			cell.RowSpan = v
		}
		row.Cells = append(row.Cells, cell)
	}
	if len(row.Cells) > 0 && allTH {
		row.IsHeader = true
	}
	return row
}

// cellAlignment reads alignment from the align attribute or a text-align
// style declaration.
func cellAlignment(n *html.Node) model.CellAlignment {
	v := attrVal(n, "align")
	if v == "" {
		v = styleVal(n, "text-align")
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "left":
		return model.CellAlignLeft
	case "center":
		return model.CellAlignCenter
	case "right":
		return model.CellAlignRight
	}
	return model.CellAlignDefault
}
