package directive

import (
	"strings"

	"github.com/ericb-bissell/rst-word-addin/model"
)

// ParseFields reads the raw text of a field-styled block into name/value
// fields, one per line. A line splits at its first "::"; both sides are
// trimmed, so "Status::" and "Status::\t" produce the same empty-valued
// field. The value is always present, never missing. A line without the
// separator becomes an empty-valued field named by the whole line. Blank
// lines are skipped.
func ParseFields(raw string) []model.Field {
	var fields []model.Field

	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, value, found := strings.Cut(line, "::")
		if !found {
			fields = append(fields, model.Field{Name: strings.TrimSpace(line)})
			continue
		}
		fields = append(fields, model.Field{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
		})
	}

	return fields
}

// RenderFields serializes fields as a flat RST field list, one
// ":Name: value" line per field.
func RenderFields(fields []model.Field) string {
	var sb strings.Builder
	for i, f := range fields {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(":")
		sb.WriteString(f.Name)
		sb.WriteString(":")
		if f.Value != "" {
			sb.WriteString(" ")
			sb.WriteString(f.Value)
		}
	}
	return sb.String()
}
