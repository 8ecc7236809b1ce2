package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// columnLabels maps internal column keys to header labels.
var columnLabels = map[string]string{
	"id":     "ID",
	"name":   "Ticket",
	"type":   "Tipo",
	"date":   "Data",
	"status": "Status",
}

// columnGutter is the padding added to every column width.
const columnGutter = 2

// Style decorates header cells. A nil Style leaves them plain.
type Style func(string) string

// ColumnLabel returns the header label for a column key.
func ColumnLabel(key string) string {
	if label, ok := columnLabels[key]; ok {
		return label
	}
	return key
}

// ColumnWidths returns the padded display width of each column: the
// widest of the header label and every cell, plus the gutter.
func ColumnWidths(columns []string, rows [][]string) []int {
	widths := make([]int, len(columns))
	for i, key := range columns {
		widths[i] = ansi.StringWidth(ColumnLabel(key))
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			widths[i] = max(widths[i], ansi.StringWidth(cell))
		}
	}
	for i := range widths {
		widths[i] += columnGutter
	}
	return widths
}

// RenderTable formats rows under title as a left-justified text table
// followed by a record count line.
func RenderTable(title string, columns []string, rows [][]string, style Style) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", title)

	if len(rows) == 0 {
		b.WriteString("Nenhum registro encontrado.\n")
		writeCount(&b, 0)
		return b.String()
	}

	widths := ColumnWidths(columns, rows)

	for i, key := range columns {
		cell := padRight(ColumnLabel(key), widths[i])
		if style != nil {
			cell = style(cell)
		}
		b.WriteString(cell)
	}
	b.WriteByte('\n')

	total := 0
	for _, w := range widths {
		total += w
	}
	b.WriteString(strings.Repeat("-", total))
	b.WriteByte('\n')

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			b.WriteString(padRight(cell, widths[i]))
		}
		b.WriteByte('\n')
	}

	writeCount(&b, len(rows))
	return b.String()
}

func writeCount(b *strings.Builder, n int) {
	fmt.Fprintf(b, "\n--- Exibindo %d registro(s) ---\n", n)
}

func padRight(s string, width int) string {
	if pad := width - ansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
