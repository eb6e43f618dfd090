package cli

import (
	"strings"
)

// table lays out rows in aligned columns under a header and a dashed rule.
type table struct {
	headers   []string
	rows      [][]string
	padding   int
	maxWidths map[int]int // wrap limit per column, 0 = none
}

func newTable(headers ...string) *table {
	return &table{
		headers:   headers,
		padding:   2,
		maxWidths: make(map[int]int),
	}
}

// setMaxWidth wraps column col at word boundaries once it exceeds width.
func (t *table) setMaxWidth(col, width int) {
	t.maxWidths[col] = width
}

// addRow appends a row, padding or truncating it to the header count.
func (t *table) addRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

func (t *table) render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// cells[row][col] holds the wrapped lines of each cell.
	cells := make([][][]string, len(t.rows))
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for r, row := range t.rows {
		cells[r] = make([][]string, len(row))
		for c, cell := range row {
			lines := wrapText(cell, t.maxWidths[c])
			cells[r][c] = lines
			for _, line := range lines {
				widths[c] = max(widths[c], len(line))
			}
		}
	}

	var b strings.Builder
	sep := strings.Repeat(" ", t.padding)
	writeLine := func(parts []string) {
		b.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
		b.WriteString("\n")
	}

	parts := make([]string, len(t.headers))
	for i, h := range t.headers {
		parts[i] = padRight(h, widths[i])
	}
	writeLine(parts)
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	writeLine(parts)

	for _, row := range cells {
		height := 1
		for _, lines := range row {
			height = max(height, len(lines))
		}
		for l := 0; l < height; l++ {
			for c := range t.headers {
				text := ""
				if l < len(row[c]) {
					text = row[c][l]
				}
				parts[c] = padRight(text, widths[c])
			}
			writeLine(parts)
		}
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapText breaks text into lines of at most width bytes at word boundaries,
// splitting words that are longer than width.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range words {
		for len(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
