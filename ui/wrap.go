package ui

import "github.com/mattn/go-runewidth"

// row is one display line: buffer positions [start, end).
type row struct {
	start, end int
}

func cellWidth(r rune) int {
	switch r {
	case '\t':
		return 1
	case '\r':
		return 0
	}
	return runewidth.RuneWidth(r)
}

// wrapRows breaks text into rows at most width cells wide. Line breaks end a
// row and are not part of it; a trailing line break does not start a new row.
func wrapRows(text []rune, width int) []row {
	if width < 1 {
		width = 1
	}
	var rows []row
	start, cells := 0, 0
	for i, r := range text {
		if r == '\n' {
			rows = append(rows, row{start, i})
			start, cells = i+1, 0
			continue
		}
		w := cellWidth(r)
		if cells+w > width && i > start {
			rows = append(rows, row{start, i})
			start, cells = i, 0
		}
		cells += w
	}
	if start < len(text) {
		rows = append(rows, row{start, len(text)})
	}
	return rows
}

// positionInRow returns the buffer position drawn at cell col of rw.
func positionInRow(text []rune, rw row, col int) (int, bool) {
	if col < 0 {
		return 0, false
	}
	cells := 0
	for pos := rw.start; pos < rw.end; pos++ {
		w := cellWidth(text[pos])
		if w == 0 {
			continue
		}
		if col < cells+w {
			return pos, true
		}
		cells += w
	}
	return 0, false
}
