package diagram

import "strings"

// Diagram is an ordered, read-only sequence of text lines as received from
// arbitrary input. Lines may have differing lengths; reads outside any line
// resolve to spaces, so callers never deal with ragged right edges.
type Diagram struct {
	lines [][]rune
	raw   []string
	width int
}

// FromText builds a Diagram by splitting text on newlines. Trailing blank
// lines are dropped; everything else is kept verbatim.
func FromText(text string) *Diagram {
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return FromLines(lines)
}

// FromLines builds a Diagram from already-split lines. The slice is copied;
// the Diagram never aliases or mutates caller memory.
func FromLines(lines []string) *Diagram {
	d := &Diagram{
		lines: make([][]rune, len(lines)),
		raw:   make([]string, len(lines)),
	}
	for i, l := range lines {
		rs := []rune(l)
		d.lines[i] = rs
		d.raw[i] = l
		if len(rs) > d.width {
			d.width = len(rs)
		}
	}
	return d
}

// LineCount returns the number of lines.
func (d *Diagram) LineCount() int { return len(d.lines) }

// Width returns the width of the longest line in runes.
func (d *Diagram) Width() int { return d.width }

// Line returns the raw text of the 1-based line n, or "" when out of range.
func (d *Diagram) Line(n int) string {
	if n < 1 || n > len(d.raw) {
		return ""
	}
	return d.raw[n-1]
}

// At returns the rune at 1-based (row, col). Positions outside the diagram,
// including the ragged region past a short line's end, read as ' '.
func (d *Diagram) At(row, col int) rune {
	if row < 1 || row > len(d.lines) || col < 1 {
		return ' '
	}
	line := d.lines[row-1]
	if col > len(line) {
		return ' '
	}
	return line[col-1]
}

// Lines returns a copy of the raw lines.
func (d *Diagram) Lines() []string {
	out := make([]string, len(d.raw))
	copy(out, d.raw)
	return out
}
