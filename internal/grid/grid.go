// Package grid builds ASCII diagram lines with exact 1-based column
// placement, eliminating the string-splicing arithmetic that produces
// off-by-one borders.
package grid

import "strings"

// Grid creates fixed-width line buffers. The width is set once at
// construction and shared by every line the grid produces; the grid itself
// holds no other state and does not retain the lines it hands out.
type Grid struct {
	width int
}

// New returns a Grid of the given width.
func New(width int) (*Grid, error) {
	if width < 1 {
		return nil, &InvalidWidthError{Width: width}
	}
	return &Grid{width: width}, nil
}

// Width returns the declared line width.
func (g *Grid) Width() int { return g.width }

// Line is a mutable buffer of exactly Width cells, addressed 1..Width.
// Cells start as spaces; trailing spaces are stripped only by Emit, never
// during construction, so a later Put into a trimmed region still works.
type Line struct {
	cells []rune
}

// NewLine returns a space-filled line of the grid's width.
func (g *Grid) NewLine() *Line {
	cells := make([]rune, g.width)
	for i := range cells {
		cells[i] = ' '
	}
	return &Line{cells: cells}
}

// Put overwrites line[col..col+len(text)-1] with text, mutating the line in
// place so repeated placements compose without re-threading return values.
func (g *Grid) Put(line *Line, col int, text string) error {
	runes := []rune(text)
	end := col + len(runes) - 1
	if col < 1 || end > g.width {
		return &OutOfBoundsError{Start: col, End: end, Width: g.width}
	}
	copy(line.cells[col-1:], runes)
	return nil
}

// Fill sets every cell in the inclusive range colStart..colEnd to ch.
func (g *Grid) Fill(line *Line, colStart, colEnd int, ch rune) error {
	if colStart > colEnd || colStart < 1 || colEnd > g.width {
		return &OutOfBoundsError{Start: colStart, End: colEnd, Width: g.width}
	}
	for c := colStart; c <= colEnd; c++ {
		line.cells[c-1] = ch
	}
	return nil
}

// HLine draws a horizontal border: '+' at both endpoints, '-' strictly
// between. A border needs at least two corners, so colEnd must exceed
// colStart.
func (g *Grid) HLine(line *Line, colStart, colEnd int) error {
	if colStart < 1 || colEnd > g.width || colStart > colEnd {
		return &OutOfBoundsError{Start: colStart, End: colEnd, Width: g.width}
	}
	if colEnd-colStart < 1 {
		return &DegenerateRangeError{Start: colStart, End: colEnd}
	}
	line.cells[colStart-1] = '+'
	for c := colStart + 1; c < colEnd; c++ {
		line.cells[c-1] = '-'
	}
	line.cells[colEnd-1] = '+'
	return nil
}

// Ruler returns two advisory lines for planning columns: the first holds the
// tens digit of each column number (blank below column 10), the second the
// units digit.
func (g *Grid) Ruler() (*Line, *Line) {
	tens := g.NewLine()
	units := g.NewLine()
	for col := 1; col <= g.width; col++ {
		if col >= 10 {
			tens.cells[col-1] = rune('0' + (col/10)%10)
		}
		units.cells[col-1] = rune('0' + col%10)
	}
	return tens, units
}

// Emit renders the line with trailing spaces removed. Leading and internal
// spaces are preserved exactly; this is the only place trimming happens.
func (g *Grid) Emit(line *Line) string {
	return strings.TrimRight(string(line.cells), " ")
}
