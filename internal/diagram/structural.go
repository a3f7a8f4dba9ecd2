package diagram

import "unicode"

// IsStructural reports whether the '^' or 'v' at 1-based (row, col) is a
// diagram connector rather than part of label text such as "Server" or
// "Environment". '|' is always structural.
//
// A '^'/'v' flanked by letters on both sides, or sitting at the edge of a
// run of two or more letters, is treated as label text.
func (d *Diagram) IsStructural(row, col int) bool {
	ch := d.At(row, col)
	if ch == '|' {
		return true
	}
	if ch != '^' && ch != 'v' {
		return false
	}

	left := d.At(row, col-1)
	right := d.At(row, col+1)
	leftAlpha := unicode.IsLetter(left)
	rightAlpha := unicode.IsLetter(right)

	if leftAlpha && rightAlpha {
		return false
	}
	if leftAlpha && d.letterRun(row, col-1, -1) >= 2 {
		return false
	}
	if rightAlpha && d.letterRun(row, col+1, +1) >= 2 {
		return false
	}
	return true
}

// letterRun counts consecutive letters starting at (row, col) and walking in
// direction step (-1 left, +1 right).
func (d *Diagram) letterRun(row, col, step int) int {
	n := 0
	for unicode.IsLetter(d.At(row, col)) {
		n++
		col += step
	}
	return n
}
