package reportfmt

import (
	"fmt"
	"io"

	"diagrid/internal/diagram"
)

// Columns prints the column index of every structural character on one
// 1-based line, for manual cross-checking of a diagram under construction.
// It never affects pass/fail.
func Columns(w io.Writer, d *diagram.Diagram, lineNum int) error {
	if lineNum < 1 || lineNum > d.LineCount() {
		return fmt.Errorf("line %d out of range (have %d lines)", lineNum, d.LineCount())
	}
	line := d.Line(lineNum)
	fmt.Fprintf(w, "Line %d: %s\n", lineNum, line)
	fmt.Fprintln(w, "Columns:")
	for i, ch := range []rune(line) {
		switch diagram.Classify(ch) {
		case diagram.KindJunction, diagram.KindHorizontal, diagram.KindVertical,
			diagram.KindArrow, diagram.KindDiagonal:
			fmt.Fprintf(w, "  col %d: %q\n", i+1, string(ch))
		}
	}
	return nil
}
