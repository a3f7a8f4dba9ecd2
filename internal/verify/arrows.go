package verify

import (
	"fmt"

	"diagrid/internal/diagram"
)

// structuralCell reports whether a cell can anchor an arrow: line material,
// junctions, and other arrows all qualify.
func structuralCell(ch rune) bool {
	switch ch {
	case '+', '-', '|', '^', 'v', '<', '>':
		return true
	}
	return false
}

// checkArrows verifies that every arrow is anchored on its backward side,
// the cell it points away from. The forward side may legitimately be open
// space; a missing '+' on a forward border row is the junction audit's
// finding, not this one's.
func checkArrows(d *diagram.Diagram, rep *Report) {
	for row := 1; row <= d.LineCount(); row++ {
		for col := 1; col <= d.Width(); col++ {
			ch := d.At(row, col)
			back, ok := diagram.ArrowBackward[ch]
			if !ok {
				continue
			}
			if (ch == '^' || ch == 'v') && !d.IsStructural(row, col) {
				continue
			}
			rep.Arrows++
			if structuralCell(d.At(row+back.DRow, col+back.DCol)) {
				continue
			}
			rep.Violations = append(rep.Violations, Violation{
				Check:   CheckArrow,
				Pos:     diagram.Pos{Line: row, Col: col},
				Message: fmt.Sprintf("floating arrow %q (nothing on its backward side)", string(ch)),
			})
		}
	}
}
