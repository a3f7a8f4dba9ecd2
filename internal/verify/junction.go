package verify

import (
	"fmt"

	"diagrid/internal/diagram"
)

// checkJunctions audits every vertical-family glyph ('|', '^', 'v') against
// the border rows it meets. Where the neighbour cell is horizontal border
// material it must be a '+': a '-' at that exact column is a missed
// junction. A blank neighbour cell with border material in the adjacent
// columns is a hole in the border and is flagged too. A blank cell with
// nothing near it is exempt: a free-floating vertical in open space is a
// connector, not a junction.
func checkJunctions(d *diagram.Diagram, rep *Report) {
	for row := 1; row <= d.LineCount(); row++ {
		for col := 1; col <= d.Width(); col++ {
			ch := d.At(row, col)
			deltas, ok := diagram.JunctionRows[ch]
			if !ok {
				continue
			}
			if !d.IsStructural(row, col) {
				continue
			}
			for _, dr := range deltas {
				nr := row + dr
				if nr < 1 || nr > d.LineCount() {
					continue
				}
				side := "below"
				if dr < 0 {
					side = "above"
				}
				switch d.At(nr, col) {
				case '+':
					rep.JunctionsOK++
				case '-':
					rep.Violations = append(rep.Violations, Violation{
						Check:   CheckJunction,
						Pos:     diagram.Pos{Line: row, Col: col},
						Related: []diagram.Pos{{Line: nr, Col: col}},
						Message: fmt.Sprintf("%q meets '-' %s (Ln %d) -- needs '+'", string(ch), side, nr),
					})
				case ' ':
					// Border material right beside the column with a hole at
					// it: an off-by-one junction, not a free-floating line.
					if !borderMaterial(d.At(nr, col-1)) && !borderMaterial(d.At(nr, col+1)) {
						continue
					}
					rep.Violations = append(rep.Violations, Violation{
						Check:   CheckJunction,
						Pos:     diagram.Pos{Line: row, Col: col},
						Related: []diagram.Pos{{Line: nr, Col: col}},
						Message: fmt.Sprintf("%q meets a gap in the border %s (Ln %d) -- needs '+'", string(ch), side, nr),
					})
				}
			}
		}
	}
}

func borderMaterial(ch rune) bool { return ch == '-' || ch == '+' }
