package verify

import (
	"fmt"
	"strings"

	"diagrid/internal/diagram"
)

// border is one horizontal box border segment: '+', a run of '-' (with
// internal '+' junctions allowed), closed by '+'.
type border struct {
	Row   int
	Left  int
	Right int
}

func (b border) width() int { return b.Right - b.Left + 1 }

// box is a derived rectangle: two borders at identical columns with vertical
// (or label) material at both edge columns on every interior row. Boxes are
// recomputed on every verification pass, never cached.
type box struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

func (b box) width() int { return b.Right - b.Left + 1 }

// checkBoxes detects boxes, holds boxes in the same vertical band to a
// single width, and requires one space of padding inside either border on
// every label row.
func checkBoxes(d *diagram.Diagram, opts Options, rep *Report) {
	borders := findBorders(d)
	rep.Borders = len(borders)

	boxes := pairBorders(d, borders)
	checkBandWidths(boxes, opts.BandTolerance, rep)
	for _, bx := range boxes {
		checkPadding(d, bx, rep)
	}
}

// findBorders scans every line for +---+ segments, top to bottom, left to
// right.
func findBorders(d *diagram.Diagram) []border {
	var out []border
	for row := 1; row <= d.LineCount(); row++ {
		col := 1
		for col <= d.Width() {
			if d.At(row, col) != '+' {
				col++
				continue
			}
			end := col
			for n := col + 1; ; n++ {
				ch := d.At(row, n)
				if ch != '-' && ch != '+' {
					break
				}
				if ch == '+' {
					end = n
				}
			}
			if end-col >= 2 {
				out = append(out, border{Row: row, Left: col, Right: end})
				col = end + 1
			} else {
				col++
			}
		}
	}
	return out
}

// pairBorders matches each border with the nearest lower border sharing its
// exact column span, provided every row between them carries a '|' (or
// label content standing in for one) at both edge columns.
func pairBorders(d *diagram.Diagram, borders []border) []box {
	var out []box
	for i, top := range borders {
		for _, bottom := range borders[i+1:] {
			if bottom.Row <= top.Row {
				continue
			}
			if bottom.Left != top.Left || bottom.Right != top.Right {
				continue
			}
			if !edgesHold(d, top, bottom) {
				continue
			}
			out = append(out, box{Top: top.Row, Bottom: bottom.Row, Left: top.Left, Right: top.Right})
			break
		}
	}
	return out
}

func edgesHold(d *diagram.Diagram, top, bottom border) bool {
	for row := top.Row + 1; row < bottom.Row; row++ {
		for _, col := range []int{top.Left, top.Right} {
			ch := d.At(row, col)
			if ch == '|' || ch == '+' {
				continue
			}
			// Label content is tolerated directly at the edge column only;
			// a space means the side of the box is open.
			if ch == ' ' {
				return false
			}
		}
	}
	return true
}

// checkBandWidths groups boxes into bands by top row (within tolerance) and
// flags width mismatches inside each band against the band's first box.
func checkBandWidths(boxes []box, tolerance int, rep *Report) {
	i := 0
	for i < len(boxes) {
		anchor := boxes[i]
		j := i + 1
		for j < len(boxes) && boxes[j].Top-anchor.Top <= tolerance {
			j++
		}
		for _, bx := range boxes[i+1 : j] {
			if bx.width() == anchor.width() {
				continue
			}
			rep.Violations = append(rep.Violations, Violation{
				Check:   CheckBox,
				Pos:     diagram.Pos{Line: bx.Top, Col: bx.Left},
				Related: []diagram.Pos{{Line: anchor.Top, Col: anchor.Left}},
				Message: fmt.Sprintf("box width %d differs from box at Ln %d col %d (width %d) in the same band",
					bx.width(), anchor.Top, anchor.Left, anchor.width()),
			})
		}
		i = j
	}
}

// checkPadding requires at least one space between each border column and
// the label text on every interior row that carries label text.
func checkPadding(d *diagram.Diagram, bx box, rep *Report) {
	for row := bx.Top + 1; row < bx.Bottom; row++ {
		var content strings.Builder
		for col := bx.Left + 1; col < bx.Right; col++ {
			content.WriteRune(d.At(row, col))
		}
		inner := content.String()
		trimmed := strings.TrimSpace(inner)
		if trimmed == "" {
			continue
		}
		// Connector notation inside a lane (e.g. sequence diagram arrows)
		// is not a label.
		switch trimmed[0] {
		case '-', '<', '>':
			continue
		}
		if !strings.HasPrefix(inner, " ") {
			rep.Violations = append(rep.Violations, Violation{
				Check:   CheckBox,
				Pos:     diagram.Pos{Line: row, Col: bx.Left},
				Related: []diagram.Pos{{Line: bx.Top, Col: bx.Left}},
				Message: fmt.Sprintf("missing left padding in box label (box at Ln %d col %d)", bx.Top, bx.Left),
			})
		}
		if !strings.HasSuffix(inner, " ") {
			rep.Violations = append(rep.Violations, Violation{
				Check:   CheckBox,
				Pos:     diagram.Pos{Line: row, Col: bx.Right},
				Related: []diagram.Pos{{Line: bx.Top, Col: bx.Left}},
				Message: fmt.Sprintf("missing right padding in box label (box at Ln %d col %d)", bx.Top, bx.Left),
			})
		}
	}
}
