package verify

import (
	"fmt"

	"diagrid/internal/diagram"
)

// checkCharset flags every banned glyph. Purely per-character: it never
// consults neighbours.
func checkCharset(d *diagram.Diagram, opts Options, rep *Report) {
	extra := make(map[rune]bool, len(opts.BannedExtra))
	for _, r := range opts.BannedExtra {
		extra[r] = true
	}

	for row := 1; row <= d.LineCount(); row++ {
		line := []rune(d.Line(row))
		for col, ch := range line {
			if diagram.Classify(ch) != diagram.KindBanned && !extra[ch] {
				continue
			}
			rep.Violations = append(rep.Violations, Violation{
				Check:   CheckCharset,
				Pos:     diagram.Pos{Line: row, Col: col + 1},
				Message: fmt.Sprintf("banned char U+%04X %q", ch, string(ch)),
			})
		}
	}
}
