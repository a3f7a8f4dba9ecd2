package grid

import (
	"fmt"
	"strings"
)

// BoxBorder returns the top/bottom border string for a box around label:
// two corner columns plus the label length plus padding on each side.
// BoxBorder("Idle", 1) == "+------+".
func BoxBorder(label string, padding int) string {
	inner := padding*2 + len([]rune(label))
	return "+" + strings.Repeat("-", inner) + "+"
}

// BoxLabel returns a label row for a box of the given total width, with the
// label left-aligned behind one space of padding: BoxLabel("Idle", 8) ==
// "| Idle |". The label must leave at least one space before the right
// border.
func BoxLabel(label string, width int) (string, error) {
	inner := width - 2
	need := len([]rune(label)) + 2
	if need > inner {
		return "", fmt.Errorf("label %q does not fit in box width %d", label, width)
	}
	return "|" + " " + label + strings.Repeat(" ", inner-len([]rune(label))-1) + "|", nil
}
