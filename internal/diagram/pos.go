package diagram

import "fmt"

// Pos is a 1-based position in a diagram: Line counts from the top, Col from
// the left. Line 0 or Col 0 never occur in valid positions.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("Ln %d col %d", p.Line, p.Col)
}
