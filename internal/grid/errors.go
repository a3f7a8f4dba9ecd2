package grid

import "fmt"

// InvalidWidthError reports a grid width below 1.
type InvalidWidthError struct {
	Width int
}

func (e *InvalidWidthError) Error() string {
	return fmt.Sprintf("grid width must be at least 1, got %d", e.Width)
}

// OutOfBoundsError reports a placement or fill that falls outside the
// grid's 1..Width column range. Nothing is ever silently clamped: the whole
// point of the builder is that misplaced text is an error, not a truncation.
type OutOfBoundsError struct {
	Start int
	End   int
	Width int
}

func (e *OutOfBoundsError) Error() string {
	if e.Start == e.End {
		return fmt.Sprintf("column %d outside grid range 1..%d", e.Start, e.Width)
	}
	return fmt.Sprintf("columns %d..%d outside grid range 1..%d", e.Start, e.End, e.Width)
}

// DegenerateRangeError reports a border too short to have two corners.
type DegenerateRangeError struct {
	Start int
	End   int
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("border %d..%d needs at least two corner columns", e.Start, e.End)
}
