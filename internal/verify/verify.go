// Package verify statically analyzes a drawn ASCII diagram and reports every
// geometric and character-set violation with exact 1-based coordinates.
package verify

import "diagrid/internal/diagram"

// Check identifies one of the four verification passes.
type Check uint8

const (
	// CheckCharset scans every glyph against the banned set.
	CheckCharset Check = iota
	// CheckJunction audits vertical/horizontal meeting points for '+'.
	CheckJunction
	// CheckBox audits box width consistency per band and label padding.
	CheckBox
	// CheckArrow audits that arrows are anchored on their backward side.
	CheckArrow
)

func (c Check) String() string {
	switch c {
	case CheckCharset:
		return "charset"
	case CheckJunction:
		return "junction"
	case CheckBox:
		return "box"
	case CheckArrow:
		return "arrow"
	}
	return "unknown"
}

// Title returns the human-readable section heading for pretty reports.
func (c Check) Title() string {
	switch c {
	case CheckCharset:
		return "Unicode Scan"
	case CheckJunction:
		return "Junction Audit"
	case CheckBox:
		return "Box Consistency"
	case CheckArrow:
		return "Arrow Connectivity"
	}
	return "Unknown"
}

// Checks lists the passes in their fixed pipeline order.
var Checks = []Check{CheckCharset, CheckJunction, CheckBox, CheckArrow}

// Violation is one finding. It is report data, not an error: a diagram with
// violations is a successful verification that reports failure.
type Violation struct {
	Check   Check
	Pos     diagram.Pos
	Related []diagram.Pos
	Message string
}

// Report is the outcome of one verification call. It is fresh per call and
// never mutated after being returned.
type Report struct {
	Violations []Violation

	// Counters surfaced in non-quiet output.
	JunctionsOK int
	Borders     int
	Arrows      int
}

// Pass reports whether all four checkers produced zero violations.
func (r *Report) Pass() bool { return len(r.Violations) == 0 }

// ByCheck returns the violations of one checker in detection order.
func (r *Report) ByCheck(c Check) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Check == c {
			out = append(out, v)
		}
	}
	return out
}

// Options tunes the verifier. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// BandTolerance is the maximum difference between two boxes' top rows
	// for them to count as the same vertical band and be held to the same
	// width. The informal rule is "same logical level"; one row of slack
	// is the documented interpretation.
	BandTolerance int

	// BannedExtra adds project-specific glyphs to the banned set.
	BannedExtra []rune
}

// DefaultOptions returns the standard verifier configuration.
func DefaultOptions() Options {
	return Options{BandTolerance: 1}
}

// Verify runs the four checkers in fixed order over d and assembles one
// report. Checkers never short-circuit each other, the input is never
// mutated, and repeated calls on the same input yield identical reports.
func Verify(d *diagram.Diagram, opts Options) *Report {
	rep := &Report{}
	checkCharset(d, opts, rep)
	checkJunctions(d, rep)
	checkBoxes(d, opts, rep)
	checkArrows(d, rep)
	return rep
}
