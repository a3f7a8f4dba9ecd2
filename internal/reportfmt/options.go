package reportfmt

// PrettyOpts configures human-readable report output.
type PrettyOpts struct {
	// Color enables ANSI color on section verdicts.
	Color bool
	// Quiet drops passing-checker sections and OK counters, leaving only
	// violations and the final verdict.
	Quiet bool
}
