// Package reportfmt renders verification reports for humans (pretty, short)
// and machines (json, msgpack).
package reportfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"diagrid/internal/verify"
)

type palette struct {
	ok     *color.Color
	fail   *color.Color
	result *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed, color.Bold),
		result: color.New(color.Bold),
	}
	if !enabled {
		p.ok.DisableColor()
		p.fail.DisableColor()
		p.result.DisableColor()
	}
	return p
}

// Pretty writes the per-checker sections and the final verdict. Violations
// keep their detection order.
func Pretty(w io.Writer, rep *verify.Report, opts PrettyOpts) {
	p := newPalette(opts.Color)

	for i, c := range verify.Checks {
		violations := rep.ByCheck(c)
		if opts.Quiet && len(violations) == 0 {
			continue
		}
		if i > 0 && !opts.Quiet {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "=== Step %d: %s ===\n", i+1, c.Title())
		if len(violations) > 0 {
			p.fail.Fprintf(w, "FAIL: %s\n", failSummary(c, rep, len(violations)))
			for _, v := range violations {
				fmt.Fprintf(w, "  %s: %s\n", v.Pos, v.Message)
			}
			continue
		}
		p.ok.Fprintf(w, "OK: %s\n", okSummary(c, rep))
	}

	if !opts.Quiet {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "=== Step 5: Final Read-Through ===")
		fmt.Fprintln(w, "(Manual step -- read the diagram and check for visual/semantic issues)")
	}

	fmt.Fprintln(w)
	if rep.Pass() {
		p.result.Fprintln(w, "RESULT: All automated checks PASSED")
	} else {
		p.result.Fprintln(w, "RESULT: Some checks FAILED -- fix issues before presenting")
	}
}

func okSummary(c verify.Check, rep *verify.Report) string {
	switch c {
	case verify.CheckCharset:
		return "no banned characters"
	case verify.CheckJunction:
		return fmt.Sprintf("%d junctions verified", rep.JunctionsOK)
	case verify.CheckBox:
		return fmt.Sprintf("%d borders found, all consistent", rep.Borders)
	case verify.CheckArrow:
		return fmt.Sprintf("%d arrows, all connected", rep.Arrows)
	}
	return "passed"
}

func failSummary(c verify.Check, rep *verify.Report, n int) string {
	switch c {
	case verify.CheckCharset:
		return "banned characters found:"
	case verify.CheckJunction:
		return fmt.Sprintf("%d junction mismatches (%d OK):", n, rep.JunctionsOK)
	case verify.CheckBox:
		return fmt.Sprintf("%d consistency issues:", n)
	case verify.CheckArrow:
		return fmt.Sprintf("%d floating arrows:", n)
	}
	return "failed:"
}
