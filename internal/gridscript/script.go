// Package gridscript interprets the grid subcommand's line-oriented command
// language: one placement command per input line, '#' comments allowed.
//
//	line                      start a new line buffer
//	put <col> <text>          place text at a 1-based column
//	fill <col1> <col2> [ch]   fill an inclusive column range (default '-')
//	hline <col1> <col2>       border: '+' at the ends, '-' between
//	box <col> <label>         place a box border for label at col
//	emit                      output the current line
//	ruler                     output the tens/units column ruler
//	blank | ---               output an empty line
//
// Every placement error is fatal with the offending input line number;
// nothing is ever clamped or skipped.
package gridscript

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"diagrid/internal/grid"
)

type interp struct {
	g   *grid.Grid
	buf *grid.Line
	out io.Writer
}

// Run executes commands from r against a grid of the given width, writing
// emitted lines to w. The returned error names the 1-based input line that
// failed.
func Run(r io.Reader, w io.Writer, width int) error {
	g, err := grid.New(width)
	if err != nil {
		return err
	}
	in := &interp{g: g, out: w}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := in.exec(scanner.Text()); err != nil {
			return fmt.Errorf("input line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	return nil
}

func (in *interp) exec(raw string) error {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	cmd, rest := splitWord(line)
	switch strings.ToLower(cmd) {
	case "line":
		in.buf = in.g.NewLine()
	case "put":
		colStr, text := splitWord(rest)
		col, err := parseCol(colStr)
		if err != nil {
			return err
		}
		return in.g.Put(in.line(), col, text)
	case "fill":
		c1Str, rest := splitWord(rest)
		c2Str, chStr := splitWord(rest)
		c1, err := parseCol(c1Str)
		if err != nil {
			return err
		}
		c2, err := parseCol(c2Str)
		if err != nil {
			return err
		}
		ch := '-'
		if chStr != "" {
			runes := []rune(chStr)
			if len(runes) != 1 {
				return fmt.Errorf("fill char must be a single character, got %q", chStr)
			}
			ch = runes[0]
		}
		return in.g.Fill(in.line(), c1, c2, ch)
	case "hline":
		c1Str, c2Str := splitWord(rest)
		c1, err := parseCol(c1Str)
		if err != nil {
			return err
		}
		c2, err := parseCol(strings.TrimSpace(c2Str))
		if err != nil {
			return err
		}
		return in.g.HLine(in.line(), c1, c2)
	case "box":
		colStr, label := splitWord(rest)
		col, err := parseCol(colStr)
		if err != nil {
			return err
		}
		return in.g.Put(in.line(), col, grid.BoxBorder(label, 1))
	case "emit":
		if in.buf != nil {
			fmt.Fprintln(in.out, in.g.Emit(in.buf))
			in.buf = nil
		}
	case "ruler":
		tens, units := in.g.Ruler()
		fmt.Fprintln(in.out, in.g.Emit(tens))
		fmt.Fprintln(in.out, in.g.Emit(units))
	case "blank", "---":
		fmt.Fprintln(in.out)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// line returns the current buffer, implicitly starting one so that a script
// may begin with put/fill without a leading "line".
func (in *interp) line() *grid.Line {
	if in.buf == nil {
		in.buf = in.g.NewLine()
	}
	return in.buf
}

// splitWord cuts the first whitespace-delimited word off s, returning the
// word and the remainder with one separator consumed.
func splitWord(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

func parseCol(s string) (int, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("expected column number, got %q", s)
	}
	col, err := safecast.Conv[int](v)
	if err != nil {
		return 0, fmt.Errorf("column %d out of range", v)
	}
	return col, nil
}
