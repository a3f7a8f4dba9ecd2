package gridscript

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, script string, width int) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Run(strings.NewReader(script), &out, width)
	return out.String(), err
}

func TestRun_TwoBoxRow(t *testing.T) {
	script := `
# two boxes side by side
line
box 1 Idle
box 12 Run
emit
line
put 1 | Idle |
put 12 | Run |
emit
line
hline 1 8
hline 12 18
emit
`
	got, err := run(t, script, 40)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := "+------+   +-----+\n" +
		"| Idle |   | Run |\n" +
		"+------+   +-----+\n"
	if got != want {
		t.Errorf("output:\n%q\nwant:\n%q", got, want)
	}
}

func TestRun_ImplicitLineAndComments(t *testing.T) {
	got, err := run(t, "# comment only\nput 3 hi\nemit\n", 10)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != "  hi\n" {
		t.Errorf("output = %q, want %q", got, "  hi\n")
	}
}

func TestRun_FillDefaultsToDash(t *testing.T) {
	got, err := run(t, "fill 2 5\nemit\n", 10)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != " ----\n" {
		t.Errorf("output = %q, want %q", got, " ----\n")
	}
}

func TestRun_RulerAndBlank(t *testing.T) {
	got, err := run(t, "ruler\nblank\n---\n", 12)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := "         111\n123456789012\n\n\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRun_ErrorsCarryLineNumber(t *testing.T) {
	tests := []struct {
		name   string
		script string
		frag   string
	}{
		{"out of bounds put", "line\nput 99 text\n", "input line 2"},
		{"unknown command", "wiggle 1 2\n", "unknown command"},
		{"bad column", "put x text\n", "expected column number"},
		{"degenerate hline", "hline 4 4\n", "two corner columns"},
		{"multi-rune fill char", "fill 1 3 ab\n", "single character"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.script, 20)
			if err == nil || !strings.Contains(err.Error(), tt.frag) {
				t.Errorf("error = %v, want containing %q", err, tt.frag)
			}
		})
	}
}

func TestRun_InvalidWidth(t *testing.T) {
	if _, err := run(t, "line\n", 0); err == nil {
		t.Error("Run(width=0) succeeded, want error")
	}
}
