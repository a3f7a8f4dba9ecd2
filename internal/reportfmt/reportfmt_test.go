package reportfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"diagrid/internal/diagram"
	"diagrid/internal/verify"
)

func passingReport() *verify.Report {
	return verify.Verify(diagram.FromLines([]string{
		"+--------+",
		"| Start  |",
		"+--------+",
	}), verify.DefaultOptions())
}

func failingReport() *verify.Report {
	return verify.Verify(diagram.FromLines([]string{
		"+--+----+",
		"    |",
	}), verify.DefaultOptions())
}

func TestPretty_Pass(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, passingReport(), PrettyOpts{})
	out := buf.String()

	for _, want := range []string{
		"=== Step 1: Unicode Scan ===",
		"OK: no banned characters",
		"=== Step 2: Junction Audit ===",
		"=== Step 3: Box Consistency ===",
		"OK: 2 borders found, all consistent",
		"=== Step 4: Arrow Connectivity ===",
		"=== Step 5: Final Read-Through ===",
		"RESULT: All automated checks PASSED",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestPretty_FailListsCoordinates(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, failingReport(), PrettyOpts{})
	out := buf.String()

	if !strings.Contains(out, "FAIL: 1 junction mismatches") {
		t.Errorf("output missing junction FAIL line\n%s", out)
	}
	if !strings.Contains(out, "Ln 2 col 5:") {
		t.Errorf("output missing violation coordinates\n%s", out)
	}
	if !strings.Contains(out, "RESULT: Some checks FAILED") {
		t.Errorf("output missing fail verdict\n%s", out)
	}
}

func TestPretty_QuietDropsPassingSections(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, failingReport(), PrettyOpts{Quiet: true})
	out := buf.String()

	if strings.Contains(out, "Unicode Scan") {
		t.Errorf("quiet output still has passing section\n%s", out)
	}
	if strings.Contains(out, "Final Read-Through") {
		t.Errorf("quiet output still has manual reminder\n%s", out)
	}
	if !strings.Contains(out, "Junction Audit") {
		t.Errorf("quiet output lost failing section\n%s", out)
	}
	if !strings.Contains(out, "RESULT:") {
		t.Errorf("quiet output lost verdict\n%s", out)
	}
}

func TestPretty_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	rep := failingReport()
	Pretty(&a, rep, PrettyOpts{})
	Pretty(&b, rep, PrettyOpts{})
	if a.String() != b.String() {
		t.Error("two renderings of the same report differ")
	}
}

func TestShort(t *testing.T) {
	got := Short(failingReport())
	if !strings.HasPrefix(got, "junction 2:5 ") {
		t.Errorf("Short() = %q, want junction 2:5 prefix", got)
	}
	if got := Short(passingReport()); got != "" {
		t.Errorf("Short(passing) = %q, want empty", got)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, failingReport()); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	var got payloadReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Pass {
		t.Error("pass = true, want false")
	}
	if len(got.Violations) != 1 || got.Violations[0].Check != "junction" {
		t.Errorf("violations = %+v", got.Violations)
	}
	if got.Violations[0].Line != 2 || got.Violations[0].Col != 5 {
		t.Errorf("violation at %d:%d, want 2:5", got.Violations[0].Line, got.Violations[0].Col)
	}
}

func TestMsgpack(t *testing.T) {
	var buf bytes.Buffer
	if err := Msgpack(&buf, failingReport()); err != nil {
		t.Fatalf("Msgpack() error = %v", err)
	}
	var got payloadReport
	if err := msgpack.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid msgpack: %v", err)
	}
	if got.Pass || len(got.Violations) != 1 {
		t.Errorf("decoded = %+v", got)
	}
}

func TestColumns(t *testing.T) {
	d := diagram.FromLines([]string{"+--+ label v"})
	var buf bytes.Buffer
	if err := Columns(&buf, d, 1); err != nil {
		t.Fatalf("Columns() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"col 1: \"+\"", "col 4: \"+\"", "col 12: \"v\""} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "col 6") {
		t.Errorf("label characters listed as structural\n%s", out)
	}
}

func TestColumns_OutOfRange(t *testing.T) {
	d := diagram.FromLines([]string{"+--+"})
	if err := Columns(&bytes.Buffer{}, d, 5); err == nil {
		t.Error("Columns(5) succeeded, want error")
	}
}
