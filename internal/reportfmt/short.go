package reportfmt

import (
	"fmt"
	"strings"

	"diagrid/internal/verify"
)

// Short renders one stable line per violation, suitable for grepping and for
// golden assertions in tests. Detection order is preserved; the result is
// empty when the report passes.
func Short(rep *verify.Report) string {
	var b strings.Builder
	for i, v := range rep.Violations {
		fmt.Fprintf(&b, "%s %d:%d %s", v.Check, v.Pos.Line, v.Pos.Col, v.Message)
		if i < len(rep.Violations)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
