package reportfmt

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"diagrid/internal/verify"
)

type payloadPos struct {
	Line int `json:"line" msgpack:"line"`
	Col  int `json:"col" msgpack:"col"`
}

type payloadViolation struct {
	Check   string       `json:"check" msgpack:"check"`
	Line    int          `json:"line" msgpack:"line"`
	Col     int          `json:"col" msgpack:"col"`
	Related []payloadPos `json:"related,omitempty" msgpack:"related,omitempty"`
	Message string       `json:"message" msgpack:"message"`
}

type payloadReport struct {
	Pass        bool               `json:"pass" msgpack:"pass"`
	JunctionsOK int                `json:"junctions_ok" msgpack:"junctions_ok"`
	Borders     int                `json:"borders" msgpack:"borders"`
	Arrows      int                `json:"arrows" msgpack:"arrows"`
	Violations  []payloadViolation `json:"violations" msgpack:"violations"`
}

func buildPayload(rep *verify.Report) payloadReport {
	out := payloadReport{
		Pass:        rep.Pass(),
		JunctionsOK: rep.JunctionsOK,
		Borders:     rep.Borders,
		Arrows:      rep.Arrows,
		Violations:  make([]payloadViolation, 0, len(rep.Violations)),
	}
	for _, v := range rep.Violations {
		pv := payloadViolation{
			Check:   v.Check.String(),
			Line:    v.Pos.Line,
			Col:     v.Pos.Col,
			Message: v.Message,
		}
		for _, r := range v.Related {
			pv.Related = append(pv.Related, payloadPos{Line: r.Line, Col: r.Col})
		}
		out.Violations = append(out.Violations, pv)
	}
	return out
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, rep *verify.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildPayload(rep))
}

// Msgpack writes the report in msgpack framing for machine pipelines.
func Msgpack(w io.Writer, rep *verify.Report) error {
	return msgpack.NewEncoder(w).Encode(buildPayload(rep))
}
