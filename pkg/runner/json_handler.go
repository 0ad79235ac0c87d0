package runner

import (
	"encoding/json"
	"io"

	"github.com/aretw0/computor/pkg/domain"
)

// ErrorPayload is the JSON shape of a failed equation.
type ErrorPayload struct {
	Equation string `json:"equation"`
	Error    string `json:"error"`
	Code     string `json:"code"`
}

// JSONRenderer writes one JSON document per equation (JSON Lines when not indented).
type JSONRenderer struct {
	Indent bool
}

// NewJSONRenderer creates a renderer for structured output.
func NewJSONRenderer(indent bool) *JSONRenderer {
	return &JSONRenderer{Indent: indent}
}

func (r *JSONRenderer) Render(w io.Writer, report *domain.Report) error {
	return r.encode(w, report)
}

func (r *JSONRenderer) RenderError(w io.Writer, equation string, err error) error {
	return r.encode(w, ErrorPayload{
		Equation: equation,
		Error:    err.Error(),
		Code:     domain.ErrorCode(err),
	})
}

func (r *JSONRenderer) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
