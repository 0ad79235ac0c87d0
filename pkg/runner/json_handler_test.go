package runner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/aretw0/computor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRenderer_Report(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONRenderer(false).Render(&buf, report(t, domain.NewPolynomial(1, 5, 6))))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2.0, got["degree"])
	assert.Equal(t, 1.0, got["discriminant"])
	sol := got["solution"].(map[string]any)
	assert.Equal(t, "roots", sol["outcome"])
	assert.Equal(t, []any{-2.0, -3.0}, sol["roots"])
	assert.Equal(t, map[string]any{"a": 1.0, "b": 5.0, "c": 6.0}, got["reduced"])
}

func TestJSONRenderer_Error(t *testing.T) {
	var buf bytes.Buffer
	err := fmt.Errorf("right side: %w", &domain.ParseError{Kind: domain.ErrMalformedTerm, Input: "+"})
	require.NoError(t, NewJSONRenderer(false).RenderError(&buf, "X = +", err))

	var got ErrorPayload
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "X = +", got.Equation)
	assert.Equal(t, "malformed_term", got.Code)
	assert.Contains(t, got.Error, "right side")
}

func TestJSONRenderer_Indent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONRenderer(true).Render(&buf, report(t, domain.NewPolynomial(0, 0, 0))))
	assert.Contains(t, buf.String(), "\n  \"equation\"")
}
