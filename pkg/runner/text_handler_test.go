package runner

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aretw0/computor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func report(t *testing.T, reduced domain.Polynomial) *domain.Report {
	t.Helper()
	r, err := domain.NewReport(reduced.String(), reduced)
	require.NoError(t, err)
	return r
}

func TestTextRenderer_Output(t *testing.T) {
	tests := []struct {
		name    string
		reduced domain.Polynomial
		want    string
	}{
		{
			name:    "two roots",
			reduced: domain.NewPolynomial(1, 0, -1),
			want: "Reduced form: 1 * X^2 + 0 * X^1 - 1 * X^0 = 0\n" +
				"Polynomial degree: 2\n" +
				"Discriminant is strictly positive, the two solutions are:\n1\n-1\n",
		},
		{
			name:    "double root",
			reduced: domain.NewPolynomial(1, -2, 1),
			want: "Reduced form: 1 * X^2 - 2 * X^1 + 1 * X^0 = 0\n" +
				"Polynomial degree: 2\n" +
				"Discriminant is zero, the solution is:\n1\n",
		},
		{
			name:    "complex",
			reduced: domain.NewPolynomial(1, 2, 5),
			want: "Reduced form: 1 * X^2 + 2 * X^1 + 5 * X^0 = 0\n" +
				"Polynomial degree: 2\n" +
				"Discriminant is strictly negative, there is no real solution. The two complex solutions are:\n" +
				"-1 + 2i\n-1 - 2i\n",
		},
		{
			name:    "linear",
			reduced: domain.NewPolynomial(0, 4, -2),
			want: "Reduced form: 0 * X^2 + 4 * X^1 - 2 * X^0 = 0\n" +
				"Polynomial degree: 1\n" +
				"The solution is:\n0.5\n",
		},
		{
			name:    "all reals",
			reduced: domain.NewPolynomial(0, 0, 0),
			want: "Reduced form: 0 * X^2 + 0 * X^1 + 0 * X^0 = 0\n" +
				"Polynomial degree: 0\n" +
				"Every real number is a solution.\n",
		},
		{
			name:    "no solution",
			reduced: domain.NewPolynomial(0, 0, -1),
			want: "Reduced form: 0 * X^2 + 0 * X^1 - 1 * X^0 = 0\n" +
				"Polynomial degree: 0\n" +
				"There is no solution.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewTextRenderer().Render(&buf, report(t, tt.reduced)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestTextRenderer_NegativeLeadingCoefficientComplex(t *testing.T) {
	// a < 0 still yields a positive imaginary magnitude.
	v := Describe(report(t, domain.NewPolynomial(-1, 0, -4)))
	assert.Equal(t, []string{"0 + 2i", "0 - 2i"}, v.Values)
}

func TestTextRenderer_Error(t *testing.T) {
	var buf bytes.Buffer
	err := NewTextRenderer().RenderError(&buf, "bad", errors.New("malformed equation"))
	require.NoError(t, err)
	assert.Equal(t, "Error: malformed equation\n", buf.String())
}

func TestTextRenderer_StyledKeepsContent(t *testing.T) {
	var buf bytes.Buffer
	r := &TextRenderer{Styles: DefaultStyles()}
	require.NoError(t, r.Render(&buf, report(t, domain.NewPolynomial(0, 1, 0))))
	assert.Contains(t, buf.String(), "Reduced form:")
	assert.Contains(t, buf.String(), "Polynomial degree:")
	assert.Contains(t, buf.String(), "0 * X^2 + 1 * X^1 + 0 * X^0 = 0")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "json": FormatJSON, "md": FormatMarkdown, " markdown ": FormatMarkdown} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("yaml")
	assert.Error(t, err)
}

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer(FormatText, RendererOptions{Color: true})
	require.NoError(t, err)
	require.IsType(t, &TextRenderer{}, r)
	assert.NotNil(t, r.(*TextRenderer).Styles)

	r, err = NewRenderer(FormatJSON, RendererOptions{Indent: true})
	require.NoError(t, err)
	assert.Equal(t, &JSONRenderer{Indent: true}, r)

	r, err = NewRenderer(FormatMarkdown, RendererOptions{})
	require.NoError(t, err)
	assert.IsType(t, &MarkdownRenderer{}, r)

	_, err = NewRenderer("xml", RendererOptions{})
	assert.Error(t, err)
}
