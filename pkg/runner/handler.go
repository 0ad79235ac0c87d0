package runner

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/computor/pkg/domain"
)

// Renderer defines how a solved equation is presented to the user.
// This allows switching between Text (CLI/TUI), JSON and Markdown modes.
type Renderer interface {
	// Render writes the reduced form, the degree and the solution of report.
	Render(w io.Writer, report *domain.Report) error

	// RenderError writes a failure to solve equation.
	RenderError(w io.Writer, equation string, err error) error
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling this package.
type ContentRenderer func(string) (string, error)

// Format names an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatMarkdown:
		return f, nil
	case "":
		return FormatText, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or markdown)", s)
	}
}

// Verdict is the human-readable outcome of a report: a headline and the
// values listed under it.
type Verdict struct {
	Headline string
	Values   []string
}

// Describe builds the verdict shared by the text and markdown renderers.
func Describe(report *domain.Report) Verdict {
	sol := report.Solution
	switch {
	case sol.Outcome == domain.OutcomeAllReals:
		return Verdict{Headline: "Every real number is a solution."}
	case sol.Outcome == domain.OutcomeNone && sol.Complex != nil:
		re := domain.FormatNumber(sol.Complex.Real)
		im := domain.FormatNumber(sol.Complex.Imaginary)
		return Verdict{
			Headline: "Discriminant is strictly negative, there is no real solution. The two complex solutions are:",
			Values:   []string{re + " + " + im + "i", re + " - " + im + "i"},
		}
	case sol.Outcome == domain.OutcomeNone:
		return Verdict{Headline: "There is no solution."}
	}

	values := make([]string, len(sol.Roots))
	for i, x := range sol.Roots {
		values[i] = domain.FormatNumber(x)
	}
	switch {
	case report.Degree < 2:
		return Verdict{Headline: "The solution is:", Values: values}
	case len(values) == 2:
		return Verdict{Headline: "Discriminant is strictly positive, the two solutions are:", Values: values}
	default:
		return Verdict{Headline: "Discriminant is zero, the solution is:", Values: values}
	}
}
