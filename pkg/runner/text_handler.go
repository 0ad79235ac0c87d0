package runner

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/computor/pkg/domain"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles of the text renderer.
type Styles struct {
	Label    lipgloss.Style
	Headline lipgloss.Style
	Value    lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the colour scheme used on terminals.
func DefaultStyles() *Styles {
	return &Styles{
		Label:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#818cf8")),
		Headline: lipgloss.NewStyle().Foreground(lipgloss.Color("#c084fc")),
		Value:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#34d399")),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fb7185")),
	}
}

// TextRenderer implements the standard text output.
type TextRenderer struct {
	// Styles is nil for plain output.
	Styles *Styles
}

// NewTextRenderer creates a plain text renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

func (r *TextRenderer) Render(w io.Writer, report *domain.Report) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", r.paint("Reduced form:", labelStyle), report.Reduced)
	fmt.Fprintf(&sb, "%s %s\n", r.paint("Polynomial degree:", labelStyle), strconv.Itoa(report.Degree))

	v := Describe(report)
	sb.WriteString(r.paint(v.Headline, headlineStyle))
	sb.WriteString("\n")
	for _, val := range v.Values {
		sb.WriteString(r.paint(val, valueStyle))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *TextRenderer) RenderError(w io.Writer, equation string, err error) error {
	_, werr := fmt.Fprintf(w, "%s %v\n", r.paint("Error:", errorStyle), err)
	return werr
}

func (r *TextRenderer) paint(text string, pick func(*Styles) lipgloss.Style) string {
	if r.Styles == nil {
		return text
	}
	return pick(r.Styles).Render(text)
}

func labelStyle(s *Styles) lipgloss.Style    { return s.Label }
func headlineStyle(s *Styles) lipgloss.Style { return s.Headline }
func valueStyle(s *Styles) lipgloss.Style    { return s.Value }
func errorStyle(s *Styles) lipgloss.Style    { return s.Error }
