package runner

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/computor/pkg/domain"
)

// MarkdownRenderer formats reports as Markdown and hands the document to
// Content (typically glamour) before writing it.
type MarkdownRenderer struct {
	Content ContentRenderer
}

// NewMarkdownRenderer creates a Markdown renderer. A nil content renderer
// writes the raw Markdown.
func NewMarkdownRenderer(content ContentRenderer) *MarkdownRenderer {
	return &MarkdownRenderer{Content: content}
}

func (r *MarkdownRenderer) Render(w io.Writer, report *domain.Report) error {
	return r.write(w, MarkdownReport(report))
}

func (r *MarkdownRenderer) RenderError(w io.Writer, equation string, err error) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## `%s`\n\n", equation)
	fmt.Fprintf(&sb, "> **Error** (%s): %s\n", domain.ErrorCode(err), err)
	return r.write(w, sb.String())
}

func (r *MarkdownRenderer) write(w io.Writer, md string) error {
	out := md
	if r.Content != nil {
		rendered, err := r.Content(md)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		out = rendered
	}
	_, err := io.WriteString(w, out)
	return err
}

// MarkdownReport builds the Markdown document for report.
func MarkdownReport(report *domain.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## `%s`\n\n", report.Equation)
	fmt.Fprintf(&sb, "- **Reduced form:** `%s`\n", report.Reduced)
	fmt.Fprintf(&sb, "- **Polynomial degree:** %d\n", report.Degree)
	if report.Discriminant != nil {
		fmt.Fprintf(&sb, "- **Discriminant:** %s\n", domain.FormatNumber(*report.Discriminant))
	}

	v := Describe(report)
	fmt.Fprintf(&sb, "\n%s\n", v.Headline)
	if len(v.Values) > 0 {
		sb.WriteString("\n")
		for _, val := range v.Values {
			fmt.Fprintf(&sb, "- `%s`\n", val)
		}
	}
	return sb.String()
}
