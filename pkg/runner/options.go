package runner

import (
	"fmt"
	"log/slog"
)

// DefaultWorkers is the number of equations a Runner solves concurrently.
const DefaultWorkers = 4

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithRenderer configures how each result is written.
func WithRenderer(renderer Renderer) Option {
	return func(r *Runner) {
		r.Renderer = renderer
	}
}

// WithWorkers bounds the number of concurrent solves. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.Workers = n
		}
	}
}

// RendererOptions configures NewRenderer.
type RendererOptions struct {
	Color   bool            // Style text output with lipgloss
	Indent  bool            // Indent JSON output
	Content ContentRenderer // Markdown post-processor
}

// NewRenderer returns the renderer for format.
func NewRenderer(format Format, opts RendererOptions) (Renderer, error) {
	switch format {
	case FormatText, "":
		r := NewTextRenderer()
		if opts.Color {
			r.Styles = DefaultStyles()
		}
		return r, nil
	case FormatJSON:
		return NewJSONRenderer(opts.Indent), nil
	case FormatMarkdown:
		return NewMarkdownRenderer(opts.Content), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
