/*
Package runner presents solved equations and drives batches of them.

It acts as the bridge between the solving engine and the outside world. Reports
are written through pluggable renderers (plain or styled text, JSON, Markdown) and
whole streams of equations are solved by the Runner.

# Key Components

  - Renderer: Writes a Report or a failure in one output format.
  - TextRenderer: The standard CLI output, optionally styled with lipgloss.
  - JSONRenderer: One JSON document per equation, for scripts.
  - MarkdownRenderer: Markdown passed through a ContentRenderer (e.g. glamour).
  - Runner: Solves a stream of equations with a bounded worker pool.

# Usage

	r := runner.NewRunner(engine,
		runner.WithRenderer(runner.NewTextRenderer()),
		runner.WithWorkers(4),
	)

	summary, err := r.Run(ctx, file, os.Stdout)
*/
package runner
