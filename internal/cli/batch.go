package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/computor/pkg/runner"
	"github.com/fsnotify/fsnotify"
)

// watchDebounce lets editors finish writing before the file is re-read.
const watchDebounce = 100 * time.Millisecond

// BatchOptions configures Batch and WatchBatch.
type BatchOptions struct {
	Path     string // "-" reads stdin
	Workers  int
	Renderer runner.Renderer
	Out      io.Writer
	Status   io.Writer // system messages; nil discards them
	In       io.Reader // used when Path is "-"
}

// Batch solves every equation of the input file, one per line.
func Batch(ctx context.Context, app *App, opts BatchOptions) (runner.Summary, error) {
	in := opts.In
	if opts.Path != "-" {
		f, err := os.Open(opts.Path)
		if err != nil {
			return runner.Summary{}, fmt.Errorf("failed to open batch file: %w", err)
		}
		defer f.Close()
		in = f
	}
	if in == nil {
		in = os.Stdin
	}

	r := runner.NewRunner(app.Engine,
		runner.WithLogger(app.Logger),
		runner.WithRenderer(opts.Renderer),
		runner.WithWorkers(opts.Workers),
	)
	summary, err := r.Run(ctx, in, opts.Out)
	if err != nil {
		return summary, err
	}
	app.Logger.Info("Batch finished", "path", opts.Path, "total", summary.Total, "solved", summary.Solved, "failed", summary.Failed)
	return summary, nil
}

// WatchBatch runs Batch, then runs it again every time the file changes,
// until ctx is cancelled.
func WatchBatch(ctx context.Context, app *App, opts BatchOptions) error {
	if opts.Path == "-" {
		return fmt.Errorf("cannot watch stdin")
	}
	target, err := filepath.Abs(opts.Path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files by rename, which drops a watch on the file
	// itself, so the parent directory is watched instead.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	run := func() {
		if _, err := Batch(ctx, app, opts); err != nil && ctx.Err() == nil {
			app.Logger.Error("Batch failed", "err", err)
			printSystemMessage(opts.Status, "Batch failed: %v", err)
		}
		printSystemMessage(opts.Status, "Waiting for changes...")
	}

	app.Logger.Info("Starting Watcher", "path", target)
	run()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			app.Logger.Info("Stopping watcher", "reason", ctx.Err())
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			pending = time.After(watchDebounce)
		case <-pending:
			pending = nil
			printSystemMessage(opts.Status, "Change detected in '%s'.", opts.Path)
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			app.Logger.Warn("Watcher error", "err", err)
		}
	}
}
