package dataset

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/hexgen/internal/synth"
)

// TaskError records a task that produced no image.
type TaskError struct {
	Index int
	Seed  int64
	Path  string
	Err   error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("image %d (seed %d, %s): %v", e.Index, e.Seed, e.Path, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// Summary reports the outcome of a run.
type Summary struct {
	// Rendered counts successful renders, written or not.
	Rendered int
	Written  int
	Failed   int
	// ByShapes counts rendered images per shape count.
	ByShapes map[int]int
	Errors   []*TaskError
}

// Err joins every task error, or returns nil when all tasks succeeded.
func (s Summary) Err() error {
	errs := make([]error, len(s.Errors))
	for i, e := range s.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Runner renders tasks one after another and writes them out.
type Runner struct {
	Generator *synth.Generator
	Writer    *Writer
	Logger    hclog.Logger

	// Manifest appends a Record per written image to the labels file.
	Manifest bool
	// DryRun renders every task without touching the filesystem.
	DryRun bool
}

// Run processes tasks in order. A failing task is logged and recorded in
// the summary and the run continues. Cancelling ctx stops the run before
// the next task; the summary so far is returned with ctx's error.
func (r *Runner) Run(ctx context.Context, tasks []synth.Task) (Summary, error) {
	logger := r.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("dataset")

	summary := Summary{ByShapes: make(map[int]int)}

	var manifest *Manifest
	if r.Manifest && !r.DryRun {
		m, err := OpenManifest(r.Writer.Root)
		if err != nil {
			return summary, err
		}
		defer func() {
			if err := m.Close(); err != nil {
				logger.Error("failed to close manifest", "error", err)
			}
		}()
		manifest = m
	}

	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			logger.Warn("run cancelled", "completed", summary.Rendered+summary.Failed, "total", len(tasks))
			return summary, err
		}

		if task.Path == "" {
			task.Path = r.Writer.PathFor(task.Shapes, ID(task.Seed))
		}

		if err := r.runTask(task, manifest, logger); err != nil {
			logger.Error("image failed", "index", task.Index, "seed", task.Seed, "path", task.Path, "error", err)
			summary.Failed++
			summary.Errors = append(summary.Errors, &TaskError{Index: task.Index, Seed: task.Seed, Path: task.Path, Err: err})
			continue
		}

		summary.Rendered++
		summary.ByShapes[task.Shapes]++
		if !r.DryRun {
			summary.Written++
		}
	}

	logger.Info("run complete", "rendered", summary.Rendered, "written", summary.Written, "failed", summary.Failed)
	return summary, nil
}

func (r *Runner) runTask(task synth.Task, manifest *Manifest, logger hclog.Logger) error {
	sample, err := r.Generator.Generate(task)
	if err != nil {
		return err
	}

	if r.DryRun {
		logger.Info("would write", "path", task.Path, "shapes", task.Shapes, "seed", task.Seed)
		return nil
	}

	if err := r.Writer.Write(task.Path, sample.Canvas); err != nil {
		return err
	}
	logger.Debug("wrote image", "path", task.Path, "shapes", task.Shapes)

	if manifest != nil {
		return manifest.Append(NewRecord(r.Writer.Root, task.Path, sample))
	}
	return nil
}
