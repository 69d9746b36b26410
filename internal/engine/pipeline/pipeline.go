// Package pipeline implements the cache-aware batch conversion
// orchestrator.
package pipeline

import (
	"context"
	"errors"
	"runtime"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	minWorkers = 2
	maxWorkers = 8
)

// Options configures a Pipeline.
type Options struct {
	// Converter is the external converter executable.
	Converter string
	// DerivedSuffix locates the expected derived artifact of a source.
	DerivedSuffix string
	// Workers overrides the automatic pool size when positive.
	Workers int
}

// Pipeline converts batches of asset files through the external converter,
// skipping files whose conversion fingerprint is still valid. Only the
// orchestrator writes fingerprints; workers never touch cache state.
type Pipeline struct {
	opts   Options
	store  ports.CacheStore
	runner ports.Runner
	logger ports.Logger
	sink   ports.ProgressSink

	// poolStart is probed before going parallel; an error degrades to
	// strictly sequential execution of the identical per-file logic.
	poolStart func(workers int) error
}

// New creates a Pipeline.
func New(opts Options, store ports.CacheStore, runner ports.Runner, logger ports.Logger, sink ports.ProgressSink) *Pipeline {
	if opts.DerivedSuffix == "" {
		opts.DerivedSuffix = ".converted.xml"
	}
	return &Pipeline{
		opts:      opts,
		store:     store,
		runner:    runner,
		logger:    logger,
		sink:      sink,
		poolStart: func(int) error { return nil },
	}
}

type taskResult struct {
	path   string
	status domain.TaskStatus
	err    error
}

// Convert runs the batch. The returned report always accounts for every
// file: Skipped + Succeeded + Failed == len(files). A non-nil error means
// the batch was cancelled through the progress sink; the report is the
// partial accounting up to that point, and fingerprints recorded for
// completed files remain valid.
func (p *Pipeline) Convert(ctx context.Context, files []string) (domain.BatchReport, error) {
	var report domain.BatchReport
	// Fingerprints accumulated during the batch are flushed once, at the
	// end, never per file.
	defer p.store.Flush()

	pending := make([]string, 0, len(files))
	for _, f := range files {
		if p.store.IsConversionCached(f) {
			report.Skipped++
			continue
		}
		pending = append(pending, f)
	}
	if len(pending) == 0 {
		return report, nil
	}

	workers := p.workerCount(len(pending))

	var results []taskResult
	var cancelErr error
	switch {
	case workers <= 1:
		results, cancelErr = p.runSequential(ctx, pending)
	default:
		if err := p.poolStart(workers); err != nil {
			p.logger.Warn("worker pool unavailable, falling back to sequential execution: " + err.Error())
			results, cancelErr = p.runSequential(ctx, pending)
		} else {
			results, cancelErr = p.runParallel(ctx, pending, workers)
		}
	}

	resulted := make(map[string]bool, len(results))
	for _, res := range results {
		resulted[res.path] = true
		if res.status == domain.StatusSucceeded {
			report.Succeeded++
			continue
		}
		report.Failed++
		report.Errors = append(report.Errors, domain.TaskError{
			Path:   res.path,
			Reason: res.err.Error(),
		})
	}

	// Files never dispatched before cancellation still get accounted.
	for _, f := range pending {
		if resulted[f] {
			continue
		}
		report.Failed++
		report.Errors = append(report.Errors, domain.TaskError{
			Path:   f,
			Reason: domain.ErrBatchCancelled.Error(),
		})
	}

	return report, cancelErr
}

// workerCount sizes the pool: clamp(logical CPUs - 2, 2, 8), further
// reduced for small batches, with a config override taking precedence.
func (p *Pipeline) workerCount(batch int) int {
	workers := p.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU() - 2
		if workers < minWorkers {
			workers = minWorkers
		}
		if workers > maxWorkers {
			workers = maxWorkers
		}
	}
	if workers > batch {
		workers = batch
	}
	return workers
}

// runTask is the per-file logic shared by the parallel and sequential
// strategies.
func (p *Pipeline) runTask(ctx context.Context, file string) taskResult {
	err := p.runner.Convert(ctx, domain.ConversionTask{
		Source:    file,
		Converter: p.opts.Converter,
	}, file+p.opts.DerivedSuffix)

	switch {
	case err == nil:
		return taskResult{path: file, status: domain.StatusSucceeded}
	case errors.Is(err, domain.ErrConversionTimeout):
		return taskResult{path: file, status: domain.StatusTimedOut, err: err}
	default:
		return taskResult{path: file, status: domain.StatusFailed, err: err}
	}
}

// handleResult folds one completion into cache state and the progress
// sink. A sink error is the cancellation signal.
func (p *Pipeline) handleResult(res taskResult, completed, total int) error {
	if res.status == domain.StatusSucceeded {
		p.store.MarkConverted(res.path)
	}
	if err := p.sink.Step(res.path, res.status, completed, total); err != nil {
		return zerr.Wrap(err, "progress sink failed, cancelling batch")
	}
	return nil
}

// runParallel executes tasks on a bounded pool and consumes completions in
// completion order. On cancellation it stops dispatching, kills in-flight
// converter processes via the context, and drains what remains.
func (p *Pipeline) runParallel(parent context.Context, files []string, workers int) ([]taskResult, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	resultsCh := make(chan taskResult, len(files))
	go func() {
		var g errgroup.Group
		g.SetLimit(workers)
		for _, f := range files {
			if ctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				resultsCh <- p.runTask(ctx, f)
				return nil
			})
		}
		_ = g.Wait() //nolint:errcheck // Task outcomes travel via resultsCh
		close(resultsCh)
	}()

	results := make([]taskResult, 0, len(files))
	var cancelErr error
	for res := range resultsCh {
		results = append(results, res)
		if cancelErr != nil {
			// Already cancelled; drain without forwarding.
			continue
		}
		if err := p.handleResult(res, len(results), len(files)); err != nil {
			cancelErr = err
			cancel()
		}
	}
	return results, cancelErr
}

// runSequential is the degraded strategy: one file at a time, same
// per-file logic, same accounting.
func (p *Pipeline) runSequential(ctx context.Context, files []string) ([]taskResult, error) {
	results := make([]taskResult, 0, len(files))
	for _, f := range files {
		if ctx.Err() != nil {
			break
		}
		res := p.runTask(ctx, f)
		results = append(results, res)
		if err := p.handleResult(res, len(results), len(files)); err != nil {
			return results, err
		}
	}
	return results, nil
}
