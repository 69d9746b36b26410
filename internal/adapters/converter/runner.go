// Package converter invokes the external conversion tool, one isolated
// process per file.
package converter

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runner = (*Runner)(nil)

// DefaultTimeout bounds a single conversion when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// stderrTailLimit caps the diagnostic carried into batch reports.
const stderrTailLimit = 512

// Runner implements ports.Runner on os/exec. The converter contract is
// `<converter> <input>`: exit 0 plus the expected derived file is success,
// anything else is failure. The tool's format is opaque here.
type Runner struct {
	timeout time.Duration
	logger  ports.Logger
}

// NewRunner creates a Runner with the given per-task time bound.
func NewRunner(timeout time.Duration, logger ports.Logger) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{
		timeout: timeout,
		logger:  logger,
	}
}

// Convert runs the converter on task.Source and verifies expectedOutput
// exists afterwards. The child gets no stdin and no inherited console
// state; its output is captured for diagnostics only.
func (r *Runner) Convert(ctx context.Context, task domain.ConversionTask, expectedOutput string) error {
	if _, err := os.Stat(task.Converter); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConverterNotFound, "cannot invoke converter"), "converter", task.Converter)
	}

	taskCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(taskCtx, task.Converter, task.Source) //nolint:gosec // Converter path comes from trusted config
	var stdout, stderr bytes.Buffer
	cmd.Stdin = nil
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if errors.Is(taskCtx.Err(), context.DeadlineExceeded) {
		timeoutErr := zerr.With(
			zerr.Wrap(domain.ErrConversionTimeout, "converter exceeded time bound"),
			"path", task.Source,
		)
		return zerr.With(timeoutErr, "timeout", r.timeout.String())
	}
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		failErr := zerr.With(
			zerr.Wrap(domain.ErrConversionFailed, "converter process failed"),
			"path", task.Source,
		)
		failErr = zerr.With(failErr, "exit_code", exitCode)
		return zerr.With(failErr, "stderr", tail(stderr.String()))
	}

	if _, err := os.Stat(expectedOutput); err != nil {
		missingErr := zerr.With(
			zerr.Wrap(domain.ErrOutputMissing, "converter exited 0 without producing output"),
			"path", task.Source,
		)
		return zerr.With(missingErr, "expected", expectedOutput)
	}

	return nil
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrTailLimit {
		return s[len(s)-stderrTailLimit:]
	}
	return s
}
