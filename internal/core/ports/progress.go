package ports

import "go.trai.ch/forge/internal/core/domain"

// ProgressSink receives per-file results in completion order. Returning a
// non-nil error cancels the batch: the pipeline kills in-flight workers and
// returns a partial report.
//
//go:generate go run go.uber.org/mock/mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type ProgressSink interface {
	Step(path string, status domain.TaskStatus, completed, total int) error
}
