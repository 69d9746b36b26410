package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

// Runner invokes the external converter on exactly one file per call.
// Implementations classify the outcome through the domain sentinel errors:
// ErrConversionFailed, ErrConversionTimeout, ErrOutputMissing.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Convert runs task.Converter on task.Source and verifies that
	// expectedOutput exists afterwards.
	Convert(ctx context.Context, task domain.ConversionTask, expectedOutput string) error
}
