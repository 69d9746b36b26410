// Package progrock provides the Progrock implementation of the progress
// sink consumed by the conversion pipeline.
package progrock

import (
	"fmt"
	"path/filepath"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

var _ ports.ProgressSink = (*Sink)(nil)

// Sink forwards per-file conversion results to a progrock recorder. It
// never signals cancellation itself; wrap it if interactive cancellation
// is needed.
type Sink struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Sink with a default tape.
func New() *Sink {
	return NewSink(progrock.NewTape())
}

// NewSink creates a Sink recording to the given writer.
func NewSink(w progrock.Writer) *Sink {
	return &Sink{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Step records one completed file as a finished vertex.
func (s *Sink) Step(path string, status domain.TaskStatus, completed, total int) error {
	name := fmt.Sprintf("convert %s (%d/%d)", filepath.Base(path), completed, total)
	v := s.rec.Vertex(digest.FromString(path), name)

	switch status {
	case domain.StatusSucceeded:
		v.Done(nil)
	case domain.StatusTimedOut:
		v.Done(domain.ErrConversionTimeout)
	default:
		v.Done(domain.ErrConversionFailed)
	}
	return nil
}

// Close flushes and closes the recording session.
func (s *Sink) Close() error {
	if c, ok := s.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
