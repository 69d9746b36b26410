package cachestore

import (
	"github.com/jonboulle/clockwork"
	"go.trai.ch/forge/internal/core/ports"
)

// NewWithClock exposes the clock-injected constructor to tests.
func NewWithClock(opts Options, fp ports.Fingerprinter, log ports.Logger, clock clockwork.Clock) *Store {
	return newStore(opts, fp, log, clock)
}

// FlushInterval exposes the flusher period to tests.
const FlushInterval = flushInterval
