package domain

import "go.trai.ch/zerr"

var (
	// ErrConverterNotFound is returned when the configured converter
	// executable does not exist or is not executable.
	ErrConverterNotFound = zerr.New("converter executable not found")

	// ErrConversionFailed is returned when the converter exits nonzero.
	ErrConversionFailed = zerr.New("conversion failed")

	// ErrConversionTimeout is returned when a conversion task exceeds its
	// time bound.
	ErrConversionTimeout = zerr.New("conversion timed out")

	// ErrOutputMissing is returned when the converter exits 0 but the
	// expected derived artifact is absent.
	ErrOutputMissing = zerr.New("derived artifact missing after conversion")

	// ErrSnapshotCorrupt is returned internally when a persisted cache
	// snapshot cannot be decoded; the store degrades to an empty table.
	ErrSnapshotCorrupt = zerr.New("cache snapshot corrupt")

	// ErrBatchCancelled is the diagnostic attached to files left
	// undispatched when a batch is cancelled.
	ErrBatchCancelled = zerr.New("batch cancelled")
)
