package domain

// TaskError records a single failed conversion with its diagnostic.
type TaskError struct {
	Path   string
	Reason string
}

// BatchReport is the outcome of one pipeline batch. For a batch of K files
// Skipped + Succeeded + Failed == K, including partial reports after
// cancellation (undispatched files count as failed with a cancellation
// diagnostic).
type BatchReport struct {
	Skipped   int
	Succeeded int
	Failed    int
	Errors    []TaskError
}

// Total returns the number of files the report accounts for.
func (r BatchReport) Total() int {
	return r.Skipped + r.Succeeded + r.Failed
}

// CommitResult is the per-file accounting of an artifact commit batch.
// Never collapsed to a single flag: a file lands in exactly one bucket.
type CommitResult struct {
	// FullyConverted files completed delete, convert, and rename.
	FullyConverted []string
	// PartiallyConverted files lost their original but did not get a
	// replacement renamed into place; their intermediates are preserved.
	PartiallyConverted []string
	// Untouched files failed the delete phase and still hold their
	// original bytes.
	Untouched []string
}

// Complete reports whether every file in the batch was fully converted.
func (r CommitResult) Complete() bool {
	return len(r.PartiallyConverted) == 0 && len(r.Untouched) == 0
}
