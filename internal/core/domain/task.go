package domain

// ConversionTask is one external converter invocation over a single file.
type ConversionTask struct {
	Source    string
	Converter string
}

// TaskStatus represents the lifecycle state of a conversion task.
type TaskStatus string

const (
	// StatusPending indicates the task has not been dispatched yet.
	StatusPending TaskStatus = "Pending"
	// StatusRunning indicates the converter process is executing.
	StatusRunning TaskStatus = "Running"
	// StatusSucceeded indicates the converter exited 0 and the derived
	// artifact exists.
	StatusSucceeded TaskStatus = "Succeeded"
	// StatusFailed indicates a nonzero exit or missing derived artifact.
	StatusFailed TaskStatus = "Failed"
	// StatusTimedOut indicates the task exceeded its time bound.
	StatusTimedOut TaskStatus = "TimedOut"
)
