package form

// Status describes how a Submit call ended.
type Status int

const (
	// StatusSucceeded means the callback ran and returned nil
	StatusSucceeded Status = iota
	// StatusRejected means validation failed; the callback was not run
	StatusRejected
	// StatusSkipped means validation passed but no callback is configured
	StatusSkipped
	// StatusBusy means another submission was already in flight
	StatusBusy
	// StatusFailed means the callback returned an error or panicked
	StatusFailed
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusRejected:
		return "rejected"
	case StatusSkipped:
		return "skipped"
	case StatusBusy:
		return "busy"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of Submit.
type Outcome struct {
	Status Status
	// Errors holds the validation errors when Status is StatusRejected.
	Errors Errors
	// Err holds the callback failure when Status is StatusFailed.
	Err error
}

// Succeeded reports whether the callback ran and returned nil.
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSucceeded
}

// Failed reports whether the callback failed.
func (o Outcome) Failed() bool {
	return o.Status == StatusFailed
}
