package form

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/infohub/infohub/internal/logging"
)

// SubmissionState is the submit lifecycle of a controller.
type SubmissionState int

const (
	// Idle means no submission is in flight
	Idle SubmissionState = iota
	// Submitting means the submit callback is running
	Submitting
)

// String returns the state name
func (s SubmissionState) String() string {
	if s == Submitting {
		return "submitting"
	}
	return "idle"
}

// ValidateFunc computes the errors for a snapshot of values. It must not
// modify the values it is given.
type ValidateFunc func(values Values) Errors

// SubmitFunc receives a snapshot of the values once validation has passed.
type SubmitFunc func(ctx context.Context, values Values) error

// Controller tracks field values, field errors and the submission state of a
// single form.
//
// All methods are safe for concurrent use. The lock is never held while the
// submit callback runs, so a renderer can keep reading Loading() and
// Values() during a submission.
type Controller struct {
	mu sync.Mutex

	name             string
	initial          Values
	values           Values
	errors           Errors
	state            SubmissionState
	validate         ValidateFunc
	submit           SubmitFunc
	clearErrorOnEdit bool
	log              *zap.Logger
}

// New creates a controller whose values equal initial. The keys of initial
// are the only fields the controller accepts.
func New(initial Values, opts ...Option) *Controller {
	c := &Controller{
		initial:          initial.Clone(),
		values:           initial.Clone(),
		errors:           Errors{},
		state:            Idle,
		clearErrorOnEdit: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logging.GetLogger()
	}
	if c.name != "" {
		c.log = c.log.With(zap.String("form", c.name))
	}
	return c
}

// Name returns the name given with WithName.
func (c *Controller) Name() string {
	return c.name
}

// HandleFieldChange records a user edit. When error clearing on edit is
// enabled (the default) the field's error is removed without re-validating.
// Unknown fields are ignored.
func (c *Controller) HandleFieldChange(field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.values[field]; !ok {
		c.log.Debug("Ignoring change for unknown field", zap.String("field", field))
		return
	}

	c.values[field] = value
	if c.clearErrorOnEdit {
		delete(c.errors, field)
	}
	logging.LogFieldChange(c.name, field, value)
}

// SetFieldValue overwrites a value without touching the field's error.
func (c *Controller) SetFieldValue(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.values[field]; !ok {
		return newUnknownFieldError(c.name, field)
	}
	c.values[field] = value
	return nil
}

// SetFieldError overwrites the error message of a field.
func (c *Controller) SetFieldError(field, message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.values[field]; !ok {
		return newUnknownFieldError(c.name, field)
	}
	c.errors[field] = message
	return nil
}

// SetErrors replaces all field errors.
func (c *Controller) SetErrors(errs Errors) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errors = errs.Clone()
}

// Validate runs the validation function over the current values and replaces
// the errors with its result. It returns true when there are no errors.
// Without a validation function it always returns true.
func (c *Controller) Validate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.validateLocked()
}

func (c *Controller) validateLocked() bool {
	if c.validate == nil {
		return true
	}

	errs := c.validate(c.values.Clone())
	if errs == nil {
		errs = Errors{}
	}
	c.errors = errs.Clone()

	if len(c.errors) > 0 {
		c.log.Debug("Validation failed", zap.Strings("fields", c.errors.Fields()))
	}
	return len(c.errors) == 0
}

// Submit validates the form and, when valid, runs the submit callback with a
// snapshot of the values. Callback failures are logged and reported in the
// outcome, never returned as a panic or bare error. The state always returns
// to Idle once the callback settles.
//
// A call made while another submission is in flight is rejected with
// StatusBusy.
func (c *Controller) Submit(ctx context.Context) Outcome {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		c.log.Warn("Submit ignored, submission already in flight")
		return Outcome{Status: StatusBusy}
	}
	if !c.validateLocked() {
		errs := c.errors.Clone()
		c.mu.Unlock()
		return Outcome{Status: StatusRejected, Errors: errs}
	}
	if c.submit == nil {
		c.mu.Unlock()
		return Outcome{Status: StatusSkipped}
	}
	c.state = Submitting
	snapshot := c.values.Clone()
	submit := c.submit
	c.mu.Unlock()

	start := time.Now()
	err := c.run(ctx, submit, snapshot)
	elapsed := time.Since(start)

	if err != nil {
		logging.LogSubmission(c.name, StatusFailed.String(), elapsed, err)
		return Outcome{Status: StatusFailed, Err: err}
	}
	logging.LogSubmission(c.name, StatusSucceeded.String(), elapsed, nil)
	return Outcome{Status: StatusSucceeded}
}

// run invokes the callback and restores Idle however it returns.
func (c *Controller) run(ctx context.Context, submit SubmitFunc, values Values) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(c.name, r)
		}
		c.mu.Lock()
		c.state = Idle
		c.mu.Unlock()
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	if submitErr := submit(ctx, values); submitErr != nil {
		return newSubmissionError(c.name, submitErr)
	}
	return nil
}

// Reset restores the initial values and clears the errors. A submission in
// flight keeps the state Submitting until its callback settles, so at most
// one callback ever runs.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values = c.initial.Clone()
	c.errors = Errors{}
	if c.state == Submitting {
		c.log.Debug("Reset during submission, state left as submitting")
	}
}

// IsValid reports whether there are no errors and every value is non-blank.
// It does not run the validation function.
func (c *Controller) IsValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.errors) == 0 && c.values.Filled()
}

// Value returns the current value of a field.
func (c *Controller) Value(field string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.values[field]
}

// Error returns the error message of a field, or "" when it has none.
func (c *Controller) Error(field string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.errors[field]
}

// Values returns a copy of the current values.
func (c *Controller) Values() Values {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.values.Clone()
}

// Errors returns a copy of the current errors.
func (c *Controller) Errors() Errors {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.errors.Clone()
}

// State returns the submission state.
func (c *Controller) State() SubmissionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Loading reports whether a submission is in flight.
func (c *Controller) Loading() bool {
	return c.State() == Submitting
}

// Snapshot is a consistent read of everything a renderer needs.
type Snapshot struct {
	Values  Values
	Errors  Errors
	Loading bool
	IsValid bool
}

// Snapshot returns values, errors, loading and validity read under one lock.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Values:  c.values.Clone(),
		Errors:  c.errors.Clone(),
		Loading: c.state == Submitting,
		IsValid: len(c.errors) == 0 && c.values.Filled(),
	}
}
