package form

import "go.uber.org/zap"

// Option configures a Controller.
type Option func(*Controller)

// WithName names the controller in logs and errors.
func WithName(name string) Option {
	return func(c *Controller) {
		c.name = name
	}
}

// WithValidate sets the function run by Validate and Submit.
func WithValidate(fn ValidateFunc) Option {
	return func(c *Controller) {
		c.validate = fn
	}
}

// WithSubmit sets the callback run by Submit after validation passes.
func WithSubmit(fn SubmitFunc) Option {
	return func(c *Controller) {
		c.submit = fn
	}
}

// WithClearErrorOnEdit controls whether HandleFieldChange removes the edited
// field's error. Enabled by default; stale errors disappear as the user types
// and new ones only show up on the next Validate.
func WithClearErrorOnEdit(enabled bool) Option {
	return func(c *Controller) {
		c.clearErrorOnEdit = enabled
	}
}

// WithLogger sets the logger. Defaults to logging.GetLogger().
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}
