package prompt

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/infohub/infohub/internal/account"
	"github.com/infohub/infohub/internal/form"
	"github.com/infohub/infohub/internal/format"
	"github.com/infohub/infohub/internal/logging"
	"github.com/infohub/infohub/internal/ui"
)

// DefaultMaxAttempts bounds how many times a rejected form is asked again.
const DefaultMaxAttempts = 3

// ErrTooManyAttempts is returned when a form is still rejected after the
// last attempt.
var ErrTooManyAttempts = errors.New("prompt: too many invalid attempts")

// Question binds a form field to a prompt.
type Question struct {
	Field   string
	Message string
	Help    string
	Secret  bool
}

// Runner drives a form.Controller from line prompts. Answers go through
// HandleFieldChange; after a rejected submit the errors are printed and only
// the failing fields are asked again.
type Runner struct {
	driver      Driver
	printer     *ui.Printer
	maxAttempts int
}

// NewRunner creates a runner printing errors with printer.
func NewRunner(driver Driver, printer *ui.Printer) *Runner {
	return &Runner{
		driver:      driver,
		printer:     printer,
		maxAttempts: DefaultMaxAttempts,
	}
}

// SetMaxAttempts changes the attempt limit. Values below 1 are ignored.
func (r *Runner) SetMaxAttempts(n int) *Runner {
	if n >= 1 {
		r.maxAttempts = n
	}
	return r
}

// Fill asks the questions, submits, and repeats for rejected fields. A failed
// submission is printed and returned as the outcome's error.
func (r *Runner) Fill(ctx context.Context, c *form.Controller, questions []Question) (form.Outcome, error) {
	pending := questions

	for attempt := 1; ; attempt++ {
		for _, q := range pending {
			if err := r.ask(ctx, c, q); err != nil {
				return form.Outcome{}, err
			}
		}

		out := c.Submit(ctx)
		switch out.Status {
		case form.StatusRejected:
			r.printErrors(questions, out.Errors)
			if attempt >= r.maxAttempts {
				return out, ErrTooManyAttempts
			}
			pending = failing(questions, out.Errors)
			if len(pending) == 0 {
				return out, fmt.Errorf("form %s rejected fields that were not asked: %v", c.Name(), out.Errors.Fields())
			}
			logging.Debug("Asking rejected fields again",
				zap.String("form", c.Name()),
				zap.Int("attempt", attempt),
				zap.Int("fields", len(pending)))

		case form.StatusFailed:
			r.printer.PrintError("Não foi possível concluir", account.UserMessage(out.Err))
			return out, out.Err

		case form.StatusBusy:
			return out, fmt.Errorf("form %s is already submitting", c.Name())

		default:
			return out, nil
		}
	}
}

func (r *Runner) ask(ctx context.Context, c *form.Controller, q Question) error {
	cfg := InputConfig{
		Message: q.Message,
		Default: c.Value(q.Field),
		Help:    q.Help,
	}

	var (
		answer string
		err    error
	)
	if q.Secret {
		answer, err = r.driver.Password(ctx, cfg)
	} else {
		answer, err = r.driver.Input(ctx, cfg)
	}
	if err != nil {
		return err
	}

	c.HandleFieldChange(q.Field, format.Field(q.Field, answer))
	return nil
}

// printErrors prints rejected fields in question order.
func (r *Runner) printErrors(questions []Question, errs form.Errors) {
	for _, q := range questions {
		if msg, ok := errs[q.Field]; ok {
			r.printer.PrintFieldError(q.Message + ": " + msg)
		}
	}
}

func failing(questions []Question, errs form.Errors) []Question {
	var out []Question
	for _, q := range questions {
		if errs.Has(q.Field) {
			out = append(out, q)
		}
	}
	return out
}
