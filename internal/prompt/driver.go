package prompt

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")

// InputConfig configures a text or password prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// Driver asks single questions. The survey implementation talks to the
// terminal; tests script answers.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Password(ctx context.Context, cfg InputConfig) (string, error)
}

type surveyDriver struct {
	stdio terminal.Stdio
}

// NewSurveyDriver returns a Driver backed by survey prompts on the process's
// standard streams.
func NewSurveyDriver() Driver {
	return &surveyDriver{stdio: terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out, d.opts()...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// Password never shows a default; restored secrets are kept when the answer
// is empty.
func (d *surveyDriver) Password(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Password{
		Message: cfg.Message,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(prompt, &out, d.opts()...); err != nil {
		return "", translateSurveyErr(err)
	}
	if out == "" {
		out = cfg.Default
	}
	return out, nil
}

func (d *surveyDriver) opts() []survey.AskOpt {
	return []survey.AskOpt{
		survey.WithStdio(d.stdio.In, d.stdio.Out, d.stdio.Err),
		survey.WithIcons(func(icons *survey.IconSet) {
			icons.Question.Text = "?"
			icons.Error.Text = "✗"
		}),
	}
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return err
}
