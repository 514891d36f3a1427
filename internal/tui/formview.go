package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/infohub/infohub/internal/account"
	"github.com/infohub/infohub/internal/form"
	"github.com/infohub/infohub/internal/format"
	"github.com/infohub/infohub/internal/ui"
)

// fieldSpec describes one input of a form screen.
type fieldSpec struct {
	Name        string
	Label       string
	Placeholder string
	Icon        string
	Secret      bool
	ReadOnly    bool
	CharLimit   int
}

// submitResultMsg carries a finished submission back to its screen.
type submitResultMsg struct {
	form    string
	outcome form.Outcome
}

// formView binds textinputs to a form.Controller. Focus cycles through the
// inputs and then the submit button.
type formView struct {
	controller *form.Controller
	specs      []fieldSpec
	inputs     []textinput.Model
	focus      int

	button     ui.Button
	spinner    spinner.Model
	submitting bool
	formError  string
	keys       formKeyMap
}

func newFormView(c *form.Controller, button ui.Button, specs ...fieldSpec) formView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	inputs := make([]textinput.Model, len(specs))
	for i, spec := range specs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = spec.Placeholder
		in.CharLimit = spec.CharLimit
		in.Width = FormWidth - 8
		if spec.Secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		in.SetValue(c.Value(spec.Name))
		inputs[i] = in
	}

	v := formView{
		controller: c,
		specs:      specs,
		inputs:     inputs,
		button:     button,
		spinner:    s,
		keys:       newFormKeyMap(),
	}
	v.focusIndex(v.firstEditable())
	return v
}

func (v *formView) firstEditable() int {
	for i, spec := range v.specs {
		if !spec.ReadOnly {
			return i
		}
	}
	return len(v.specs)
}

// focusIndex moves focus to i, formatting the field being left.
func (v *formView) focusIndex(i int) {
	if v.focus < len(v.inputs) {
		v.inputs[v.focus].Blur()
		v.reformat(v.focus)
	}
	v.focus = i
	if i < len(v.inputs) {
		v.inputs[i].Focus()
	}
}

// reformat applies the display mask of masked fields once the user leaves
// them.
func (v *formView) reformat(i int) {
	spec := v.specs[i]
	current := v.inputs[i].Value()
	formatted := format.Field(spec.Name, current)
	if formatted == current || current == "" {
		return
	}
	v.inputs[i].SetValue(formatted)
	v.controller.HandleFieldChange(spec.Name, formatted)
}

func (v *formView) move(delta int) {
	n := len(v.specs) + 1
	next := v.focus
	for step := 0; step < n; step++ {
		next = (next + delta + n) % n
		if next == len(v.specs) || !v.specs[next].ReadOnly {
			break
		}
	}
	v.focusIndex(next)
}

// Loading reports whether a submission is in flight.
func (v formView) Loading() bool {
	return v.submitting || v.controller.Loading()
}

// update handles a key press. The returned command runs the submission when
// enter is pressed on the last input or on the button.
func (v formView) update(ctx context.Context, msg tea.KeyMsg) (formView, tea.Cmd) {
	if v.Loading() {
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keys.Next):
		v.move(1)
		return v, nil

	case key.Matches(msg, v.keys.Prev):
		v.move(-1)
		return v, nil

	case key.Matches(msg, v.keys.Submit):
		if v.focus < len(v.specs)-1 {
			v.move(1)
			return v, nil
		}
		return v.startSubmit(ctx)
	}

	if v.focus >= len(v.inputs) || v.specs[v.focus].ReadOnly {
		return v, nil
	}

	var cmd tea.Cmd
	before := v.inputs[v.focus].Value()
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	if after := v.inputs[v.focus].Value(); after != before {
		v.controller.HandleFieldChange(v.specs[v.focus].Name, after)
		v.formError = ""
	}
	return v, cmd
}

func (v formView) startSubmit(ctx context.Context) (formView, tea.Cmd) {
	if !v.button.Pressable() {
		return v, nil
	}
	if v.focus < len(v.inputs) {
		v.reformat(v.focus)
	}
	v.submitting = true
	v.formError = ""

	c := v.controller
	submit := func() tea.Msg {
		return submitResultMsg{form: c.Name(), outcome: c.Submit(ctx)}
	}
	return v, tea.Batch(v.spinner.Tick, submit)
}

// finish records a submission outcome. Validation errors are read from the
// controller; failures get a generic message.
func (v formView) finish(out form.Outcome) formView {
	v.submitting = false
	switch out.Status {
	case form.StatusFailed:
		v.formError = account.UserMessage(out.Err)
	case form.StatusRejected:
		for i, spec := range v.specs {
			if out.Errors.Has(spec.Name) && !spec.ReadOnly {
				v.focusIndex(i)
				break
			}
		}
	}
	return v
}

// tick advances the spinner while loading.
func (v formView) tick(msg spinner.TickMsg) (formView, tea.Cmd) {
	if !v.Loading() {
		return v, nil
	}
	var cmd tea.Cmd
	v.spinner, cmd = v.spinner.Update(msg)
	return v, cmd
}

func (v formView) view() string {
	var b strings.Builder

	if v.formError != "" {
		b.WriteString(ui.FormErrorStyle.Width(FormWidth).Render(v.formError))
		b.WriteString("\n\n")
	}

	loading := v.Loading()
	for i, spec := range v.specs {
		label := spec.Label
		if spec.ReadOnly {
			label += " (da etapa anterior)"
		}
		field := ui.Input{
			Label:    label,
			Value:    v.inputs[i].View(),
			Icon:     spec.Icon,
			Error:    v.controller.Error(spec.Name),
			Required: true,
			Disabled: loading || spec.ReadOnly,
			Focused:  v.focus == i,
			Width:    FormWidth,
		}
		b.WriteString(field.Render())
		b.WriteString("\n")
	}

	btn := v.button
	btn.Loading = loading
	btn.Width = FormWidth - 8
	line := btn.Render(v.focus == len(v.specs))
	if loading {
		line = lipgloss.JoinHorizontal(lipgloss.Center, line, " ", v.spinner.View())
	}
	b.WriteString("\n")
	b.WriteString(line)

	return b.String()
}
