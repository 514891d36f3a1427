package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/infohub/infohub/internal/account"
	"github.com/infohub/infohub/internal/routes"
	"github.com/infohub/infohub/internal/ui"
)

// Register2Model is the second registration step
type Register2Model struct {
	Form formView

	ctx    context.Context
	Width  int
	Height int
	Help   help.Model
	Keys   formKeyMap
}

// NewRegister2Model creates the second step from the flow's saved step one.
// It fails with a handoff error when there is nothing to continue from.
func NewRegister2Model(ctx context.Context, flow *account.Flow) (Register2Model, error) {
	c, err := flow.StepTwo()
	if err != nil {
		return Register2Model{}, err
	}

	button := ui.Button{Label: "Finalizar Cadastro", LoadingLabel: "Finalizando...", Variant: ui.VariantSuccess, Size: ui.SizeLarge}

	return Register2Model{
		Form: newFormView(c, button,
			fieldSpec{Name: account.FieldPersonType, Label: "Pessoa Física", Placeholder: "Pessoa Física"},
			fieldSpec{Name: account.FieldWorld, Label: "Mundo", Placeholder: "Mundo"},
			fieldSpec{Name: account.FieldEmail, Label: "E-mail", Icon: "📧", ReadOnly: true},
			fieldSpec{Name: account.FieldPassword, Label: "Senha", Icon: "🔒", Secret: true, ReadOnly: true},
			fieldSpec{Name: account.FieldConfirmPassword, Label: "Confirme a senha", Icon: "🔒", Secret: true, ReadOnly: true},
		),
		ctx:  ctx,
		Help: help.New(),
		Keys: newFormKeyMap(),
	}, nil
}

// Init initializes the model
func (m Register2Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Register2Model) Update(msg tea.Msg) (Register2Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.Form.Loading() && key.Matches(msg, m.Keys.Back) {
			return m, goBack
		}
		var cmd tea.Cmd
		m.Form, cmd = m.Form.update(m.ctx, msg)
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Form, cmd = m.Form.tick(msg)
		return m, cmd

	case submitResultMsg:
		if msg.form != account.FormRegisterStepTwo {
			return m, nil
		}
		m.Form = m.Form.finish(msg.outcome)
		switch {
		case msg.outcome.Succeeded():
			return m, func() tea.Msg { return registeredMsg{} }
		case msg.outcome.Failed() && account.IsHandoffError(msg.outcome.Err):
			return m, func() tea.Msg { return handoffLostMsg{err: msg.outcome.Err} }
		}
	}
	return m, nil
}

// View renders the second registration step
func (m Register2Model) View() string {
	var b strings.Builder

	b.WriteString(ui.NewStepIndicator(2, registrationSteps...).SetWidth(FormWidth).Render())
	b.WriteString("\n\n")
	b.WriteString(m.Form.view())
	b.WriteString("\n\n")
	b.WriteString(ui.NoteStyle.Render("Não tem problema, volta!"))

	return RenderApplicationContainer(routes.Register2.Title(), true, b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}
