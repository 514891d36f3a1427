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

var registrationSteps = []string{"Dados pessoais", "Perfil"}

// RegisterModel is the first registration step
type RegisterModel struct {
	Form   formView
	Notice string

	ctx    context.Context
	Width  int
	Height int
	Help   help.Model
	Keys   formKeyMap
}

// NewRegisterModel creates the first registration step. notice is shown
// above the form, for example after being sent back from step two.
func NewRegisterModel(ctx context.Context, flow *account.Flow, notice string) RegisterModel {
	button := ui.Button{Label: "Continuar", LoadingLabel: "Processando...", Size: ui.SizeLarge}

	return RegisterModel{
		Form: newFormView(flow.StepOne(), button,
			fieldSpec{Name: account.FieldFullName, Label: "Nome Completo", Placeholder: "Nome Completo"},
			fieldSpec{Name: account.FieldNationalID, Label: "CPF", Placeholder: "000.000.000-00", CharLimit: 14},
			fieldSpec{Name: account.FieldPhone, Label: "Telefone", Placeholder: "(00) 00000-0000", CharLimit: 15},
			fieldSpec{Name: account.FieldEmail, Label: "E-mail", Placeholder: "voce@exemplo.com", Icon: "📧"},
			fieldSpec{Name: account.FieldPassword, Label: "Senha", Placeholder: "Senha", Icon: "🔒", Secret: true},
			fieldSpec{Name: account.FieldConfirmPassword, Label: "Confirme a senha", Placeholder: "Confirme a senha", Icon: "🔒", Secret: true},
		),
		Notice: notice,
		ctx:    ctx,
		Help:   help.New(),
		Keys:   newFormKeyMap(),
	}
}

// Init initializes the register model
func (m RegisterModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m RegisterModel) Update(msg tea.Msg) (RegisterModel, tea.Cmd) {
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
		if msg.form != account.FormRegisterStepOne {
			return m, nil
		}
		m.Form = m.Form.finish(msg.outcome)
		if msg.outcome.Succeeded() {
			m.Notice = ""
			return m, navigate(routes.Register2)
		}
	}
	return m, nil
}

// View renders the first registration step
func (m RegisterModel) View() string {
	var b strings.Builder

	b.WriteString(ui.NewStepIndicator(1, registrationSteps...).SetWidth(FormWidth).Render())
	b.WriteString("\n\n")

	if m.Notice != "" {
		b.WriteString(RenderNotice(m.Notice))
		b.WriteString("\n\n")
	}

	b.WriteString(m.Form.view())
	b.WriteString("\n\n")
	b.WriteString(ui.NoteStyle.Render("Não tem problema, esquece!"))

	return RenderApplicationContainer(routes.Register.Title(), true, b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}
