package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/infohub/infohub/internal/account"
	"github.com/infohub/infohub/internal/form"
	"github.com/infohub/infohub/internal/logging"
	"github.com/infohub/infohub/internal/routes"
	"github.com/infohub/infohub/internal/ui"
	"github.com/infohub/infohub/internal/validation"
)

const formForgotPassword = "forgot-password"

// ForgotModel asks for the email to send recovery instructions to. No
// message is actually sent yet.
type ForgotModel struct {
	Form formView

	ctx    context.Context
	Width  int
	Height int
	Help   help.Model
	Keys   formKeyMap
}

// NewForgotModel creates the password recovery screen
func NewForgotModel(ctx context.Context) ForgotModel {
	c := form.New(form.Values{account.FieldEmail: ""},
		form.WithName(formForgotPassword),
		form.WithValidate(validation.Compose(validation.Field(account.FieldEmail, validation.Email))),
		form.WithSubmit(func(_ context.Context, v form.Values) error {
			logging.Info("Password recovery requested", zap.String("email", v[account.FieldEmail]))
			return nil
		}),
	)

	button := ui.Button{Label: "Enviar", LoadingLabel: "Enviando...", Variant: ui.VariantSecondary}

	return ForgotModel{
		Form: newFormView(c, button,
			fieldSpec{Name: account.FieldEmail, Label: "E-mail", Placeholder: "voce@exemplo.com", Icon: "📧"},
		),
		ctx:  ctx,
		Help: help.New(),
		Keys: newFormKeyMap(),
	}
}

// Init initializes the model
func (m ForgotModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m ForgotModel) Update(msg tea.Msg) (ForgotModel, tea.Cmd) {
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
		if msg.form != formForgotPassword {
			return m, nil
		}
		m.Form = m.Form.finish(msg.outcome)
		if msg.outcome.Succeeded() {
			return m, func() tea.Msg { return goBackMsg{flash: account.MsgPasswordResetSent} }
		}
	}
	return m, nil
}

// View renders the recovery screen
func (m ForgotModel) View() string {
	var b strings.Builder

	b.WriteString(RenderSubtitle("Informe o e-mail da sua conta para receber as instruções."))
	b.WriteString("\n\n")
	b.WriteString(m.Form.view())

	return RenderApplicationContainer(routes.ForgotPassword.Title(), true, b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}
