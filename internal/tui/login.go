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

// LoginModel is the email/password screen
type LoginModel struct {
	Login *account.LoginForm
	Form  formView
	Flash string

	ctx    context.Context
	Width  int
	Height int
	Help   help.Model
	Keys   loginKeyMap
}

// NewLoginModel creates the login screen
func NewLoginModel(ctx context.Context, auth account.Authenticator, flash string) LoginModel {
	login := account.NewLoginForm(auth)
	button := ui.Button{Label: "Entrar", LoadingLabel: "Entrando...", Size: ui.SizeLarge}

	return LoginModel{
		Login: login,
		Form: newFormView(login.Controller, button,
			fieldSpec{Name: account.FieldEmail, Label: "E-mail ou CPF", Placeholder: "voce@exemplo.com", Icon: "📧"},
			fieldSpec{Name: account.FieldPassword, Label: "Senha", Placeholder: "Senha", Icon: "🔒", Secret: true},
		),
		Flash: flash,
		ctx:   ctx,
		Help:  help.New(),
		Keys:  newLoginKeyMap(),
	}
}

// Init initializes the login model
func (m LoginModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.Form.Loading() {
			switch {
			case key.Matches(msg, m.Keys.Back):
				return m, goBack
			case key.Matches(msg, m.Keys.Forgot):
				return m, navigate(routes.ForgotPassword)
			case key.Matches(msg, m.Keys.Register):
				return m, navigate(routes.Register)
			}
		}
		m.Flash = ""
		var cmd tea.Cmd
		m.Form, cmd = m.Form.update(m.ctx, msg)
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Form, cmd = m.Form.tick(msg)
		return m, cmd

	case submitResultMsg:
		if msg.form != account.FormLogin {
			return m, nil
		}
		m.Form = m.Form.finish(msg.outcome)
		if msg.outcome.Succeeded() {
			user, _ := m.Login.User()
			return m, func() tea.Msg { return loggedInMsg{user: user} }
		}
	}
	return m, nil
}

// View renders the login screen
func (m LoginModel) View() string {
	var b strings.Builder

	if m.Flash != "" {
		b.WriteString(RenderFlash(m.Flash))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderTitle("Bem vindo de volta!"))
	b.WriteString("\n")
	b.WriteString(m.Form.view())
	b.WriteString("\n\n")
	b.WriteString(LinkStyle.Render("Recuperar senha"))
	b.WriteString(HelpStyle.Render(" (ctrl+r)"))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("Não tem uma conta? "))
	b.WriteString(LinkStyle.Render("Cadastre-se aqui!"))
	b.WriteString(HelpStyle.Render(" (ctrl+n)"))

	return RenderApplicationContainer(routes.Login.Title(), true, b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}
