package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/infohub/infohub/internal/logging"
	"github.com/infohub/infohub/internal/routes"
	"github.com/infohub/infohub/internal/ui"
)

// MsgSocialUnavailable is shown when a social login button is chosen.
const MsgSocialUnavailable = "Login social ainda não disponível"

type homeAction int

const (
	actionLogin homeAction = iota
	actionRegister
	actionApple
	actionGoogle
)

// homeItem is an entry of the home menu
type homeItem struct {
	title  string
	desc   string
	action homeAction
}

func (i homeItem) Title() string       { return i.title }
func (i homeItem) Description() string { return i.desc }
func (i homeItem) FilterValue() string { return i.title }

// HomeModel is the landing screen
type HomeModel struct {
	Menu   list.Model
	Notice string
	Width  int
	Height int
	Help   help.Model
	Keys   homeKeyMap
}

// NewHomeModel creates the landing screen
func NewHomeModel() HomeModel {
	items := []list.Item{
		homeItem{title: "LOGIN", desc: "Já tenho uma conta", action: actionLogin},
		homeItem{title: "CADASTRE-SE", desc: "Criar uma conta nova", action: actionRegister},
		homeItem{title: "🍎 Apple", desc: "Entrar com Apple", action: actionApple},
		homeItem{title: "G Google", desc: "Entrar com Google", action: actionGoogle},
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ui.PrimaryColor).
		BorderForeground(ui.PrimaryColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ui.SecondaryColor).
		BorderForeground(ui.PrimaryColor)

	menu := list.New(items, delegate, FormWidth, len(items)*3)
	menu.SetShowTitle(false)
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.SetShowHelp(false)
	menu.SetShowPagination(false)

	return HomeModel{
		Menu: menu,
		Help: help.New(),
		Keys: newHomeKeyMap(),
	}
}

// Init initializes the home model
func (m HomeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.Menu, cmd = m.Menu.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.Keys.Login):
		return m, navigate(routes.Login)

	case key.Matches(keyMsg, m.Keys.Signup):
		return m, navigate(routes.Register)

	case key.Matches(keyMsg, m.Keys.Select):
		item, ok := m.Menu.SelectedItem().(homeItem)
		if !ok {
			return m, nil
		}
		return m.choose(item.action)
	}

	m.Notice = ""
	var cmd tea.Cmd
	m.Menu, cmd = m.Menu.Update(msg)
	return m, cmd
}

func (m HomeModel) choose(action homeAction) (HomeModel, tea.Cmd) {
	switch action {
	case actionLogin:
		return m, navigate(routes.Login)
	case actionRegister:
		return m, navigate(routes.Register)
	case actionApple:
		return m.socialLogin("apple"), nil
	case actionGoogle:
		return m.socialLogin("google"), nil
	}
	return m, nil
}

// socialLogin only records the choice; no provider is integrated.
func (m HomeModel) socialLogin(provider string) HomeModel {
	logging.Info("Social login requested", zap.String("provider", provider))
	m.Notice = MsgSocialUnavailable
	return m
}

// View renders the home screen
func (m HomeModel) View() string {
	var b strings.Builder

	b.WriteString(ui.Center(FormWidth, ui.Logo()))
	b.WriteString("\n\n")
	b.WriteString(ui.Center(FormWidth, lipgloss.NewStyle().Bold(true).Render(Tagline)))
	b.WriteString("\n\n")
	b.WriteString(m.Menu.View())

	if m.Notice != "" {
		b.WriteString("\n\n")
		b.WriteString(RenderNotice(m.Notice))
	}

	b.WriteString("\n\n")
	b.WriteString(ui.Center(FormWidth, versionLine()))

	return RenderApplicationContainer(routes.Home.Title(), false, b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}
