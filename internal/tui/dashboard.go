package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/infohub/infohub/internal/account"
	"github.com/infohub/infohub/internal/format"
	"github.com/infohub/infohub/internal/routes"
	"github.com/infohub/infohub/internal/ui"
)

// DashboardModel is shown after login
type DashboardModel struct {
	User account.User

	Width  int
	Height int
	Help   help.Model
	Keys   dashboardKeyMap
}

// NewDashboardModel creates the dashboard for user
func NewDashboardModel(user account.User) DashboardModel {
	return DashboardModel{
		User: user,
		Help: help.New(),
		Keys: newDashboardKeyMap(),
	}
}

// Init initializes the dashboard model
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.Keys.Logout):
			return m, func() tea.Msg { return loggedOutMsg{} }
		case key.Matches(keyMsg, m.Keys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

// details lists the known user fields in display order
func (m DashboardModel) details() []ui.Detail {
	u := m.User
	details := []ui.Detail{{Key: "Email", Value: u.Email}}
	if u.FullName != "" {
		details = append(details, ui.Detail{Key: "Nome", Value: u.FullName})
	}
	if u.NationalID != "" {
		details = append(details, ui.Detail{Key: "CPF", Value: format.NationalID(u.NationalID)})
	}
	if u.Phone != "" {
		details = append(details, ui.Detail{Key: "Telefone", Value: format.Phone(u.Phone)})
	}
	if u.World != "" {
		details = append(details, ui.Detail{Key: "Mundo", Value: u.World})
	}
	if u.ID != uuid.Nil {
		details = append(details, ui.Detail{Key: "ID", Value: u.ID.String()})
	}
	if !u.CreatedAt.IsZero() {
		details = append(details, ui.Detail{Key: "Desde", Value: u.CreatedAt.Format("02/01/2006")})
	}
	return details
}

// View renders the dashboard
func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Olá!"))
	b.WriteString("\n")
	b.WriteString(ui.NewSuccessResult(account.MsgLoginSuccess, m.details()...).SetWidth(FormWidth).Render())

	return RenderApplicationContainer(routes.Dashboard.Title(), false, b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}
