package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/infohub/infohub/internal/account"
	"github.com/infohub/infohub/internal/config"
	"github.com/infohub/infohub/internal/routes"
)

// Messages for screen transitions
type navigateMsg struct {
	route routes.Route
}

type goBackMsg struct {
	flash string
}

type loggedInMsg struct {
	user account.User
}

type loggedOutMsg struct{}

type registeredMsg struct{}

type handoffLostMsg struct {
	err error
}

func navigate(r routes.Route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{route: r} }
}

func goBack() tea.Msg {
	return goBackMsg{}
}

// Options configures the application.
type Options struct {
	Config    *config.Config
	Auth      account.Authenticator
	Registrar account.Registrar
	Start     routes.Route
}

// AppModel is the top-level coordinator model that manages screen transitions
type AppModel struct {
	History *routes.History

	// Shared application state
	ctx    context.Context
	cancel context.CancelFunc
	auth   account.Authenticator
	flow   *account.Flow
	user   *account.User
	flash  string

	// Screen models
	HomeModel      HomeModel
	LoginModel     LoginModel
	RegisterModel  RegisterModel
	Register2Model Register2Model
	DashboardModel DashboardModel
	ForgotModel    ForgotModel

	// UI state
	Width  int
	Height int
}

// NewAppModel creates a new application model starting at opts.Start (Home
// when empty). Missing services fall back to the simulated backend.
func NewAppModel(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}

	var simulated *account.Simulated
	if opts.Auth == nil || opts.Registrar == nil {
		simulated = account.NewSimulated(cfg)
	}
	auth := opts.Auth
	if auth == nil {
		auth = simulated
	}
	registrar := opts.Registrar
	if registrar == nil {
		registrar = simulated
	}

	start := opts.Start
	if start == "" {
		start = routes.Home
	}

	ctx, cancel := context.WithCancel(context.Background())

	m := AppModel{
		History: routes.NewHistory(routes.Home),
		ctx:     ctx,
		cancel:  cancel,
		auth:    auth,
		flow:    account.NewFlow(registrar, account.RulesFromConfig(cfg)),
	}
	if start != routes.Home {
		m.History.Push(start)
	}
	return m.enter(m.History.Current())
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m = m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}

	case navigateMsg:
		m.History.Push(msg.route)
		return m.enter(m.History.Current()), nil

	case goBackMsg:
		route, ok := m.History.Back()
		if !ok {
			m.cancel()
			return m, tea.Quit
		}
		m.flash = msg.flash
		return m.enter(route), nil

	case loggedInMsg:
		user := msg.user
		m.user = &user
		m.History.Reset(routes.Home)
		m.History.Push(routes.Dashboard)
		return m.enter(routes.Dashboard), nil

	case loggedOutMsg:
		m.user = nil
		m.History.Reset(routes.Home)
		return m.enter(routes.Home), nil

	case registeredMsg:
		m.flash = account.MsgRegisterSuccess
		m.History.Reset(routes.Home)
		m.History.Push(routes.Login)
		return m.enter(routes.Login), nil

	case handoffLostMsg:
		return m.backToStepOne(msg.err), nil
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.History.Current() {
	case routes.Home:
		m.HomeModel, cmd = m.HomeModel.Update(msg)
	case routes.Login:
		m.LoginModel, cmd = m.LoginModel.Update(msg)
	case routes.Register:
		m.RegisterModel, cmd = m.RegisterModel.Update(msg)
	case routes.Register2:
		m.Register2Model, cmd = m.Register2Model.Update(msg)
	case routes.Dashboard:
		m.DashboardModel, cmd = m.DashboardModel.Update(msg)
	case routes.ForgotPassword:
		m.ForgotModel, cmd = m.ForgotModel.Update(msg)
	}

	return m, cmd
}

// enter builds the screen for route. Screens are rebuilt on every visit;
// form state that must survive lives in the registration flow.
func (m AppModel) enter(route routes.Route) AppModel {
	flash := m.flash
	m.flash = ""

	switch route {
	case routes.Home:
		m.HomeModel = NewHomeModel()

	case routes.Login:
		m.LoginModel = NewLoginModel(m.ctx, m.auth, flash)

	case routes.Register:
		m.RegisterModel = NewRegisterModel(m.ctx, m.flow, "")

	case routes.Register2:
		model, err := NewRegister2Model(m.ctx, m.flow)
		if err != nil {
			return m.backToStepOne(err)
		}
		m.Register2Model = model

	case routes.Dashboard:
		if m.user == nil {
			m.History.Reset(routes.Home)
			return m.enter(routes.Home)
		}
		m.DashboardModel = NewDashboardModel(*m.user)

	case routes.ForgotPassword:
		m.ForgotModel = NewForgotModel(m.ctx)
	}

	return m.resize()
}

// backToStepOne leaves step two for step one, explaining why.
func (m AppModel) backToStepOne(err error) AppModel {
	if m.History.Current() == routes.Register2 {
		if prev, _ := m.History.Back(); prev != routes.Register {
			m.History.Push(routes.Register)
		}
	} else {
		m.History.Push(routes.Register)
	}
	m.RegisterModel = NewRegisterModel(m.ctx, m.flow, account.UserMessage(err))
	return m.resize()
}

// resize copies terminal dimensions to every screen model
func (m AppModel) resize() AppModel {
	m.HomeModel.Width, m.HomeModel.Height = m.Width, m.Height
	m.LoginModel.Width, m.LoginModel.Height = m.Width, m.Height
	m.RegisterModel.Width, m.RegisterModel.Height = m.Width, m.Height
	m.Register2Model.Width, m.Register2Model.Height = m.Width, m.Height
	m.DashboardModel.Width, m.DashboardModel.Height = m.Width, m.Height
	m.ForgotModel.Width, m.ForgotModel.Height = m.Width, m.Height
	return m
}

// User returns the signed-in user, if any.
func (m AppModel) User() (account.User, bool) {
	if m.user == nil {
		return account.User{}, false
	}
	return *m.user, true
}

// View renders the current screen
// Each screen handles its own container using RenderApplicationContainer()
func (m AppModel) View() string {
	switch m.History.Current() {
	case routes.Home:
		return m.HomeModel.View()
	case routes.Login:
		return m.LoginModel.View()
	case routes.Register:
		return m.RegisterModel.View()
	case routes.Register2:
		return m.Register2Model.View()
	case routes.Dashboard:
		return m.DashboardModel.View()
	case routes.ForgotPassword:
		return m.ForgotModel.View()
	default:
		return "Unknown screen"
	}
}

// Run starts the interactive application and blocks until it exits.
func Run(opts Options, altScreen bool) error {
	var programOpts []tea.ProgramOption
	if altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	model := NewAppModel(opts)
	defer model.cancel()

	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		return fmt.Errorf("interactive UI error: %w", err)
	}
	return nil
}
