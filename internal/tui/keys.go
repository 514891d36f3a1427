package tui

import "github.com/charmbracelet/bubbles/key"

// formKeyMap defines key bindings shared by the form screens
type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Submit},
		{k.Back, k.Quit},
	}
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "próximo"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "anterior"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "enviar"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "voltar"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "sair"),
		),
	}
}

// loginKeyMap adds the login screen shortcuts
type loginKeyMap struct {
	formKeyMap
	Forgot   key.Binding
	Register key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k loginKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Forgot, k.Register, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k loginKeyMap) FullHelp() [][]key.Binding {
	return append(k.formKeyMap.FullHelp(), []key.Binding{k.Forgot, k.Register})
}

func newLoginKeyMap() loginKeyMap {
	return loginKeyMap{
		formKeyMap: newFormKeyMap(),
		Forgot: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "recuperar senha"),
		),
		Register: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "cadastre-se"),
		),
	}
}

// homeKeyMap defines key bindings for the home screen
type homeKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Login  key.Binding
	Signup key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k homeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Login, k.Signup, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k homeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Login, k.Signup, k.Quit},
	}
}

func newHomeKeyMap() homeKeyMap {
	return homeKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "subir"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "descer"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "escolher"),
		),
		Login: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "login"),
		),
		Signup: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cadastre-se"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "sair"),
		),
	}
}

// dashboardKeyMap defines key bindings for the dashboard
type dashboardKeyMap struct {
	Logout key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Logout, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Logout, k.Quit}}
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Logout: key.NewBinding(
			key.WithKeys("s", "esc"),
			key.WithHelp("s", "sair da conta"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "fechar"),
		),
	}
}
