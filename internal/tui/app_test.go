package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/infohub/infohub/internal/account"
	"github.com/infohub/infohub/internal/config"
	"github.com/infohub/infohub/internal/form"
	"github.com/infohub/infohub/internal/routes"
	"github.com/infohub/infohub/internal/ui"
)

func testConfig() *config.Config {
	cfg := config.New()
	cfg.Simulation.LoginDelay = 0
	cfg.Simulation.RegisterDelay = 0
	return cfg
}

func newTestApp(t *testing.T, start routes.Route) AppModel {
	t.Helper()
	m := NewAppModel(Options{Config: testConfig(), Start: start})
	t.Cleanup(m.cancel)
	return m
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

// collect runs cmd and flattens batches into the messages they produce.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// send feeds msg to the model and keeps feeding the messages its commands
// produce until none are left. Spinner ticks are dropped since they sleep.
// It reports whether the program asked to quit.
func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, bool) {
	t.Helper()
	queue := []tea.Msg{msg}
	quit := false
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		switch next.(type) {
		case spinner.TickMsg:
			continue
		case tea.QuitMsg:
			quit = true
			continue
		}

		model, cmd := m.Update(next)
		m = model.(AppModel)
		queue = append(queue, collect(cmd)...)
	}
	return m, quit
}

func TestNewAppModelStartsAtHome(t *testing.T) {
	m := newTestApp(t, "")

	if got := m.History.Current(); got != routes.Home {
		t.Errorf("Current() = %q, want %q", got, routes.Home)
	}
	if !strings.Contains(m.View(), Tagline) {
		t.Error("home view does not contain the tagline")
	}
}

func TestNavigateAndBack(t *testing.T) {
	m := newTestApp(t, "")

	m, _ = send(t, m, navigateMsg{route: routes.Login})
	m, _ = send(t, m, navigateMsg{route: routes.ForgotPassword})
	if got := m.History.Current(); got != routes.ForgotPassword {
		t.Fatalf("Current() = %q, want %q", got, routes.ForgotPassword)
	}

	m, _ = send(t, m, escKey)
	if got := m.History.Current(); got != routes.Login {
		t.Errorf("after esc Current() = %q, want %q", got, routes.Login)
	}

	m, quit := send(t, m, escKey)
	if got := m.History.Current(); got != routes.Home {
		t.Errorf("after second esc Current() = %q, want %q", got, routes.Home)
	}
	if quit {
		t.Error("going back to home should not quit")
	}
}

func TestBackAtRootQuits(t *testing.T) {
	m := newTestApp(t, "")

	_, quit := send(t, m, goBackMsg{})
	if !quit {
		t.Error("goBack at the root did not quit")
	}
}

func TestCtrlCQuitsAnywhere(t *testing.T) {
	m := newTestApp(t, routes.Login)

	_, quit := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !quit {
		t.Error("ctrl+c did not quit")
	}
	if m.ctx.Err() == nil {
		t.Error("ctrl+c did not cancel the application context")
	}
}

func TestStepTwoWithoutHandoffRedirects(t *testing.T) {
	m := newTestApp(t, "")

	m, _ = send(t, m, navigateMsg{route: routes.Register2})

	if got := m.History.Current(); got != routes.Register {
		t.Fatalf("Current() = %q, want %q", got, routes.Register)
	}
	if got := m.RegisterModel.Notice; got != account.MsgHandoffMissing {
		t.Errorf("Notice = %q, want %q", got, account.MsgHandoffMissing)
	}

	m, _ = send(t, m, escKey)
	if got := m.History.Current(); got != routes.Home {
		t.Errorf("back from redirect Current() = %q, want %q", got, routes.Home)
	}
}

func TestHandoffLostReturnsToStepOne(t *testing.T) {
	m := newTestApp(t, "")
	m.History.Push(routes.Register)
	m.History.Push(routes.Register2)

	m, _ = send(t, m, handoffLostMsg{err: account.ErrHandoffCorrupt})

	want := []routes.Route{routes.Register, routes.Home}
	var got []routes.Route
	for m.History.Len() > 0 {
		got = append(got, m.History.Current())
		if _, ok := m.History.Back(); !ok {
			break
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestDashboardRequiresUser(t *testing.T) {
	m := newTestApp(t, routes.Dashboard)

	if got := m.History.Current(); got != routes.Home {
		t.Errorf("Current() = %q, want %q", got, routes.Home)
	}
}

func TestLoginFlow(t *testing.T) {
	m := newTestApp(t, "")
	m, _ = send(t, m, navigateMsg{route: routes.Login})

	m, _ = send(t, m, typeText("ana@exemplo.com"))
	m, _ = send(t, m, enterKey)
	m, _ = send(t, m, typeText("segredo"))
	m, _ = send(t, m, enterKey)

	if got := m.History.Current(); got != routes.Dashboard {
		t.Fatalf("Current() = %q, want %q", got, routes.Dashboard)
	}
	user, ok := m.User()
	if !ok {
		t.Fatal("User() not set after login")
	}
	if user.Email != "ana@exemplo.com" {
		t.Errorf("Email = %q, want %q", user.Email, "ana@exemplo.com")
	}
	if m.History.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.History.Len())
	}

	m, _ = send(t, m, loggedOutMsg{})
	if got := m.History.Current(); got != routes.Home {
		t.Errorf("after logout Current() = %q, want %q", got, routes.Home)
	}
	if _, ok := m.User(); ok {
		t.Error("User() still set after logout")
	}
}

func TestLoginRejectsEmptyFields(t *testing.T) {
	m := newTestApp(t, routes.Login)

	m, _ = send(t, m, tabKey)
	m, _ = send(t, m, enterKey)

	if got := m.History.Current(); got != routes.Login {
		t.Fatalf("Current() = %q, want %q", got, routes.Login)
	}
	errs := m.LoginModel.Login.Errors()
	if !errs.Has(account.FieldEmail) || !errs.Has(account.FieldPassword) {
		t.Errorf("Errors() = %v, want both fields reported", errs)
	}
	if m.LoginModel.Form.focus != 0 {
		t.Errorf("focus = %d, want the first failing field", m.LoginModel.Form.focus)
	}
}

func TestRegistrationFlow(t *testing.T) {
	m := newTestApp(t, "")
	m, _ = send(t, m, navigateMsg{route: routes.Register})

	for _, value := range []string{"Ana Souza", "52998224725", "11987654321", "ana@exemplo.com", "segredo", "segredo"} {
		m, _ = send(t, m, typeText(value))
		m, _ = send(t, m, enterKey)
	}

	if got := m.History.Current(); got != routes.Register2 {
		t.Fatalf("Current() = %q, want %q; errors %v", got, routes.Register2, m.RegisterModel.Form.controller.Errors())
	}
	if got := m.Register2Model.Form.controller.Value(account.FieldEmail); got != "ana@exemplo.com" {
		t.Errorf("prefilled email = %q", got)
	}

	m, _ = send(t, m, typeText("sim"))
	m, _ = send(t, m, enterKey)
	m, _ = send(t, m, typeText("Terra"))
	m, _ = send(t, m, tabKey) // read-only fields are skipped
	m, _ = send(t, m, enterKey)

	if got := m.History.Current(); got != routes.Login {
		t.Fatalf("Current() = %q, want %q", got, routes.Login)
	}
	if got := m.LoginModel.Flash; got != account.MsgRegisterSuccess {
		t.Errorf("Flash = %q, want %q", got, account.MsgRegisterSuccess)
	}
	user, ok := m.flow.Registered()
	if !ok {
		t.Fatal("Registered() = false")
	}
	if user.NationalID != "529.982.247-25" {
		t.Errorf("NationalID = %q, want the formatted value", user.NationalID)
	}
	if m.flow.Handoff().Present() {
		t.Error("handoff still present after registration")
	}
}

func TestStepOneValuesSurviveBack(t *testing.T) {
	m := newTestApp(t, "")
	err := m.flow.Handoff().SaveStepOne(account.RegisterStepOne{
		FullName:        "Ana Souza",
		NationalID:      "529.982.247-25",
		Phone:           "(11) 98765-4321",
		Email:           "ana@exemplo.com",
		Password:        "segredo",
		ConfirmPassword: "segredo",
	})
	if err != nil {
		t.Fatalf("SaveStepOne() error = %v", err)
	}

	m, _ = send(t, m, navigateMsg{route: routes.Register})
	m, _ = send(t, m, navigateMsg{route: routes.Register2})
	m, _ = send(t, m, escKey)

	if got := m.History.Current(); got != routes.Register {
		t.Fatalf("Current() = %q, want %q", got, routes.Register)
	}
	if got := m.RegisterModel.Form.controller.Value(account.FieldFullName); got != "Ana Souza" {
		t.Errorf("restored name = %q, want %q", got, "Ana Souza")
	}
}

func TestHomeSocialLoginShowsNotice(t *testing.T) {
	m := newTestApp(t, "")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, enterKey)

	if got := m.History.Current(); got != routes.Home {
		t.Errorf("Current() = %q, want %q", got, routes.Home)
	}
	if got := m.HomeModel.Notice; got != MsgSocialUnavailable {
		t.Errorf("Notice = %q, want %q", got, MsgSocialUnavailable)
	}
}

func TestFormViewFailureShowsGenericMessage(t *testing.T) {
	c := form.New(form.Values{"email": "a@b.co"},
		form.WithSubmit(func(_ context.Context, _ form.Values) error {
			return errors.New("boom")
		}),
	)
	v := newFormView(c, ui.Button{Label: "Enviar"}, fieldSpec{Name: "email", Label: "E-mail"})

	v, cmd := v.update(context.Background(), enterKey)
	if !v.Loading() {
		t.Error("Loading() = false right after submit")
	}

	var out form.Outcome
	for _, msg := range collect(cmd) {
		if res, ok := msg.(submitResultMsg); ok {
			out = res.outcome
		}
	}
	v = v.finish(out)

	if v.Loading() {
		t.Error("Loading() = true after finish")
	}
	if v.formError != account.MsgGenericError {
		t.Errorf("formError = %q, want %q", v.formError, account.MsgGenericError)
	}
}

func TestFormViewFormatsOnBlur(t *testing.T) {
	c := form.New(form.Values{account.FieldPhone: "", account.FieldEmail: ""})
	v := newFormView(c, ui.Button{Label: "Enviar"},
		fieldSpec{Name: account.FieldPhone, Label: "Telefone"},
		fieldSpec{Name: account.FieldEmail, Label: "E-mail"},
	)

	v, _ = v.update(context.Background(), typeText("1143218765"))
	v, _ = v.update(context.Background(), tabKey)

	if got := c.Value(account.FieldPhone); got != "(11) 4321-8765" {
		t.Errorf("Value(telefone) = %q, want formatted", got)
	}
	if got := v.inputs[0].Value(); got != "(11) 4321-8765" {
		t.Errorf("input value = %q, want formatted", got)
	}
}

func TestFormViewKeepsValueWithoutDigits(t *testing.T) {
	c := form.New(form.Values{account.FieldNationalID: "", account.FieldEmail: ""})
	v := newFormView(c, ui.Button{Label: "Enviar"},
		fieldSpec{Name: account.FieldNationalID, Label: "CPF"},
		fieldSpec{Name: account.FieldEmail, Label: "E-mail"},
	)

	v, _ = v.update(context.Background(), typeText("abc"))
	v, _ = v.update(context.Background(), tabKey)

	if got := c.Value(account.FieldNationalID); got != "abc" {
		t.Errorf("Value(cpf) = %q, want the typed value", got)
	}
}
