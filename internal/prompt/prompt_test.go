package prompt

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/infohub/infohub/internal/account"
	"github.com/infohub/infohub/internal/config"
	"github.com/infohub/infohub/internal/ui"
	"github.com/infohub/infohub/internal/validation"
)

type stubDriver struct {
	inputs    []string
	passwords []string
	inputPos  int
	passPos   int
	asked     []string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.asked = append(s.asked, cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	s.asked = append(s.asked, cfg.Message)
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

type abortDriver struct{}

func (abortDriver) Input(context.Context, InputConfig) (string, error)    { return "", ErrAborted }
func (abortDriver) Password(context.Context, InputConfig) (string, error) { return "", ErrAborted }

func newService() *account.Simulated {
	cfg := config.New()
	cfg.Simulation.LoginDelay = 0
	cfg.Simulation.RegisterDelay = 0
	return account.NewSimulated(cfg)
}

func newTestRunner(d Driver) (*Runner, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewRunner(d, ui.NewPrinter(&buf).SetWidth(60)), &buf
}

func TestLogin(t *testing.T) {
	d := &stubDriver{inputs: []string{"ana@exemplo.com"}, passwords: []string{"segredo"}}
	r, out := newTestRunner(d)

	user, err := Login(context.Background(), r, newService())
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Email != "ana@exemplo.com" {
		t.Errorf("Email = %q, want %q", user.Email, "ana@exemplo.com")
	}
	if !strings.Contains(out.String(), account.MsgLoginSuccess) {
		t.Errorf("output missing success message:\n%s", out.String())
	}
}

func TestLoginAsksOnlyFailingFieldsAgain(t *testing.T) {
	d := &stubDriver{inputs: []string{"", "ana@exemplo.com"}, passwords: []string{"segredo"}}
	r, out := newTestRunner(d)

	if _, err := Login(context.Background(), r, newService()); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	want := []string{"E-mail ou CPF", "Senha", "E-mail ou CPF"}
	if diff := cmp.Diff(want, d.asked); diff != "" {
		t.Errorf("questions mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out.String(), validation.MsgRequiredField) {
		t.Errorf("output missing required-field error:\n%s", out.String())
	}
}

func TestLoginTooManyAttempts(t *testing.T) {
	d := &stubDriver{inputs: []string{"", ""}, passwords: []string{"", ""}}
	r, _ := newTestRunner(d)
	r.SetMaxAttempts(2)

	_, err := Login(context.Background(), r, newService())
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Errorf("Login() error = %v, want ErrTooManyAttempts", err)
	}
	if len(d.asked) != 4 {
		t.Errorf("asked %d questions, want 4", len(d.asked))
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newService()
	if _, err := svc.Register(context.Background(), account.User{Email: "ana@exemplo.com", Password: "segredo"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	d := &stubDriver{inputs: []string{"ana@exemplo.com"}, passwords: []string{"errada"}}
	r, out := newTestRunner(d)

	_, err := Login(context.Background(), r, svc)
	if !errors.Is(err, account.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
	if !strings.Contains(out.String(), account.MsgLoginFailed) {
		t.Errorf("output missing login failure message:\n%s", out.String())
	}
}

func TestLoginAborted(t *testing.T) {
	r, _ := newTestRunner(abortDriver{})

	_, err := Login(context.Background(), r, newService())
	if !errors.Is(err, ErrAborted) {
		t.Errorf("Login() error = %v, want ErrAborted", err)
	}
}

func TestRegister(t *testing.T) {
	d := &stubDriver{
		inputs:    []string{"Ana Souza", "52998224725", "11987654321", "ana@exemplo.com", "sim", "Terra"},
		passwords: []string{"segredo", "segredo"},
	}
	r, out := newTestRunner(d)
	flow := account.NewFlow(newService(), account.DefaultRules())

	user, err := Register(context.Background(), r, flow)
	if err != nil {
		t.Fatalf("Register() error = %v\n%s", err, out.String())
	}

	want := account.User{
		FullName:   "Ana Souza",
		NationalID: "529.982.247-25",
		Phone:      "(11) 98765-4321",
		Email:      "ana@exemplo.com",
		PersonType: "sim",
		World:      "Terra",
	}
	got := account.User{
		FullName:   user.FullName,
		NationalID: user.NationalID,
		Phone:      user.Phone,
		Email:      user.Email,
		PersonType: user.PersonType,
		World:      user.World,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("user mismatch (-want +got):\n%s", diff)
	}
	if flow.Handoff().Present() {
		t.Error("handoff still present after registration")
	}
	if !strings.Contains(out.String(), account.MsgRegisterSuccess) {
		t.Errorf("output missing success message:\n%s", out.String())
	}
}

func TestRegisterPasswordMismatchAsksConfirmationAgain(t *testing.T) {
	d := &stubDriver{
		inputs:    []string{"Ana Souza", "52998224725", "11987654321", "ana@exemplo.com", "sim", "Terra"},
		passwords: []string{"segredo", "outra", "segredo"},
	}
	r, _ := newTestRunner(d)
	flow := account.NewFlow(newService(), account.DefaultRules())

	if _, err := Register(context.Background(), r, flow); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if got := d.asked[6]; got != "Confirme a senha" {
		t.Errorf("seventh question = %q, want the confirmation again", got)
	}
}

func TestRegisterKeepsNonDigitCPFForValidation(t *testing.T) {
	d := &stubDriver{
		inputs:    []string{"Ana Souza", "abc", "11987654321", "ana@exemplo.com", "52998224725", "sim", "Terra"},
		passwords: []string{"segredo", "segredo"},
	}
	r, out := newTestRunner(d)
	flow := account.NewFlow(newService(), account.DefaultRules())

	if _, err := Register(context.Background(), r, flow); err != nil {
		t.Fatalf("Register() error = %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), validation.MsgNationalIDLength) {
		t.Errorf("output missing CPF length error:\n%s", out.String())
	}
	if strings.Contains(out.String(), validation.MsgRequiredField) {
		t.Errorf("CPF without digits was reported as empty:\n%s", out.String())
	}
}
