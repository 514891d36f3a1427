package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/infohub/infohub/internal/config"
)

func TestNewSimulatedReadsDelays(t *testing.T) {
	cfg := config.New()
	cfg.Simulation.LoginDelay = 3 * time.Second
	cfg.Simulation.RegisterDelay = 4 * time.Second

	s := NewSimulated(cfg)
	if s.LoginDelay != 3*time.Second || s.RegisterDelay != 4*time.Second {
		t.Errorf("delays = %v/%v, want 3s/4s", s.LoginDelay, s.RegisterDelay)
	}
}

func TestSimulatedHonoursContext(t *testing.T) {
	s := NewSimulated(nil)
	s.LoginDelay = time.Hour
	s.RegisterDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Login(ctx, LoginData{Email: "a@b.co", Password: "x"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Login() error = %v, want context.Canceled", err)
	}
	if _, err := s.Register(ctx, User{Email: "a@b.co"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Register() error = %v, want context.Canceled", err)
	}
	if s.Users() != 0 {
		t.Errorf("Users() = %d after cancelled registration", s.Users())
	}
}

func TestSimulatedRegisterAssignsIdentity(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewSimulated(nil)
	s.now = func() time.Time { return fixed }

	user, err := s.Register(context.Background(), User{Email: "a@b.co"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.ID == uuid.Nil {
		t.Error("ID was not assigned")
	}
	if !user.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", user.CreatedAt, fixed)
	}

	if _, err := s.Register(context.Background(), User{Email: " A@B.CO"}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second Register() error = %v, want ErrEmailTaken", err)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"credentials", ErrInvalidCredentials, MsgLoginFailed},
		{"wrapped credentials", errors.Join(errors.New("ctx"), ErrInvalidCredentials), MsgLoginFailed},
		{"handoff", ErrHandoffMissing, MsgHandoffMissing},
		{"timeout", context.DeadlineExceeded, MsgGenericError},
		{"anything else", errors.New("boom"), MsgGenericError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestRulesFromConfig(t *testing.T) {
	if got := RulesFromConfig(nil); got != DefaultRules() {
		t.Errorf("RulesFromConfig(nil) = %+v, want defaults", got)
	}

	cfg := config.New()
	cfg.Validation.PasswordMinLength = 12
	got := RulesFromConfig(cfg)
	if got.PasswordMinLength != 12 || got.PhoneMinDigits != 10 {
		t.Errorf("RulesFromConfig() = %+v", got)
	}
}
