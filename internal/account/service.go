package account

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/infohub/infohub/internal/config"
	"github.com/infohub/infohub/internal/logging"
)

// Authenticator checks login credentials.
type Authenticator interface {
	Login(ctx context.Context, data LoginData) (User, error)
}

// Registrar persists a completed registration and returns the stored user.
type Registrar interface {
	Register(ctx context.Context, user User) (User, error)
}

// Simulated stands in for the backend. Each call waits the configured delay
// before answering. Registered users are kept in memory: logging in with a
// registered email requires the matching password, any other email is
// accepted.
type Simulated struct {
	LoginDelay    time.Duration
	RegisterDelay time.Duration

	mu    sync.Mutex
	users map[string]User
	now   func() time.Time
	log   *zap.Logger
}

// NewSimulated creates a Simulated backend with the delays from cfg.
func NewSimulated(cfg *config.Config) *Simulated {
	s := &Simulated{
		users: make(map[string]User),
		now:   time.Now,
		log:   logging.GetLogger().With(zap.String("component", "account")),
	}
	if cfg != nil && cfg.Simulation != nil {
		s.LoginDelay = cfg.Simulation.LoginDelay
		s.RegisterDelay = cfg.Simulation.RegisterDelay
	}
	return s
}

// Login implements Authenticator.
func (s *Simulated) Login(ctx context.Context, data LoginData) (User, error) {
	s.log.Info("Login attempt", zap.String("email", data.Email))

	if err := wait(ctx, s.LoginDelay); err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, known := s.users[emailKey(data.Email)]
	if !known {
		return User{Email: data.Email}, nil
	}
	if user.Password != data.Password {
		s.log.Warn("Login rejected", zap.String("email", data.Email))
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Register implements Registrar.
func (s *Simulated) Register(ctx context.Context, user User) (User, error) {
	s.log.Info("Registration attempt",
		zap.String("email", user.Email),
		zap.String("person_type", user.PersonType),
		zap.String("world", user.World),
	)

	if err := wait(ctx, s.RegisterDelay); err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := emailKey(user.Email)
	if _, taken := s.users[key]; taken {
		return User{}, ErrEmailTaken
	}

	user.ID = uuid.New()
	user.CreatedAt = s.now()
	s.users[key] = user

	s.log.Info("User registered",
		zap.String("id", user.ID.String()),
		zap.String("email", user.Email),
	)
	return user, nil
}

// Users returns the number of registered users.
func (s *Simulated) Users() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
