package account

import (
	"context"
	"sync"

	"github.com/infohub/infohub/internal/form"
)

// LoginForm is the login controller together with the user it signed in.
type LoginForm struct {
	*form.Controller

	auth Authenticator

	mu   sync.Mutex
	user *User
}

// NewLoginForm builds the login form. Both fields are required; submission
// goes to auth.
func NewLoginForm(auth Authenticator, opts ...form.Option) *LoginForm {
	l := &LoginForm{auth: auth}
	base := []form.Option{
		form.WithName(FormLogin),
		form.WithValidate(LoginValidator()),
		form.WithSubmit(l.login),
	}
	l.Controller = form.New(emptyValues(FieldEmail, FieldPassword), append(base, opts...)...)
	return l
}

func (l *LoginForm) login(ctx context.Context, values form.Values) error {
	user, err := l.auth.Login(ctx, loginDataFromValues(values))
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.user = &user
	l.mu.Unlock()
	return nil
}

// User returns the signed-in user after a successful submission.
func (l *LoginForm) User() (User, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.user == nil {
		return User{}, false
	}
	return *l.user, true
}
