package account

import (
	"errors"

	"github.com/infohub/infohub/internal/validation"
)

var (
	// ErrHandoffMissing means step two was reached without a saved step one.
	ErrHandoffMissing = errors.New("registration step one data not found")

	// ErrHandoffCorrupt means the saved step one could not be decoded.
	ErrHandoffCorrupt = errors.New("registration step one data is corrupt")

	// ErrInvalidCredentials is returned by an Authenticator that rejects the
	// email and password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned by a Registrar when the email is already in use.
	ErrEmailTaken = errors.New("email already registered")
)

// User-facing messages.
const (
	MsgLoginFailed       = "Email ou senha incorretos"
	MsgGenericError      = "Ocorreu um erro. Tente novamente."
	MsgHandoffMissing    = "Dados da primeira etapa não encontrados"
	MsgEmailTaken        = "Este email já está cadastrado"
	MsgRegisterSuccess   = "Cadastro realizado com sucesso!"
	MsgLoginSuccess      = "Login realizado com sucesso!"
	MsgPasswordResetSent = "Email de recuperação enviado!"
)

// IsHandoffError reports whether err means the registration must restart
// at step one.
func IsHandoffError(err error) bool {
	return errors.Is(err, ErrHandoffMissing) || errors.Is(err, ErrHandoffCorrupt)
}

// UserMessage maps a submission error to the text shown next to the form.
// Internal error detail is never shown.
func UserMessage(err error) string {
	var vErr *validation.Error
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredentials):
		return MsgLoginFailed
	case errors.Is(err, ErrEmailTaken):
		return MsgEmailTaken
	case IsHandoffError(err):
		return MsgHandoffMissing
	case errors.As(err, &vErr):
		return vErr.Message
	default:
		return MsgGenericError
	}
}
