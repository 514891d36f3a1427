package validation

import "fmt"

// User-facing messages. The product ships in Portuguese.
const (
	MsgRequiredField     = "Este campo é obrigatório"
	MsgInvalidEmail      = "Por favor, insira um email válido"
	MsgPasswordMismatch  = "As senhas não coincidem"
	MsgNationalIDLength  = "CPF deve ter 11 dígitos"
	MsgNationalIDInvalid = "CPF inválido"
)

// Defaults for the configurable rules.
const (
	DefaultPasswordMinLength = 6
	DefaultPhoneMinDigits    = 10
	NationalIDLength         = 11
)

// MsgPasswordMinLength returns the minimum length message.
func MsgPasswordMinLength(min int) string {
	return fmt.Sprintf("A senha deve ter pelo menos %d caracteres", min)
}

// MsgPhoneMinDigits returns the minimum digits message.
func MsgPhoneMinDigits(min int) string {
	return fmt.Sprintf("Telefone deve ter pelo menos %d dígitos", min)
}

// MsgRequiredNamed returns the required message for a labelled field.
func MsgRequiredNamed(label string) string {
	return label + " é obrigatório"
}
