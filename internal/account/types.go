package account

import (
	"time"

	"github.com/google/uuid"

	"github.com/infohub/infohub/internal/form"
)

// Field names shared by the forms, the handoff payload and the prompts.
const (
	FieldFullName        = "nomeCompleto"
	FieldNationalID      = "cpf"
	FieldPhone           = "telefone"
	FieldEmail           = "email"
	FieldPassword        = "senha"
	FieldConfirmPassword = "confirmarSenha"
	FieldPersonType      = "pessoaFisica"
	FieldWorld           = "mundo"
)

// LoginData is what the login form submits.
type LoginData struct {
	Email    string
	Password string
}

// RegisterStepOne is the first registration step. It is carried to step two
// through the Handoff.
type RegisterStepOne struct {
	FullName        string `yaml:"nomeCompleto"`
	NationalID      string `yaml:"cpf"`
	Phone           string `yaml:"telefone"`
	Email           string `yaml:"email"`
	Password        string `yaml:"senha"`
	ConfirmPassword string `yaml:"confirmarSenha"`
}

// RegisterStepTwo is the second registration step. Email and both password
// fields arrive prefilled from step one.
type RegisterStepTwo struct {
	PersonType      string
	World           string
	Email           string
	Password        string
	ConfirmPassword string
}

// User is a completed registration.
type User struct {
	ID         uuid.UUID
	FullName   string
	NationalID string
	Phone      string
	Email      string
	Password   string
	PersonType string
	World      string
	CreatedAt  time.Time
}

func loginDataFromValues(v form.Values) LoginData {
	return LoginData{
		Email:    v[FieldEmail],
		Password: v[FieldPassword],
	}
}

func stepOneFromValues(v form.Values) RegisterStepOne {
	return RegisterStepOne{
		FullName:        v[FieldFullName],
		NationalID:      v[FieldNationalID],
		Phone:           v[FieldPhone],
		Email:           v[FieldEmail],
		Password:        v[FieldPassword],
		ConfirmPassword: v[FieldConfirmPassword],
	}
}

func stepTwoFromValues(v form.Values) RegisterStepTwo {
	return RegisterStepTwo{
		PersonType:      v[FieldPersonType],
		World:           v[FieldWorld],
		Email:           v[FieldEmail],
		Password:        v[FieldPassword],
		ConfirmPassword: v[FieldConfirmPassword],
	}
}

// newUser merges both steps. Step one is authoritative for the shared
// fields since step two only displays them.
func newUser(one RegisterStepOne, two RegisterStepTwo) User {
	return User{
		FullName:   one.FullName,
		NationalID: one.NationalID,
		Phone:      one.Phone,
		Email:      one.Email,
		Password:   one.Password,
		PersonType: two.PersonType,
		World:      two.World,
	}
}

func emptyValues(fields ...string) form.Values {
	v := make(form.Values, len(fields))
	for _, f := range fields {
		v[f] = ""
	}
	return v
}
