package prompt

import (
	"context"
	"fmt"

	"github.com/infohub/infohub/internal/account"
	"github.com/infohub/infohub/internal/format"
	"github.com/infohub/infohub/internal/ui"
)

var loginQuestions = []Question{
	{Field: account.FieldEmail, Message: "E-mail ou CPF"},
	{Field: account.FieldPassword, Message: "Senha", Secret: true},
}

var stepOneQuestions = []Question{
	{Field: account.FieldFullName, Message: "Nome Completo"},
	{Field: account.FieldNationalID, Message: "CPF", Help: "11 dígitos, com ou sem pontuação"},
	{Field: account.FieldPhone, Message: "Telefone", Help: "DDD + número"},
	{Field: account.FieldEmail, Message: "E-mail"},
	{Field: account.FieldPassword, Message: "Senha", Secret: true},
	{Field: account.FieldConfirmPassword, Message: "Confirme a senha", Secret: true},
}

var stepTwoQuestions = []Question{
	{Field: account.FieldPersonType, Message: "Pessoa Física"},
	{Field: account.FieldWorld, Message: "Mundo"},
}

// Login signs in through line prompts and prints the result.
func Login(ctx context.Context, r *Runner, auth account.Authenticator) (account.User, error) {
	r.printer.PrintHeader("Bem vindo de volta!", false)

	login := account.NewLoginForm(auth)
	if _, err := r.Fill(ctx, login.Controller, loginQuestions); err != nil {
		return account.User{}, err
	}

	user, ok := login.User()
	if !ok {
		return account.User{}, fmt.Errorf("login finished without a user")
	}

	r.printer.PrintSuccess(account.MsgLoginSuccess, userDetails(user)...)
	return user, nil
}

// Register runs both registration steps. When step two loses the saved step
// one, step one is asked again once.
func Register(ctx context.Context, r *Runner, flow *account.Flow) (account.User, error) {
	const maxRestarts = 1

	for restarts := 0; ; restarts++ {
		r.printer.PrintHeader("Cadastro: etapa 1 de 2", false)
		if _, err := r.Fill(ctx, flow.StepOne(), stepOneQuestions); err != nil {
			return account.User{}, err
		}

		err := registerStepTwo(ctx, r, flow)
		if err == nil {
			break
		}
		if !account.IsHandoffError(err) || restarts >= maxRestarts {
			return account.User{}, err
		}
		r.printer.PrintFieldError(account.MsgHandoffMissing)
	}

	user, ok := flow.Registered()
	if !ok {
		return account.User{}, fmt.Errorf("registration finished without a user")
	}

	r.printer.PrintSuccess(account.MsgRegisterSuccess, userDetails(user)...)
	return user, nil
}

func registerStepTwo(ctx context.Context, r *Runner, flow *account.Flow) error {
	c, err := flow.StepTwo()
	if err != nil {
		return err
	}

	r.printer.PrintHeader("Cadastro: etapa 2 de 2", true)
	_, err = r.Fill(ctx, c, stepTwoQuestions)
	return err
}

func userDetails(user account.User) []ui.Detail {
	details := []ui.Detail{{Key: "E-mail", Value: user.Email}}
	if user.FullName != "" {
		details = append(details, ui.Detail{Key: "Nome", Value: user.FullName})
	}
	if user.NationalID != "" {
		details = append(details, ui.Detail{Key: "CPF", Value: format.NationalID(user.NationalID)})
	}
	if user.Phone != "" {
		details = append(details, ui.Detail{Key: "Telefone", Value: format.Phone(user.Phone)})
	}
	return details
}
