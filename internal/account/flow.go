package account

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/infohub/infohub/internal/form"
	"github.com/infohub/infohub/internal/logging"
)

// Form names used in logs.
const (
	FormLogin           = "login"
	FormRegisterStepOne = "register"
	FormRegisterStepTwo = "register-2"
)

// Flow runs the two-step registration. Step one is validated and saved to
// the flow's Handoff; step two reads it back, collects the remaining fields
// and hands the merged user to the Registrar.
type Flow struct {
	rules     Rules
	registrar Registrar
	handoff   Handoff
	log       *zap.Logger

	mu         sync.Mutex
	registered *User
}

// NewFlow creates a registration flow.
func NewFlow(registrar Registrar, rules Rules) *Flow {
	return &Flow{
		rules:     rules,
		registrar: registrar,
		log:       logging.GetLogger().With(zap.String("component", "registration")),
	}
}

// Handoff exposes the step one payload.
func (f *Flow) Handoff() *Handoff {
	return &f.handoff
}

// StepOne builds the first step's form. When a step one was already saved,
// for example after going back from step two, its values are restored.
func (f *Flow) StepOne(opts ...form.Option) *form.Controller {
	initial := emptyValues(FieldFullName, FieldNationalID, FieldPhone, FieldEmail, FieldPassword, FieldConfirmPassword)
	if one, err := f.handoff.LoadStepOne(); err == nil {
		initial[FieldFullName] = one.FullName
		initial[FieldNationalID] = one.NationalID
		initial[FieldPhone] = one.Phone
		initial[FieldEmail] = one.Email
		initial[FieldPassword] = one.Password
		initial[FieldConfirmPassword] = one.ConfirmPassword
	}

	base := []form.Option{
		form.WithName(FormRegisterStepOne),
		form.WithValidate(f.rules.StepOneValidator()),
		form.WithSubmit(f.saveStepOne),
	}
	return form.New(initial, append(base, opts...)...)
}

func (f *Flow) saveStepOne(_ context.Context, values form.Values) error {
	if err := f.handoff.SaveStepOne(stepOneFromValues(values)); err != nil {
		return err
	}
	f.log.Debug("Step one saved", zap.String("email", values[FieldEmail]))
	return nil
}

// StepTwo builds the second step's form with email and both password fields
// copied from the saved step one. It returns a handoff error when step one
// is missing or unreadable; the caller should send the user back to step one.
func (f *Flow) StepTwo(opts ...form.Option) (*form.Controller, error) {
	one, err := f.handoff.LoadStepOne()
	if err != nil {
		f.log.Warn("Step two opened without step one", zap.Error(err))
		return nil, err
	}

	base := []form.Option{
		form.WithName(FormRegisterStepTwo),
		form.WithValidate(f.rules.StepTwoValidator()),
		form.WithSubmit(f.register),
	}
	c := form.New(emptyValues(FieldPersonType, FieldWorld, FieldEmail, FieldPassword, FieldConfirmPassword), append(base, opts...)...)

	prefill := map[string]string{
		FieldEmail:           one.Email,
		FieldPassword:        one.Password,
		FieldConfirmPassword: one.ConfirmPassword,
	}
	for field, value := range prefill {
		if err := c.SetFieldValue(field, value); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (f *Flow) register(ctx context.Context, values form.Values) error {
	one, err := f.handoff.LoadStepOne()
	if err != nil {
		return err
	}

	user, err := f.registrar.Register(ctx, newUser(one, stepTwoFromValues(values)))
	if err != nil {
		return err
	}

	f.handoff.Clear()

	f.mu.Lock()
	f.registered = &user
	f.mu.Unlock()
	return nil
}

// Registered returns the user created by the last successful step two.
func (f *Flow) Registered() (User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.registered == nil {
		return User{}, false
	}
	return *f.registered, true
}

// Abandon discards the saved step one.
func (f *Flow) Abandon() {
	f.handoff.Clear()
}
