package account

import (
	"github.com/infohub/infohub/internal/config"
	"github.com/infohub/infohub/internal/form"
	"github.com/infohub/infohub/internal/validation"
)

// Rules are the tunable parts of the registration checks.
type Rules struct {
	PasswordMinLength int
	PhoneMinDigits    int
	// StrictNationalID verifies the CPF check digits on top of the shape.
	StrictNationalID bool
}

// DefaultRules returns the built-in minimums.
func DefaultRules() Rules {
	return Rules{
		PasswordMinLength: validation.DefaultPasswordMinLength,
		PhoneMinDigits:    validation.DefaultPhoneMinDigits,
	}
}

// RulesFromConfig reads the minimums from cfg, keeping defaults for
// anything unset.
func RulesFromConfig(cfg *config.Config) Rules {
	r := DefaultRules()
	if cfg == nil || cfg.Validation == nil {
		return r
	}
	if cfg.Validation.PasswordMinLength > 0 {
		r.PasswordMinLength = cfg.Validation.PasswordMinLength
	}
	if cfg.Validation.PhoneMinDigits > 0 {
		r.PhoneMinDigits = cfg.Validation.PhoneMinDigits
	}
	return r
}

func (r Rules) nationalID() validation.Rule {
	if r.StrictNationalID {
		return validation.NationalIDChecksum
	}
	return validation.NationalID
}

func confirmsPassword(values form.Values) validation.Rule {
	return validation.PasswordConfirm(values[FieldPassword])
}

// StepOneValidator checks every field of the first registration step.
func (r Rules) StepOneValidator() form.ValidateFunc {
	return validation.Compose(
		validation.Field(FieldFullName, validation.NotBlank("")),
		validation.Field(FieldNationalID, r.nationalID()),
		validation.Field(FieldPhone, validation.PhoneMinDigits(r.PhoneMinDigits)),
		validation.Field(FieldEmail, validation.Email),
		validation.Field(FieldPassword, validation.PasswordMinLength(r.PasswordMinLength)),
		validation.FieldFunc(FieldConfirmPassword, confirmsPassword),
	)
}

// StepTwoValidator requires every field of the second step and re-checks
// the password confirmation.
func (r Rules) StepTwoValidator() form.ValidateFunc {
	return validation.Compose(
		validation.Field(FieldPersonType, validation.NotBlank("")),
		validation.Field(FieldWorld, validation.NotBlank("")),
		validation.Field(FieldEmail, validation.Required),
		validation.Field(FieldPassword, validation.Required),
		validation.FieldFunc(FieldConfirmPassword, confirmsPassword),
	)
}

// LoginValidator requires both login fields.
func LoginValidator() form.ValidateFunc {
	return validation.Compose(
		validation.Field(FieldEmail, validation.Required),
		validation.Field(FieldPassword, validation.Required),
	)
}
