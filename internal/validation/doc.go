// Package validation provides field rules and the composer that turns them
// into a form.ValidateFunc.
//
// A Rule is a pure function from a field value to an error. Every rule in this
// package reports at most one problem: the first condition that fails. Empty
// values fail with the required message before any format check, so Email("")
// says "Este campo é obrigatório" rather than "invalid email".
//
//	validate := validation.Compose(
//	    validation.Field("email", validation.Email),
//	    validation.Field("senha", validation.PasswordMinLength(6)),
//	    validation.FieldFunc("confirmarSenha", func(v form.Values) validation.Rule {
//	        return validation.PasswordConfirm(v["senha"])
//	    }),
//	)
//
// NationalID only checks the shape of a CPF number (11 digits, not all equal).
// It is a placeholder, not a checksum. NationalIDChecksum is the separate,
// stricter rule.
package validation
