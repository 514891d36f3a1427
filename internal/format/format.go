// Package format holds display-only transforms for masked inputs. Nothing
// here validates; callers run the validation rules separately.
package format

import "github.com/infohub/infohub/internal/validation"

// NationalID renders 11 digits as ddd.ddd.ddd-dd. Any other digit count is
// returned as the bare digits.
func NationalID(value string) string {
	d := validation.Digits(value)
	if len(d) != 11 {
		return d
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// Phone renders 10 digits as (dd) dddd-dddd and 11 digits as
// (dd) ddddd-dddd. Any other digit count is returned as the bare digits.
func Phone(value string) string {
	d := validation.Digits(value)
	switch len(d) {
	case 10:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:10]
	case 11:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:11]
	default:
		return d
	}
}

// Field applies the display formatter registered for a field name, or
// returns the value unchanged. A value without any digits is also returned
// unchanged, so the validators still see what was typed.
func Field(name, value string) string {
	var formatted string
	switch name {
	case "cpf":
		formatted = NationalID(value)
	case "telefone":
		formatted = Phone(value)
	default:
		return value
	}
	if formatted == "" {
		return value
	}
	return formatted
}
