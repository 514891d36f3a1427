package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule checks a single field value. A nil error means the value is accepted.
// Rules return the first failing condition only.
type Rule func(value string) error

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required fails on the empty string. Whitespace counts as a value.
func Required(value string) error {
	if value == "" {
		return requiredError()
	}
	return nil
}

// NotBlank fails when the value is empty after trimming whitespace. With a
// label the message names the field.
func NotBlank(label string) Rule {
	return func(value string) error {
		if strings.TrimSpace(value) != "" {
			return nil
		}
		if label != "" {
			return NewError(CodeRequired, MsgRequiredNamed(label))
		}
		return requiredError()
	}
}

// Email checks for something@something.something without whitespace. It is
// not an RFC 5322 parser.
func Email(value string) error {
	if value == "" {
		return requiredError()
	}
	if !emailPattern.MatchString(value) {
		return NewError(CodeEmail, MsgInvalidEmail)
	}
	return nil
}

// PasswordMinLength fails when the password has fewer than min characters.
func PasswordMinLength(min int) Rule {
	return func(value string) error {
		if value == "" {
			return requiredError()
		}
		if utf8.RuneCountInString(value) < min {
			return NewError(CodePasswordLength, MsgPasswordMinLength(min))
		}
		return nil
	}
}

// Password is PasswordMinLength with the default minimum of 6.
func Password(value string) error {
	return PasswordMinLength(DefaultPasswordMinLength)(value)
}

// PasswordConfirm fails when the confirmation differs from password. The
// comparison is exact, without any normalization.
func PasswordConfirm(password string) Rule {
	return func(confirm string) error {
		if confirm == "" {
			return requiredError()
		}
		if confirm != password {
			return NewError(CodePasswordMismatch, MsgPasswordMismatch)
		}
		return nil
	}
}

// NationalID is a shape check for CPF numbers: exactly 11 digits once
// punctuation is removed, and not all the same digit. It does NOT verify the
// check digits, so "123.456.789-00" passes. Use NationalIDChecksum for that.
func NationalID(value string) error {
	if value == "" {
		return requiredError()
	}
	digits := Digits(value)
	if len(digits) != NationalIDLength {
		return NewError(CodeNationalIDLength, MsgNationalIDLength)
	}
	if allSame(digits) {
		return NewError(CodeNationalID, MsgNationalIDInvalid)
	}
	return nil
}

// NationalIDChecksum runs NationalID and then verifies both CPF check digits.
// It accepts fewer numbers than NationalID and is opt-in.
func NationalIDChecksum(value string) error {
	if err := NationalID(value); err != nil {
		return err
	}
	digits := Digits(value)
	if checkDigit(digits[:9], 10) != digits[9] || checkDigit(digits[:10], 11) != digits[10] {
		return NewError(CodeNationalID, MsgNationalIDInvalid)
	}
	return nil
}

// checkDigit computes a CPF verification digit over prefix with weights
// starting at weight and decreasing to 2.
func checkDigit(prefix string, weight int) byte {
	sum := 0
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * (weight - i)
	}
	rem := (sum * 10) % 11
	if rem == 10 {
		rem = 0
	}
	return byte('0' + rem)
}

// PhoneMinDigits fails when the value has fewer than min digits.
func PhoneMinDigits(min int) Rule {
	return func(value string) error {
		if value == "" {
			return requiredError()
		}
		if len(Digits(value)) < min {
			return NewError(CodePhoneDigits, MsgPhoneMinDigits(min))
		}
		return nil
	}
}

// Phone is PhoneMinDigits with the default minimum of 10.
func Phone(value string) error {
	return PhoneMinDigits(DefaultPhoneMinDigits)(value)
}

// Digits returns the ASCII digits of s in order.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
