package validation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/infohub/infohub/internal/form"
)

func TestComposeCollectsFailingFields(t *testing.T) {
	validate := Compose(
		Field("email", Email),
		Field("senha", PasswordMinLength(6)),
		FieldFunc("confirmarSenha", func(v form.Values) Rule {
			return PasswordConfirm(v["senha"])
		}),
	)

	tests := []struct {
		name   string
		values form.Values
		want   form.Errors
	}{
		{
			name:   "all valid",
			values: form.Values{"email": "a@b.co", "senha": "abcdef", "confirmarSenha": "abcdef"},
			want:   form.Errors{},
		},
		{
			name:   "mismatch",
			values: form.Values{"email": "a@b.co", "senha": "abcdef", "confirmarSenha": "abcdeg"},
			want:   form.Errors{"confirmarSenha": MsgPasswordMismatch},
		},
		{
			name:   "everything empty",
			values: form.Values{"email": "", "senha": "", "confirmarSenha": ""},
			want: form.Errors{
				"email":          MsgRequiredField,
				"senha":          MsgRequiredField,
				"confirmarSenha": MsgRequiredField,
			},
		},
		{
			name:   "fields without rules are never reported",
			values: form.Values{"email": "a@b.co", "senha": "abcdef", "confirmarSenha": "abcdef", "mundo": ""},
			want:   form.Errors{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, validate(tt.values)); diff != "" {
				t.Errorf("Compose() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComposeLastReportWins(t *testing.T) {
	first := func(string) error { return errors.New("first") }
	second := func(string) error { return errors.New("second") }
	pass := func(string) error { return nil }

	tests := []struct {
		name     string
		bindings []Binding
		want     form.Errors
	}{
		{"later binding overwrites", []Binding{Field("a", first), Field("a", second)}, form.Errors{"a": "second"}},
		{"passing later binding keeps earlier report", []Binding{Field("a", first), Field("a", pass)}, form.Errors{"a": "first"}},
		{"chain short-circuits", []Binding{Field("a", first, second)}, form.Errors{"a": "first"}},
		{"nil rules are skipped", []Binding{Field("a", nil, second)}, form.Errors{"a": "second"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.bindings...)(form.Values{"a": "x"})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compose() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComposeIsPure(t *testing.T) {
	validate := Compose(Field("email", Email))
	values := form.Values{"email": "bad"}

	first := validate(values)
	second := validate(values)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated calls differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(form.Values{"email": "bad"}, values); diff != "" {
		t.Errorf("values were modified (-want +got):\n%s", diff)
	}
}

func TestComposeWithController(t *testing.T) {
	c := form.New(form.Values{"senha": "abcdef", "confirmarSenha": "abcdeg"},
		form.WithValidate(Compose(
			Field("senha", Password),
			FieldFunc("confirmarSenha", func(v form.Values) Rule {
				return PasswordConfirm(v["senha"])
			}),
		)),
	)

	if c.Validate() {
		t.Fatal("Validate() = true, want false for mismatched passwords")
	}
	if got := c.Error("confirmarSenha"); got != MsgPasswordMismatch {
		t.Errorf("Error(confirmarSenha) = %q, want %q", got, MsgPasswordMismatch)
	}

	c.HandleFieldChange("confirmarSenha", "abcdef")
	if !c.Validate() {
		t.Errorf("Validate() = false after fixing confirmation, errors %v", c.Errors())
	}
}
