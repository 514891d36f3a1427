package format

import "testing"

func TestNationalID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12345678909", "123.456.789-09"},
		{"123.456.789-09", "123.456.789-09"},
		{" 123 456 789 09 ", "123.456.789-09"},
		{"1234567890", "1234567890"},
		{"123456789012", "123456789012"},
		{"12a3", "123"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NationalID(tt.in); got != tt.want {
			t.Errorf("NationalID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"mobile 11 digits", "11987654321", "(11) 98765-4321"},
		{"landline 10 digits", "1143218765", "(11) 4321-8765"},
		{"already formatted", "(11) 4321-8765", "(11) 4321-8765"},
		{"too short passes through", "123", "123"},
		{"too long passes through cleaned", "+55 11 98765-4321", "5511987654321"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Phone(tt.in); got != tt.want {
				t.Errorf("Phone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestField(t *testing.T) {
	if got := Field("cpf", "12345678909"); got != "123.456.789-09" {
		t.Errorf("Field(cpf) = %q", got)
	}
	if got := Field("telefone", "1143218765"); got != "(11) 4321-8765" {
		t.Errorf("Field(telefone) = %q", got)
	}
	if got := Field("email", "a@b.co"); got != "a@b.co" {
		t.Errorf("Field(email) = %q", got)
	}
	if got := Field("cpf", "abc"); got != "abc" {
		t.Errorf("Field(cpf, no digits) = %q, want the raw value", got)
	}
	if got := Field("telefone", "x-y"); got != "x-y" {
		t.Errorf("Field(telefone, no digits) = %q, want the raw value", got)
	}
}
