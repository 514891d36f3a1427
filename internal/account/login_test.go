package account

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/infohub/infohub/internal/form"
	"github.com/infohub/infohub/internal/validation"
)

func TestLoginForm(t *testing.T) {
	backend := NewSimulated(nil)
	if _, err := backend.Register(context.Background(), User{Email: "ana@example.com", Password: "segredo1"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name       string
		email      string
		password   string
		wantStatus form.Status
		wantErrors form.Errors
		wantMsg    string
	}{
		{
			name:       "both empty",
			wantStatus: form.StatusRejected,
			wantErrors: form.Errors{FieldEmail: validation.MsgRequiredField, FieldPassword: validation.MsgRequiredField},
		},
		{
			name:       "unknown email is accepted",
			email:      "novo@example.com",
			password:   "x",
			wantStatus: form.StatusSucceeded,
		},
		{
			name:       "registered email with right password",
			email:      "ANA@example.com ",
			password:   "segredo1",
			wantStatus: form.StatusSucceeded,
		},
		{
			name:       "registered email with wrong password",
			email:      "ana@example.com",
			password:   "errada",
			wantStatus: form.StatusFailed,
			wantMsg:    MsgLoginFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoginForm(backend)
			l.HandleFieldChange(FieldEmail, tt.email)
			l.HandleFieldChange(FieldPassword, tt.password)

			out := l.Submit(context.Background())
			if out.Status != tt.wantStatus {
				t.Fatalf("Submit() status = %v, want %v (err %v)", out.Status, tt.wantStatus, out.Err)
			}
			if tt.wantErrors != nil {
				if diff := cmp.Diff(tt.wantErrors, out.Errors); diff != "" {
					t.Errorf("errors mismatch (-want +got):\n%s", diff)
				}
			}
			if got := UserMessage(out.Err); got != tt.wantMsg {
				t.Errorf("UserMessage() = %q, want %q", got, tt.wantMsg)
			}

			_, signedIn := l.User()
			if signedIn != (tt.wantStatus == form.StatusSucceeded) {
				t.Errorf("User() ok = %v after status %v", signedIn, out.Status)
			}
		})
	}
}
