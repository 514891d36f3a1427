// Package form implements a form-state controller: field values, per-field
// errors and a validate-then-submit protocol.
//
// A Controller is created from an initial set of string values. The keys of
// that map are the fields of the form and never change afterwards.
//
//	c := form.New(form.Values{"email": "", "senha": ""},
//	    form.WithName("login"),
//	    form.WithValidate(validation.Compose(
//	        validation.Field("email", validation.Required),
//	        validation.Field("senha", validation.Required),
//	    )),
//	    form.WithSubmit(func(ctx context.Context, v form.Values) error {
//	        return auth.Login(ctx, v["email"], v["senha"])
//	    }),
//	)
//
//	c.HandleFieldChange("email", "a@b.co")
//	outcome := c.Submit(ctx)
//
// # Submission Lifecycle
//
//	Idle --Submit (valid)--> Submitting --callback settles--> Idle
//	Idle --Submit (invalid)--> Idle
//
// Submit never returns a bare error. Callback errors and panics are logged and
// reported through Outcome with StatusFailed, and the state is back to Idle
// before Submit returns. A Submit call made while another one is in flight is
// rejected with StatusBusy.
//
// # Error Clearing
//
// HandleFieldChange clears the edited field's error without running the
// validation function. WithClearErrorOnEdit(false) keeps errors until the next
// Validate. SetFieldValue and SetFieldError never clear anything.
//
// # Validity
//
// IsValid is a cheap syntactic check: no errors and no blank values. It does
// not run the validation function and is not a substitute for Validate.
package form
