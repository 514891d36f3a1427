package validation

import "github.com/infohub/infohub/internal/form"

// Binding attaches rules to one field of a form.
type Binding struct {
	field string
	build func(values form.Values) Rule
}

// Field binds rules to a field. The rules run in order and the first failure
// is kept.
func Field(name string, rules ...Rule) Binding {
	rule := Chain(rules...)
	return Binding{
		field: name,
		build: func(form.Values) Rule { return rule },
	}
}

// FieldFunc binds a rule that depends on other fields, built from the values
// snapshot each time validation runs.
//
//	validation.FieldFunc("confirmarSenha", func(v form.Values) validation.Rule {
//	    return validation.PasswordConfirm(v["senha"])
//	})
func FieldFunc(name string, build func(values form.Values) Rule) Binding {
	return Binding{field: name, build: build}
}

// Name returns the bound field.
func (b Binding) Name() string {
	return b.field
}

// Chain runs rules in order and returns the first failure.
func Chain(rules ...Rule) Rule {
	return func(value string) error {
		for _, rule := range rules {
			if rule == nil {
				continue
			}
			if err := rule(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// Compose turns bindings into a form.ValidateFunc. Bindings run in the order
// given; when several bindings report on the same field the last report wins.
// Fields without a binding never appear in the result. The returned function
// has no side effects.
func Compose(bindings ...Binding) form.ValidateFunc {
	return func(values form.Values) form.Errors {
		errs := form.Errors{}
		for _, b := range bindings {
			if b.build == nil {
				continue
			}
			rule := b.build(values)
			if rule == nil {
				continue
			}
			if err := rule(values[b.field]); err != nil {
				errs[b.field] = err.Error()
			}
		}
		return errs
	}
}

// Check runs a rule and returns its message, or "" when the value passes.
func Check(rule Rule, value string) string {
	if err := rule(value); err != nil {
		return err.Error()
	}
	return ""
}
