package form

import (
	"sort"
	"strings"
)

// Values maps a field name to its current string value.
type Values map[string]string

// Errors maps a field name to its error message. A missing key means the
// field has no error.
type Errors map[string]string

// Clone returns an independent copy of the values.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Fields returns the field names in sorted order.
func (v Values) Fields() []string {
	fields := make([]string, 0, len(v))
	for k := range v {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

// Filled reports whether every value is non-empty after trimming whitespace.
func (v Values) Filled() bool {
	for _, val := range v {
		if strings.TrimSpace(val) == "" {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the errors.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, msg := range e {
		out[k] = msg
	}
	return out
}

// Has reports whether the field has an error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Fields returns the names of the fields with errors in sorted order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for k := range e {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}
