package models

// FieldErrors maps a field name to a validation message. Validate
// methods return it so handlers can reply with per-field errors.
type FieldErrors map[string]string

// OK reports whether validation passed.
func (e FieldErrors) OK() bool {
	return len(e) == 0
}
