// Package forms binds submitted form data to validation and persistence,
// and exposes field metadata for re-rendering.
package forms

import "errors"

// ErrNotFound is returned by the Load* constructors when the entity to edit
// does not exist (or, for equipment options, is not attached to the given
// model). Distinct from validation failure.
var ErrNotFound = errors.New("form subject not found")

// Field describes one input for the render layer. Value is nil until the
// form has been populated from an entity or a submission. Min is set for
// numeric inputs with a lower bound.
type Field struct {
	Name     string
	Label    string
	Required bool
	Type     string
	Value    *string
	Min      *int
}

func minBound(n int) *int {
	return &n
}

func (f *Field) withValue(values map[string]string) Field {
	out := *f
	if v, ok := values[f.Name]; ok {
		out.Value = &v
	}
	return out
}
