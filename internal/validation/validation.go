// Package validation checks raw form values and produces typed inputs or
// field-keyed error maps. Values arrive as strings, exactly as an HTML form
// submits them.
package validation

import (
	"strconv"
	"strings"
)

// Errors maps field names to messages. Only the first error recorded for a
// field is kept.
type Errors map[string]string

func (e Errors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

func (e Errors) Valid() bool {
	return len(e) == 0
}

// requiredInt coerces a required integer field. Empty input is "Required";
// fractional numbers get a distinct message so "3.5" doesn't read as
// non-numeric.
func requiredInt(raw map[string]string, field string, errs Errors) int {
	s := strings.TrimSpace(raw[field])
	if s == "" {
		errs.Add(field, "Required")
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		if _, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			errs.Add(field, "Must be a whole number")
		} else {
			errs.Add(field, "Must be a number")
		}
		return 0
	}
	return n
}

// optionalInt coerces an optional integer field. Empty input means absent,
// not zero.
func optionalInt(raw map[string]string, field string, errs Errors) *int {
	s := strings.TrimSpace(raw[field])
	if s == "" {
		return nil
	}
	n := requiredInt(raw, field, errs)
	if _, failed := errs[field]; failed {
		return nil
	}
	return &n
}

// boundedInt coerces an integer with a lower bound, substituting a default
// for empty input. Out-of-range values get the bound's message.
func boundedInt(raw map[string]string, field string, def, min int, minMessage string, errs Errors) int {
	s := strings.TrimSpace(raw[field])
	n := def
	if s != "" {
		var err error
		n, err = strconv.Atoi(s)
		if err != nil {
			errs.Add(field, "Must be a number")
			return def
		}
	}
	if n < min {
		errs.Add(field, minMessage)
		return n
	}
	return n
}
