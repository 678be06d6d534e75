package validation

import "strings"

type ModelInput struct {
	Name string
}

func ValidateModel(raw map[string]string) (ModelInput, Errors) {
	errs := Errors{}

	in := ModelInput{Name: strings.TrimSpace(raw["name"])}
	if in.Name == "" {
		errs.Add("name", "Name is required")
	}

	return in, errs
}
