package validation

import (
	"strings"

	"unit-codex/internal/repo"
)

// ValidateUnit checks raw unit form values. The invulnerability save is the
// only optional attribute; an empty string means the unit has none.
func ValidateUnit(raw map[string]string) (repo.UnitInput, Errors) {
	errs := Errors{}

	in := repo.UnitInput{
		Name:                strings.TrimSpace(raw["name"]),
		Movement:            requiredInt(raw, "movement", errs),
		Toughness:           requiredInt(raw, "toughness", errs),
		Save:                requiredInt(raw, "save", errs),
		Wounds:              requiredInt(raw, "wounds", errs),
		Leadership:          requiredInt(raw, "leadership", errs),
		ObjectiveControl:    requiredInt(raw, "objectiveControl", errs),
		InvulnerabilitySave: optionalInt(raw, "invulnerabilitySave", errs),
		Description:         strings.TrimSpace(raw["description"]),
		Keywords:            strings.TrimSpace(raw["keywords"]),
	}

	if in.Name == "" {
		errs.Add("name", "Name is required")
	}

	return in, errs
}
