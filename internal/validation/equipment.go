package validation

import (
	"strings"

	"unit-codex/internal/repo"
)

// ValidateEquipmentOption checks raw equipment form values. Range and armor
// piercing default to 0, the damage range to 1-1. The cross-field damage
// check reports on the damageMax field.
func ValidateEquipmentOption(raw map[string]string) (repo.EquipmentInput, Errors) {
	errs := Errors{}

	in := repo.EquipmentInput{
		Name:          strings.TrimSpace(raw["name"]),
		Range:         boundedInt(raw, "range", 0, 0, "Range must be 0 or greater", errs),
		Attacks:       boundedInt(raw, "attacks", 0, 1, "Attacks must be at least 1", errs),
		Skill:         boundedInt(raw, "skill", 0, 1, "Skill must be at least 1", errs),
		Strength:      boundedInt(raw, "strength", 0, 1, "Strength must be at least 1", errs),
		ArmorPiercing: boundedInt(raw, "armorPiercing", 0, 0, "Armor Piercing must be 0 or greater", errs),
		DamageMin:     boundedInt(raw, "damageMin", 1, 1, "Damage Min must be at least 1", errs),
		DamageMax:     boundedInt(raw, "damageMax", 1, 1, "Damage Max must be at least 1", errs),
	}

	if in.Name == "" {
		errs.Add("name", "Name is required")
	}
	if in.DamageMax < in.DamageMin {
		errs.Add("damageMax", "Damage Max must be greater than or equal to Damage Min")
	}

	return in, errs
}
