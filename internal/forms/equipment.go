package forms

import (
	"errors"
	"net/url"
	"strconv"

	"unit-codex/internal/repo"
	"unit-codex/internal/validation"
)

var equipmentFields = []Field{
	{Name: "name", Label: "Name", Required: true, Type: "text"},
	{Name: "range", Label: "Range", Required: false, Type: "number", Min: minBound(0)},
	{Name: "attacks", Label: "Attacks", Required: true, Type: "number", Min: minBound(1)},
	{Name: "skill", Label: "BS/WS", Required: true, Type: "number", Min: minBound(1)},
	{Name: "strength", Label: "Strength", Required: true, Type: "number", Min: minBound(1)},
	{Name: "armorPiercing", Label: "Armor Piercing", Required: false, Type: "number", Min: minBound(0)},
	{Name: "damageMin", Label: "Damage Min", Required: false, Type: "number", Min: minBound(1)},
	{Name: "damageMax", Label: "Damage Max", Required: false, Type: "number", Min: minBound(1)},
}

var equipmentFormKeys = []string{
	"name", "range", "attacks", "skill", "strength", "armorPiercing", "damageMin", "damageMax",
}

type EquipmentOptionForm struct {
	equipment *repo.EquipmentRepository
	modelID   uint
	optionID  uint // 0 in create mode
	values    map[string]string
	errors    validation.Errors
}

// NewEquipmentOptionForm returns a blank form creating an option attached
// to the model.
func NewEquipmentOptionForm(equipment *repo.EquipmentRepository, modelID uint) *EquipmentOptionForm {
	return &EquipmentOptionForm{
		equipment: equipment,
		modelID:   modelID,
		values:    map[string]string{},
		errors:    validation.Errors{},
	}
}

// LoadEquipmentOptionForm returns an edit-mode form. An option that exists
// but is not associated with the given model is reported as ErrNotFound,
// the same as a missing one.
func LoadEquipmentOptionForm(equipment *repo.EquipmentRepository, modelID, optionID uint) (*EquipmentOptionForm, error) {
	option, err := equipment.GetByID(optionID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	associated, err := equipment.IsAssociatedWithModel(modelID, optionID)
	if err != nil {
		return nil, err
	}
	if !associated {
		return nil, ErrNotFound
	}

	values := map[string]string{
		"name":          option.Name,
		"range":         strconv.Itoa(option.Range),
		"attacks":       strconv.Itoa(option.Attacks),
		"skill":         strconv.Itoa(option.Skill),
		"strength":      strconv.Itoa(option.Strength),
		"armorPiercing": strconv.Itoa(option.ArmorPiercing),
		"damageMin":     strconv.Itoa(option.DamageMin),
		"damageMax":     strconv.Itoa(option.DamageMax),
	}

	return &EquipmentOptionForm{
		equipment: equipment,
		modelID:   modelID,
		optionID:  optionID,
		values:    values,
		errors:    validation.Errors{},
	}, nil
}

func (f *EquipmentOptionForm) ModelID() uint {
	return f.modelID
}

func (f *EquipmentOptionForm) IsEditMode() bool {
	return f.optionID != 0
}

func (f *EquipmentOptionForm) Fields() []Field {
	out := make([]Field, len(equipmentFields))
	for i := range equipmentFields {
		out[i] = equipmentFields[i].withValue(f.values)
	}
	return out
}

func (f *EquipmentOptionForm) Value(name string) *string {
	if v, ok := f.values[name]; ok {
		return &v
	}
	return nil
}

func (f *EquipmentOptionForm) Errors() map[string]string {
	return f.errors
}

func (f *EquipmentOptionForm) Submit(raw url.Values) (bool, error) {
	f.values = pick(raw, equipmentFormKeys)

	in, errs := validation.ValidateEquipmentOption(f.values)
	f.errors = errs
	if !errs.Valid() {
		return false, nil
	}

	var err error
	if f.optionID != 0 {
		_, err = f.equipment.Update(f.optionID, in)
	} else {
		_, err = f.equipment.CreateForModel(f.modelID, in)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
