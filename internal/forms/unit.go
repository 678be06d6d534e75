package forms

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"unit-codex/internal/repo"
	"unit-codex/internal/slug"
	"unit-codex/internal/validation"
)

var unitFields = []Field{
	{Name: "name", Label: "Name", Required: true, Type: "text"},
	{Name: "movement", Label: "Movement", Required: true, Type: "number"},
	{Name: "toughness", Label: "Toughness", Required: true, Type: "number"},
	{Name: "save", Label: "Save", Required: true, Type: "number"},
	{Name: "wounds", Label: "Wounds", Required: true, Type: "number"},
	{Name: "leadership", Label: "Leadership", Required: true, Type: "number"},
	{Name: "objectiveControl", Label: "Objective Control", Required: true, Type: "number"},
	{Name: "invulnerabilitySave", Label: "Invulnerability Save", Required: false, Type: "number"},
}

// unitFormKeys are all names read from a submission, including the textarea
// fields rendered outside the Fields() list.
var unitFormKeys = []string{
	"name", "movement", "toughness", "save", "wounds", "leadership",
	"objectiveControl", "invulnerabilitySave", "description", "keywords",
}

type UnitForm struct {
	units  *repo.UnitRepository
	id     uint // 0 in create mode
	values map[string]string
	errors validation.Errors
}

// NewUnitForm returns a blank form in create mode.
func NewUnitForm(units *repo.UnitRepository) *UnitForm {
	return &UnitForm{units: units, values: map[string]string{}, errors: validation.Errors{}}
}

// LoadUnitForm returns an edit-mode form populated from the stored unit, or
// ErrNotFound.
func LoadUnitForm(units *repo.UnitRepository, id uint) (*UnitForm, error) {
	unit, err := units.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	keywords, err := units.KeywordsForUnit(id)
	if err != nil {
		return nil, err
	}

	values := map[string]string{
		"name":             unit.Name,
		"movement":         strconv.Itoa(unit.Movement),
		"toughness":        strconv.Itoa(unit.Toughness),
		"save":             strconv.Itoa(unit.Save),
		"wounds":           strconv.Itoa(unit.Wounds),
		"leadership":       strconv.Itoa(unit.Leadership),
		"objectiveControl": strconv.Itoa(unit.ObjectiveControl),
		"description":      unit.Description,
		"keywords":         strings.Join(keywords, ", "),
	}
	if unit.InvulnerabilitySave != nil {
		values["invulnerabilitySave"] = strconv.Itoa(*unit.InvulnerabilitySave)
	} else {
		values["invulnerabilitySave"] = ""
	}

	return &UnitForm{units: units, id: id, values: values, errors: validation.Errors{}}, nil
}

func (f *UnitForm) IsEditMode() bool {
	return f.id != 0
}

func (f *UnitForm) Fields() []Field {
	out := make([]Field, len(unitFields))
	for i := range unitFields {
		out[i] = unitFields[i].withValue(f.values)
	}
	return out
}

func (f *UnitForm) Value(name string) *string {
	if v, ok := f.values[name]; ok {
		return &v
	}
	return nil
}

func (f *UnitForm) Errors() map[string]string {
	return f.errors
}

// Submit validates the raw submission and persists on success. The slug is
// re-derived from the submitted name on every submit; a collision with a
// different unit is reported as a name-field error. Returns false when the
// submission was rejected; a non-nil error means the store failed.
func (f *UnitForm) Submit(raw url.Values) (bool, error) {
	f.values = pick(raw, unitFormKeys)

	in, errs := validation.ValidateUnit(f.values)
	f.errors = errs
	if !errs.Valid() {
		return false, nil
	}

	s := slug.Slugify(in.Name)
	available, err := f.units.IsSlugAvailable(s, f.id)
	if err != nil {
		return false, err
	}
	if !available {
		f.errors.Add("name", "A unit with a similar name already exists. Please choose a different name.")
		return false, nil
	}

	if f.id != 0 {
		_, err = f.units.Update(f.id, in, s)
	} else {
		_, err = f.units.Create(in, s)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func pick(raw url.Values, keys []string) map[string]string {
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		values[k] = raw.Get(k)
	}
	return values
}
