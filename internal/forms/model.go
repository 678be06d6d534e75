package forms

import (
	"errors"
	"net/url"

	"unit-codex/internal/repo"
	"unit-codex/internal/validation"
)

var modelFields = []Field{
	{Name: "name", Label: "Name", Required: true, Type: "text"},
}

type ModelForm struct {
	models  *repo.ModelRepository
	unitID  uint
	modelID uint // 0 in create mode
	values  map[string]string
	errors  validation.Errors
}

// NewModelForm returns a blank form creating a model under the unit.
func NewModelForm(models *repo.ModelRepository, unitID uint) *ModelForm {
	return &ModelForm{models: models, unitID: unitID, values: map[string]string{}, errors: validation.Errors{}}
}

// LoadModelForm returns an edit-mode form for an existing model, or
// ErrNotFound.
func LoadModelForm(models *repo.ModelRepository, unitID, modelID uint) (*ModelForm, error) {
	m, err := models.GetByID(modelID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &ModelForm{
		models:  models,
		unitID:  unitID,
		modelID: modelID,
		values:  map[string]string{"name": m.Name},
		errors:  validation.Errors{},
	}, nil
}

func (f *ModelForm) UnitID() uint {
	return f.unitID
}

func (f *ModelForm) IsEditMode() bool {
	return f.modelID != 0
}

func (f *ModelForm) Fields() []Field {
	out := make([]Field, len(modelFields))
	for i := range modelFields {
		out[i] = modelFields[i].withValue(f.values)
	}
	return out
}

func (f *ModelForm) Value(name string) *string {
	if v, ok := f.values[name]; ok {
		return &v
	}
	return nil
}

func (f *ModelForm) Errors() map[string]string {
	return f.errors
}

func (f *ModelForm) Submit(raw url.Values) (bool, error) {
	f.values = pick(raw, []string{"name"})

	in, errs := validation.ValidateModel(f.values)
	f.errors = errs
	if !errs.Valid() {
		return false, nil
	}

	var err error
	if f.modelID != 0 {
		_, err = f.models.Update(f.modelID, in.Name)
	} else {
		_, err = f.models.Create(f.unitID, in.Name)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
