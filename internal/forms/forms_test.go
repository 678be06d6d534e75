package forms

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"unit-codex/internal/database"
	"unit-codex/internal/repo"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func validUnitValues() url.Values {
	return url.Values{
		"name":             {"Intercessor Squad"},
		"movement":         {"6"},
		"toughness":        {"4"},
		"save":             {"3"},
		"wounds":           {"2"},
		"leadership":       {"6"},
		"objectiveControl": {"2"},
		"keywords":         {"Infantry, Imperium"},
	}
}

func TestUnitFormCreate(t *testing.T) {
	db := openTestDB(t)
	units := repo.NewUnitRepository(db)

	form := NewUnitForm(units)
	assert.False(t, form.IsEditMode())

	ok, err := form.Submit(validUnitValues())
	require.NoError(t, err)
	assert.True(t, ok)

	unit, err := units.GetBySlug("intercessor-squad")
	require.NoError(t, err)
	assert.Equal(t, "Intercessor Squad", unit.Name)

	keywords, err := units.KeywordsForUnit(unit.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Infantry", "Imperium"}, keywords)
}

func TestUnitFormValidationFailureDoesNotPersist(t *testing.T) {
	db := openTestDB(t)
	units := repo.NewUnitRepository(db)

	values := validUnitValues()
	values.Set("movement", "fast")
	form := NewUnitForm(units)

	ok, err := form.Submit(values)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Must be a number", form.Errors()["movement"])

	all, err := units.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	// the rejected submission is echoed back for re-rendering
	require.NotNil(t, form.Value("movement"))
	assert.Equal(t, "fast", *form.Value("movement"))
}

func TestUnitFormSlugCollision(t *testing.T) {
	db := openTestDB(t)
	units := repo.NewUnitRepository(db)

	ok, err := NewUnitForm(units).Submit(validUnitValues())
	require.NoError(t, err)
	require.True(t, ok)

	// a different name that slugifies to the same slug collides
	values := validUnitValues()
	values.Set("name", "Intercessor   Squad!")
	form := NewUnitForm(units)

	ok, err = form.Submit(values)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "A unit with a similar name already exists. Please choose a different name.", form.Errors()["name"])
}

func TestUnitFormEditKeepsOwnSlug(t *testing.T) {
	db := openTestDB(t)
	units := repo.NewUnitRepository(db)

	ok, err := NewUnitForm(units).Submit(validUnitValues())
	require.NoError(t, err)
	require.True(t, ok)
	unit, err := units.GetBySlug("intercessor-squad")
	require.NoError(t, err)

	form, err := LoadUnitForm(units, unit.ID)
	require.NoError(t, err)
	assert.True(t, form.IsEditMode())
	require.NotNil(t, form.Value("keywords"))
	assert.Equal(t, "Infantry, Imperium", *form.Value("keywords"))

	values := validUnitValues()
	values.Set("wounds", "3")
	ok, err = form.Submit(values)
	require.NoError(t, err)
	assert.True(t, ok)

	updated, err := units.GetBySlug("intercessor-squad")
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Wounds)
}

func TestLoadUnitFormNotFound(t *testing.T) {
	db := openTestDB(t)
	units := repo.NewUnitRepository(db)

	_, err := LoadUnitForm(units, 123)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnitFormFields(t *testing.T) {
	db := openTestDB(t)
	form := NewUnitForm(repo.NewUnitRepository(db))

	fields := form.Fields()
	require.Len(t, fields, 8)
	assert.Equal(t, "name", fields[0].Name)
	assert.True(t, fields[0].Required)
	assert.Equal(t, "text", fields[0].Type)
	last := fields[len(fields)-1]
	assert.Equal(t, "invulnerabilitySave", last.Name)
	assert.False(t, last.Required)
}

func TestModelFormCreateAndEdit(t *testing.T) {
	db := openTestDB(t)
	units := repo.NewUnitRepository(db)
	modelsRepo := repo.NewModelRepository(db)

	unit, err := units.Create(repo.UnitInput{
		Name: "Squad", Movement: 6, Toughness: 4, Save: 3,
		Wounds: 2, Leadership: 6, ObjectiveControl: 2,
	}, "squad")
	require.NoError(t, err)

	form := NewModelForm(modelsRepo, unit.ID)
	assert.Equal(t, unit.ID, form.UnitID())

	ok, err := form.Submit(url.Values{"name": {"Sergeant"}})
	require.NoError(t, err)
	assert.True(t, ok)

	rows, err := modelsRepo.GetForUnit(unit.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	edit, err := LoadModelForm(modelsRepo, unit.ID, rows[0].ID)
	require.NoError(t, err)
	assert.True(t, edit.IsEditMode())

	ok, err = edit.Submit(url.Values{"name": {"Veteran Sergeant"}})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := modelsRepo.GetByID(rows[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Veteran Sergeant", got.Name)
}

func TestModelFormRejectsBlankName(t *testing.T) {
	db := openTestDB(t)
	form := NewModelForm(repo.NewModelRepository(db), 1)

	ok, err := form.Submit(url.Values{"name": {"   "}})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Name is required", form.Errors()["name"])
}

func TestLoadModelFormNotFound(t *testing.T) {
	db := openTestDB(t)

	_, err := LoadModelForm(repo.NewModelRepository(db), 1, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEquipmentFormCreate(t *testing.T) {
	db := openTestDB(t)
	units := repo.NewUnitRepository(db)
	modelsRepo := repo.NewModelRepository(db)
	equipment := repo.NewEquipmentRepository(db)

	unit, err := units.Create(repo.UnitInput{
		Name: "Squad", Movement: 6, Toughness: 4, Save: 3,
		Wounds: 2, Leadership: 6, ObjectiveControl: 2,
	}, "squad")
	require.NoError(t, err)
	m, err := modelsRepo.Create(unit.ID, "Trooper")
	require.NoError(t, err)

	form := NewEquipmentOptionForm(equipment, m.ID)
	assert.Equal(t, m.ID, form.ModelID())

	ok, err := form.Submit(url.Values{
		"name":      {"Bolt Rifle"},
		"range":     {"30"},
		"attacks":   {"2"},
		"skill":     {"3"},
		"strength":  {"4"},
		"damageMin": {"1"},
		"damageMax": {"1"},
	})
	require.NoError(t, err)
	assert.True(t, ok)

	rows, err := equipment.GetForModel(m.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bolt Rifle", rows[0].Name)
	assert.Equal(t, 30, rows[0].Range)
}

func TestEquipmentFormDamageRangeError(t *testing.T) {
	db := openTestDB(t)
	form := NewEquipmentOptionForm(repo.NewEquipmentRepository(db), 1)

	ok, err := form.Submit(url.Values{
		"name":      {"Broken Blade"},
		"attacks":   {"1"},
		"skill":     {"3"},
		"strength":  {"4"},
		"damageMin": {"3"},
		"damageMax": {"1"},
	})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Damage Max must be greater than or equal to Damage Min", form.Errors()["damageMax"])
}

func TestLoadEquipmentFormRequiresAssociation(t *testing.T) {
	db := openTestDB(t)
	units := repo.NewUnitRepository(db)
	modelsRepo := repo.NewModelRepository(db)
	equipment := repo.NewEquipmentRepository(db)

	unit, err := units.Create(repo.UnitInput{
		Name: "Squad", Movement: 6, Toughness: 4, Save: 3,
		Wounds: 2, Leadership: 6, ObjectiveControl: 2,
	}, "squad")
	require.NoError(t, err)
	a, err := modelsRepo.Create(unit.ID, "Alpha")
	require.NoError(t, err)
	b, err := modelsRepo.Create(unit.ID, "Beta")
	require.NoError(t, err)

	option, err := equipment.CreateForModel(a.ID, repo.EquipmentInput{
		Name: "Bolt Rifle", Range: 30, Attacks: 2, Skill: 3,
		Strength: 4, DamageMin: 1, DamageMax: 1,
	})
	require.NoError(t, err)

	form, err := LoadEquipmentOptionForm(equipment, a.ID, option.ID)
	require.NoError(t, err)
	assert.True(t, form.IsEditMode())
	require.NotNil(t, form.Value("range"))
	assert.Equal(t, "30", *form.Value("range"))

	// the option exists but belongs to a different model
	_, err = LoadEquipmentOptionForm(equipment, b.ID, option.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = LoadEquipmentOptionForm(equipment, a.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEquipmentFormFieldBounds(t *testing.T) {
	db := openTestDB(t)
	form := NewEquipmentOptionForm(repo.NewEquipmentRepository(db), 1)

	fields := form.Fields()
	require.Len(t, fields, 8)

	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	require.NotNil(t, byName["range"].Min)
	assert.Equal(t, 0, *byName["range"].Min)
	require.NotNil(t, byName["attacks"].Min)
	assert.Equal(t, 1, *byName["attacks"].Min)
	assert.True(t, byName["attacks"].Required)
	assert.False(t, byName["range"].Required)
}
