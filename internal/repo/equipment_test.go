package repo

import (
	"testing"

	"unit-codex/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateForModel(t *testing.T) {
	db := openTestDB(t)
	r := NewEquipmentRepository(db)
	unit := seedUnit(t, db, "Squad", "squad")
	m := seedModel(t, db, unit.ID, "Trooper")

	option, err := r.CreateForModel(m.ID, EquipmentInput{
		Name: "Plasma Gun", Range: 24, Attacks: 1, Skill: 3,
		Strength: 7, ArmorPiercing: 2, DamageMin: 1, DamageMax: 2,
	})
	require.NoError(t, err)
	assert.NotZero(t, option.ID)

	rows, err := r.GetForModel(m.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Plasma Gun", rows[0].Name)
	assert.Equal(t, 24, rows[0].Range)
	assert.Equal(t, 2, rows[0].ArmorPiercing)
	assert.Equal(t, 2, rows[0].DamageMax)
	assert.False(t, rows[0].IsDefault)
}

func TestGetForModelOrdering(t *testing.T) {
	db := openTestDB(t)
	r := NewEquipmentRepository(db)
	unit := seedUnit(t, db, "Squad", "squad")
	m := seedModel(t, db, unit.ID, "Trooper")
	seedEquipment(t, db, m.ID, "Chainsword", false)
	seedEquipment(t, db, m.ID, "Bolt Pistol", true)
	seedEquipment(t, db, m.ID, "Auspex", false)

	rows, err := r.GetForModel(m.ID)
	require.NoError(t, err)

	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Name
	}
	assert.Equal(t, []string{"Bolt Pistol", "Auspex", "Chainsword"}, names)
}

func TestEquipmentUpdate(t *testing.T) {
	db := openTestDB(t)
	r := NewEquipmentRepository(db)
	unit := seedUnit(t, db, "Squad", "squad")
	m := seedModel(t, db, unit.ID, "Trooper")
	option := seedEquipment(t, db, m.ID, "Bolt Rifle", false)

	updated, err := r.Update(option.ID, EquipmentInput{
		Name: "Heavy Bolt Rifle", Range: 36, Attacks: 2, Skill: 3,
		Strength: 5, ArmorPiercing: 1, DamageMin: 2, DamageMax: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Heavy Bolt Rifle", updated.Name)
	assert.Equal(t, 36, updated.Range)

	_, err = r.Update(999, EquipmentInput{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveFromModelKeepsOption(t *testing.T) {
	db := openTestDB(t)
	r := NewEquipmentRepository(db)
	unit := seedUnit(t, db, "Squad", "squad")
	m := seedModel(t, db, unit.ID, "Trooper")
	option := seedEquipment(t, db, m.ID, "Bolt Rifle", true)

	removed, err := r.RemoveFromModel(m.ID, option.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	var count int64
	require.NoError(t, db.Model(&models.EquipmentOption{}).Where("id = ?", option.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	removed, err = r.RemoveFromModel(m.ID, option.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestAssociateAndIsAssociated(t *testing.T) {
	db := openTestDB(t)
	r := NewEquipmentRepository(db)
	unit := seedUnit(t, db, "Squad", "squad")
	a := seedModel(t, db, unit.ID, "Alpha")
	b := seedModel(t, db, unit.ID, "Beta")
	option := seedEquipment(t, db, a.ID, "Bolt Rifle", false)

	linked, err := r.IsAssociatedWithModel(b.ID, option.ID)
	require.NoError(t, err)
	assert.False(t, linked)

	require.NoError(t, r.Associate(b.ID, option.ID))

	linked, err = r.IsAssociatedWithModel(b.ID, option.ID)
	require.NoError(t, err)
	assert.True(t, linked)
}

func TestDefaultFlagIsPerAssociation(t *testing.T) {
	db := openTestDB(t)
	r := NewEquipmentRepository(db)
	unit := seedUnit(t, db, "Squad", "squad")
	a := seedModel(t, db, unit.ID, "Alpha")
	b := seedModel(t, db, unit.ID, "Beta")
	option := seedEquipment(t, db, a.ID, "Bolt Rifle", false)
	require.NoError(t, r.Associate(b.ID, option.ID))

	require.NoError(t, r.SetDefault(a.ID, option.ID))

	rowsA, err := r.GetForModel(a.ID)
	require.NoError(t, err)
	rowsB, err := r.GetForModel(b.ID)
	require.NoError(t, err)
	assert.True(t, rowsA[0].IsDefault)
	assert.False(t, rowsB[0].IsDefault)

	require.NoError(t, r.UnsetDefault(a.ID, option.ID))
	rowsA, err = r.GetForModel(a.ID)
	require.NoError(t, err)
	assert.False(t, rowsA[0].IsDefault)
}

func TestSummariesForModels(t *testing.T) {
	db := openTestDB(t)
	r := NewEquipmentRepository(db)
	unit := seedUnit(t, db, "Squad", "squad")
	a := seedModel(t, db, unit.ID, "Alpha")
	b := seedModel(t, db, unit.ID, "Beta")
	bare := seedModel(t, db, unit.ID, "Bare")
	seedEquipment(t, db, a.ID, "Chainsword", true)
	seedEquipment(t, db, a.ID, "Bolt Pistol", true)
	seedEquipment(t, db, a.ID, "Auspex", false)
	seedEquipment(t, db, b.ID, "Plasma Gun", false)

	summaries, err := r.SummariesForModels([]uint{a.ID, b.ID, bare.ID})
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, 3, summaries[a.ID].Total)
	assert.Equal(t, []string{"Bolt Pistol", "Chainsword"}, summaries[a.ID].DefaultNames)

	assert.Equal(t, 1, summaries[b.ID].Total)
	assert.Empty(t, summaries[b.ID].DefaultNames)

	// a model with no equipment still gets an entry
	assert.Equal(t, 0, summaries[bare.ID].Total)
	assert.NotNil(t, summaries[bare.ID].DefaultNames)
}

func TestSummariesForModelsEmptyInput(t *testing.T) {
	db := openTestDB(t)
	r := NewEquipmentRepository(db)

	summaries, err := r.SummariesForModels(nil)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestUnassociatedOptions(t *testing.T) {
	db := openTestDB(t)
	r := NewEquipmentRepository(db)
	unit := seedUnit(t, db, "Squad", "squad")
	a := seedModel(t, db, unit.ID, "Alpha")
	b := seedModel(t, db, unit.ID, "Beta")
	seedEquipment(t, db, a.ID, "Bolt Rifle", false)
	zeta := seedEquipment(t, db, b.ID, "Zeta Blade", false)
	auspex := seedEquipment(t, db, b.ID, "Auspex", false)

	refs, err := r.UnassociatedOptions(a.ID)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, auspex.ID, refs[0].ID)
	assert.Equal(t, "Auspex", refs[0].Name)
	assert.Equal(t, zeta.ID, refs[1].ID)
}
