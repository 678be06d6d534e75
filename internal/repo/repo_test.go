package repo

import (
	"fmt"
	"strings"
	"testing"

	"unit-codex/internal/database"
	"unit-codex/internal/models"

	"github.com/glebarez/sqlite"
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

func seedUnit(t *testing.T, db *gorm.DB, name, slug string) models.Unit {
	t.Helper()
	unit := models.Unit{
		Name:             name,
		Slug:             slug,
		Movement:         6,
		Toughness:        4,
		Save:             3,
		Wounds:           2,
		Leadership:       6,
		ObjectiveControl: 2,
	}
	require.NoError(t, db.Create(&unit).Error)
	return unit
}

func seedModel(t *testing.T, db *gorm.DB, unitID uint, name string) models.Model {
	t.Helper()
	m := models.Model{UnitID: unitID, Name: name}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func seedEquipment(t *testing.T, db *gorm.DB, modelID uint, name string, isDefault bool) models.EquipmentOption {
	t.Helper()
	option := models.EquipmentOption{
		Name:      name,
		Range:     30,
		Attacks:   2,
		Skill:     3,
		Strength:  4,
		DamageMin: 1,
		DamageMax: 1,
	}
	require.NoError(t, db.Create(&option).Error)
	link := models.ModelEquipment{ModelID: modelID, EquipmentOptionID: option.ID, IsDefault: isDefault}
	require.NoError(t, db.Create(&link).Error)
	return option
}

func seedKeyword(t *testing.T, db *gorm.DB, unitID uint, name string) {
	t.Helper()
	kw := models.Keyword{Name: name}
	require.NoError(t, db.Where("name = ?", name).FirstOrCreate(&kw).Error)
	require.NoError(t, db.Create(&models.UnitKeyword{UnitID: unitID, KeywordID: kw.ID}).Error)
}
