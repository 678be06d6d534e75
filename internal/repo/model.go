package repo

import (
	"errors"

	"unit-codex/internal/models"

	"gorm.io/gorm"
)

type ModelRepository struct {
	db *gorm.DB
}

func NewModelRepository(db *gorm.DB) *ModelRepository {
	return &ModelRepository{db: db}
}

func (r *ModelRepository) Create(unitID uint, name string) (*models.Model, error) {
	m := models.Model{UnitID: unitID, Name: name}
	if err := r.db.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ModelRepository) GetByID(id uint) (*models.Model, error) {
	var m models.Model
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *ModelRepository) GetForUnit(unitID uint) ([]models.Model, error) {
	var rows []models.Model
	if err := r.db.Where("unit_id = ?", unitID).Order("name asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ModelRepository) Update(id uint, name string) (*models.Model, error) {
	var m models.Model
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	m.Name = name
	if err := r.db.Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete removes the model and its equipment associations. The equipment
// options themselves are shared and stay.
func (r *ModelRepository) Delete(id uint) (bool, error) {
	deleted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("model_id = ?", id).Delete(&models.ModelEquipment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Model{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}
