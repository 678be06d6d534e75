package repo

import (
	"errors"
	"sort"

	"unit-codex/internal/models"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// EquipmentInput carries validated equipment data into create/update.
type EquipmentInput struct {
	Name          string
	Range         int
	Attacks       int
	Skill         int
	Strength      int
	ArmorPiercing int
	DamageMin     int
	DamageMax     int
}

// ModelEquipmentRow is an equipment profile joined with the association
// flag for one specific model.
type ModelEquipmentRow struct {
	ID            uint
	Name          string
	Range         int
	Attacks       int
	Skill         int
	Strength      int
	ArmorPiercing int
	DamageMin     int
	DamageMax     int
	IsDefault     bool
}

// EquipmentSummary is the per-model admin overview: how many options are
// attached and which of them are defaults.
type EquipmentSummary struct {
	Total        int
	DefaultNames []string
}

// OptionRef is a minimal option reference for association pickers.
type OptionRef struct {
	ID   uint
	Name string
}

// CreateForModel inserts the option and its association to the model in one
// transaction.
func (r *EquipmentRepository) CreateForModel(modelID uint, in EquipmentInput) (*models.EquipmentOption, error) {
	option := models.EquipmentOption{
		Name:          in.Name,
		Range:         in.Range,
		Attacks:       in.Attacks,
		Skill:         in.Skill,
		Strength:      in.Strength,
		ArmorPiercing: in.ArmorPiercing,
		DamageMin:     in.DamageMin,
		DamageMax:     in.DamageMax,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&option).Error; err != nil {
			return err
		}
		link := models.ModelEquipment{ModelID: modelID, EquipmentOptionID: option.ID}
		return tx.Create(&link).Error
	})
	if err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *EquipmentRepository) GetByID(id uint) (*models.EquipmentOption, error) {
	var option models.EquipmentOption
	if err := r.db.First(&option, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &option, nil
}

// GetForModel returns the model's equipment, defaults first, ties broken by
// name.
func (r *EquipmentRepository) GetForModel(modelID uint) ([]ModelEquipmentRow, error) {
	var rows []ModelEquipmentRow
	err := r.db.Model(&models.ModelEquipment{}).
		Select(`equipment_options.id,
			equipment_options.name,
			equipment_options."range",
			equipment_options.attacks,
			equipment_options.skill,
			equipment_options.strength,
			equipment_options.armor_piercing,
			equipment_options.damage_min,
			equipment_options.damage_max,
			model_equipments.is_default`).
		Joins("JOIN equipment_options ON equipment_options.id = model_equipments.equipment_option_id").
		Where("model_equipments.model_id = ?", modelID).
		Order("model_equipments.is_default desc, equipment_options.name asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EquipmentRepository) Update(id uint, in EquipmentInput) (*models.EquipmentOption, error) {
	var option models.EquipmentOption
	if err := r.db.First(&option, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	option.Name = in.Name
	option.Range = in.Range
	option.Attacks = in.Attacks
	option.Skill = in.Skill
	option.Strength = in.Strength
	option.ArmorPiercing = in.ArmorPiercing
	option.DamageMin = in.DamageMin
	option.DamageMax = in.DamageMax

	if err := r.db.Save(&option).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

// RemoveFromModel deletes the association only; the option survives.
func (r *EquipmentRepository) RemoveFromModel(modelID, optionID uint) (bool, error) {
	res := r.db.Where("model_id = ? AND equipment_option_id = ?", modelID, optionID).
		Delete(&models.ModelEquipment{})
	return res.RowsAffected > 0, res.Error
}

func (r *EquipmentRepository) Associate(modelID, optionID uint) error {
	link := models.ModelEquipment{ModelID: modelID, EquipmentOptionID: optionID}
	return r.db.Create(&link).Error
}

func (r *EquipmentRepository) IsAssociatedWithModel(modelID, optionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ModelEquipment{}).
		Where("model_id = ? AND equipment_option_id = ?", modelID, optionID).
		Count(&count).Error
	return count > 0, err
}

func (r *EquipmentRepository) SetDefault(modelID, optionID uint) error {
	return r.setDefaultFlag(modelID, optionID, true)
}

func (r *EquipmentRepository) UnsetDefault(modelID, optionID uint) error {
	return r.setDefaultFlag(modelID, optionID, false)
}

func (r *EquipmentRepository) setDefaultFlag(modelID, optionID uint, value bool) error {
	return r.db.Model(&models.ModelEquipment{}).
		Where("model_id = ? AND equipment_option_id = ?", modelID, optionID).
		Update("is_default", value).Error
}

func (r *EquipmentRepository) SummaryForModel(modelID uint) (EquipmentSummary, error) {
	summaries, err := r.SummariesForModels([]uint{modelID})
	if err != nil {
		return EquipmentSummary{}, err
	}
	return summaries[modelID], nil
}

// SummariesForModels collects option counts and sorted default names for a
// batch of models in one query. Every requested id gets an entry, even when
// it has no equipment.
func (r *EquipmentRepository) SummariesForModels(modelIDs []uint) (map[uint]EquipmentSummary, error) {
	result := make(map[uint]EquipmentSummary, len(modelIDs))
	for _, id := range modelIDs {
		result[id] = EquipmentSummary{DefaultNames: []string{}}
	}
	if len(modelIDs) == 0 {
		return result, nil
	}

	type summaryRow struct {
		ModelID   uint
		Name      string
		IsDefault bool
	}
	var rows []summaryRow
	err := r.db.Model(&models.ModelEquipment{}).
		Select("model_equipments.model_id, equipment_options.name, model_equipments.is_default").
		Joins("JOIN equipment_options ON equipment_options.id = model_equipments.equipment_option_id").
		Where("model_equipments.model_id IN ?", modelIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		s := result[row.ModelID]
		s.Total++
		if row.IsDefault {
			s.DefaultNames = append(s.DefaultNames, row.Name)
		}
		result[row.ModelID] = s
	}
	for id, s := range result {
		sort.Strings(s.DefaultNames)
		result[id] = s
	}
	return result, nil
}

// UnassociatedOptions lists options not yet attached to the model, for the
// association picker.
func (r *EquipmentRepository) UnassociatedOptions(modelID uint) ([]OptionRef, error) {
	var refs []OptionRef
	err := r.db.Model(&models.EquipmentOption{}).
		Select("equipment_options.id, equipment_options.name").
		Where("equipment_options.id NOT IN (?)",
			r.db.Model(&models.ModelEquipment{}).
				Select("equipment_option_id").
				Where("model_id = ?", modelID)).
		Order("equipment_options.name asc").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}
