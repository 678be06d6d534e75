package repo

import (
	"errors"
	"strings"
	"time"

	"unit-codex/internal/database"
	"unit-codex/internal/models"

	"gorm.io/gorm"
)

// searchLimit caps fuzzy search results.
const searchLimit = 50

type UnitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{db: db}
}

// UnitInput carries validated unit data into create/update. Keywords is the
// raw comma-separated string from the form.
type UnitInput struct {
	Name                string
	Movement            int
	Toughness           int
	Save                int
	Wounds              int
	Leadership          int
	ObjectiveControl    int
	InvulnerabilitySave *int
	Description         string
	Keywords            string
}

// UnitAggregate is the fully joined unit used by the public detail page.
type UnitAggregate struct {
	ID                  uint
	Name                string
	Slug                string
	Movement            int
	Toughness           int
	Save                int
	Wounds              int
	Leadership          int
	ObjectiveControl    int
	InvulnerabilitySave *int
	Description         string
	CreatedAt           time.Time

	Keywords []string
	Models   []AggregateModel
}

// AggregateModel is one physical model with its equipment, ordered by
// default-first then name.
type AggregateModel struct {
	ID        uint
	UnitID    uint
	Name      string
	Equipment []AggregateEquipment
}

// AggregateEquipment is an equipment profile together with the IsDefault
// flag of this particular model↔option association.
type AggregateEquipment struct {
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

func (r *UnitRepository) Create(in UnitInput, slug string) (*models.Unit, error) {
	unit := models.Unit{
		Name:                in.Name,
		Slug:                slug,
		Movement:            in.Movement,
		Toughness:           in.Toughness,
		Save:                in.Save,
		Wounds:              in.Wounds,
		Leadership:          in.Leadership,
		ObjectiveControl:    in.ObjectiveControl,
		InvulnerabilitySave: in.InvulnerabilitySave,
		Description:         in.Description,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&unit).Error; err != nil {
			return err
		}
		return syncKeywords(tx, unit.ID, in.Keywords)
	})
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *UnitRepository) Update(id uint, in UnitInput, slug string) (*models.Unit, error) {
	var unit models.Unit

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&unit, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		unit.Name = in.Name
		unit.Slug = slug
		unit.Movement = in.Movement
		unit.Toughness = in.Toughness
		unit.Save = in.Save
		unit.Wounds = in.Wounds
		unit.Leadership = in.Leadership
		unit.ObjectiveControl = in.ObjectiveControl
		unit.InvulnerabilitySave = in.InvulnerabilitySave
		unit.Description = in.Description

		if err := tx.Save(&unit).Error; err != nil {
			return err
		}
		return syncKeywords(tx, unit.ID, in.Keywords)
	})
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// Delete removes a unit together with its keyword links, models and their
// equipment associations. Equipment options and keyword rows survive for
// reuse elsewhere.
func (r *UnitRepository) Delete(id uint) (bool, error) {
	deleted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var modelIDs []uint
		if err := tx.Model(&models.Model{}).Where("unit_id = ?", id).Pluck("id", &modelIDs).Error; err != nil {
			return err
		}
		if len(modelIDs) > 0 {
			if err := tx.Where("model_id IN ?", modelIDs).Delete(&models.ModelEquipment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("unit_id = ?", id).Delete(&models.Model{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("unit_id = ?", id).Delete(&models.UnitKeyword{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Unit{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *UnitRepository) GetByID(id uint) (*models.Unit, error) {
	var unit models.Unit
	if err := r.db.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

func (r *UnitRepository) GetBySlug(slug string) (*models.Unit, error) {
	var unit models.Unit
	if err := r.db.Where("slug = ?", slug).First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

func (r *UnitRepository) GetAll() ([]models.Unit, error) {
	var units []models.Unit
	if err := r.db.Order("name asc").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// Search matches the query as a literal substring of the unit name,
// case-insensitively. LIKE metacharacters in the query are escaped.
func (r *UnitRepository) Search(query string) ([]models.Unit, error) {
	pattern := "%" + database.EscapeLikePattern(query) + "%"
	pattern = database.NormalizeLikePattern(r.db, pattern)

	var units []models.Unit
	err := r.db.
		Where(database.CaseInsensitiveLikeExpr(r.db, "name"), pattern).
		Order("name asc").
		Limit(searchLimit).
		Find(&units).Error
	if err != nil {
		return nil, err
	}
	return units, nil
}

// IsSlugAvailable reports whether no other unit uses the slug. excludeID
// skips the unit being edited; pass 0 when creating.
func (r *UnitRepository) IsSlugAvailable(slug string, excludeID uint) (bool, error) {
	q := r.db.Model(&models.Unit{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// KeywordsForUnit returns the unit's keyword names. Relational order is not
// meaningful.
func (r *UnitRepository) KeywordsForUnit(id uint) ([]string, error) {
	var names []string
	err := r.db.Model(&models.UnitKeyword{}).
		Joins("JOIN keywords ON keywords.id = unit_keywords.keyword_id").
		Where("unit_keywords.unit_id = ?", id).
		Pluck("keywords.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// GetFullBySlug assembles the nested aggregate for the detail page: unit
// scalars, keyword names, models ordered by name and each model's equipment
// ordered default-first then by name. The pieces are fetched separately so
// keywords never multiply model or equipment rows.
func (r *UnitRepository) GetFullBySlug(slug string) (*UnitAggregate, error) {
	unit, err := r.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	keywords, err := r.KeywordsForUnit(unit.ID)
	if err != nil {
		return nil, err
	}

	var modelRows []models.Model
	if err := r.db.Where("unit_id = ?", unit.ID).Order("name asc").Find(&modelRows).Error; err != nil {
		return nil, err
	}

	agg := &UnitAggregate{
		ID:                  unit.ID,
		Name:                unit.Name,
		Slug:                unit.Slug,
		Movement:            unit.Movement,
		Toughness:           unit.Toughness,
		Save:                unit.Save,
		Wounds:              unit.Wounds,
		Leadership:          unit.Leadership,
		ObjectiveControl:    unit.ObjectiveControl,
		InvulnerabilitySave: unit.InvulnerabilitySave,
		Description:         unit.Description,
		CreatedAt:           unit.CreatedAt,
		Keywords:            keywords,
		Models:              make([]AggregateModel, 0, len(modelRows)),
	}

	if len(modelRows) == 0 {
		return agg, nil
	}

	modelIDs := make([]uint, len(modelRows))
	for i, m := range modelRows {
		modelIDs[i] = m.ID
	}

	type equipmentRow struct {
		ModelID       uint
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
	var eqRows []equipmentRow
	err = r.db.Model(&models.ModelEquipment{}).
		Select(`model_equipments.model_id,
			equipment_options.id,
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
		Where("model_equipments.model_id IN ?", modelIDs).
		Order("model_equipments.model_id asc, model_equipments.is_default desc, equipment_options.name asc").
		Scan(&eqRows).Error
	if err != nil {
		return nil, err
	}

	equipmentByModel := make(map[uint][]AggregateEquipment, len(modelRows))
	for _, row := range eqRows {
		equipmentByModel[row.ModelID] = append(equipmentByModel[row.ModelID], AggregateEquipment{
			ID:            row.ID,
			Name:          row.Name,
			Range:         row.Range,
			Attacks:       row.Attacks,
			Skill:         row.Skill,
			Strength:      row.Strength,
			ArmorPiercing: row.ArmorPiercing,
			DamageMin:     row.DamageMin,
			DamageMax:     row.DamageMax,
			IsDefault:     row.IsDefault,
		})
	}

	for _, m := range modelRows {
		eq := equipmentByModel[m.ID]
		if eq == nil {
			eq = []AggregateEquipment{}
		}
		agg.Models = append(agg.Models, AggregateModel{
			ID:        m.ID,
			UnitID:    m.UnitID,
			Name:      m.Name,
			Equipment: eq,
		})
	}

	return agg, nil
}

// syncKeywords replaces the unit's keyword set with the names parsed from
// the raw comma-separated string. Links are fully rewritten, not diffed;
// unseen keyword names are created on the fly.
func syncKeywords(tx *gorm.DB, unitID uint, raw string) error {
	if err := tx.Where("unit_id = ?", unitID).Delete(&models.UnitKeyword{}).Error; err != nil {
		return err
	}

	for _, name := range ParseKeywords(raw) {
		var kw models.Keyword
		err := tx.Where("name = ?", name).First(&kw).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			kw = models.Keyword{Name: name}
			err = tx.Create(&kw).Error
		}
		if err != nil {
			return err
		}
		if err := tx.Create(&models.UnitKeyword{UnitID: unitID, KeywordID: kw.ID}).Error; err != nil {
			return err
		}
	}
	return nil
}

// ParseKeywords splits a comma-separated keyword string, trims entries and
// drops empty ones.
func ParseKeywords(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
