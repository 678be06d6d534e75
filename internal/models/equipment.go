package models

import "time"

// EquipmentOption is a reusable weapon/wargear profile. Options are shared
// across models; deleting an association never deletes the option.
type EquipmentOption struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null"`

	Range         int `gorm:"not null;default:0"` // 0 = melee
	Attacks       int `gorm:"not null"`
	Skill         int `gorm:"not null"`
	Strength      int `gorm:"not null"`
	ArmorPiercing int `gorm:"not null;default:0"` // stored as non-negative magnitude
	DamageMin     int `gorm:"not null;default:1"`
	DamageMax     int `gorm:"not null;default:1"`

	CreatedAt time.Time
}

// ModelEquipment is the model↔option association. IsDefault belongs to the
// pair, not to the option: the same option can be default on one model and
// optional on another.
type ModelEquipment struct {
	ModelID           uint `gorm:"primaryKey"`
	EquipmentOptionID uint `gorm:"primaryKey"`

	IsDefault bool `gorm:"not null;default:false"`

	Model           Model           `gorm:"constraint:OnDelete:CASCADE"`
	EquipmentOption EquipmentOption `gorm:"constraint:OnDelete:CASCADE"`
}
