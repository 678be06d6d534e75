package models

import "time"

// Model is one physical piece belonging to a unit. Names are not unique:
// a squad of five identical troopers is five rows with the same name.
type Model struct {
	ID     uint `gorm:"primaryKey"`
	UnitID uint `gorm:"index;not null"`
	Unit   Unit `gorm:"constraint:OnDelete:CASCADE"`

	Name string `gorm:"size:255;not null"`

	CreatedAt time.Time
}
