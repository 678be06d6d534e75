package models

import "time"

type Unit struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null"`
	Slug string `gorm:"size:255;uniqueIndex;not null"`

	Movement         int `gorm:"not null"`
	Toughness        int `gorm:"not null"`
	Save             int `gorm:"not null"`
	Wounds           int `gorm:"not null"`
	Leadership       int `gorm:"not null"`
	ObjectiveControl int `gorm:"not null"`

	// nil means the unit has no invulnerability save at all.
	InvulnerabilitySave *int

	Description string `gorm:"type:text"`

	CreatedAt time.Time
}

// UnitKeyword links a unit to a keyword. Both sides cascade: removing a
// unit or a keyword removes the link, never the other endpoint.
type UnitKeyword struct {
	UnitID    uint `gorm:"primaryKey"`
	KeywordID uint `gorm:"primaryKey"`

	Unit    Unit    `gorm:"constraint:OnDelete:CASCADE"`
	Keyword Keyword `gorm:"constraint:OnDelete:CASCADE"`
}
