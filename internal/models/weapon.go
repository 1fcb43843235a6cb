package models

import "time"

// Weapon is held by exactly one character; the unique index on CharacterID
// enforces the one-weapon-per-character rule. Weapons are hard deleted when
// replaced, so no soft-delete column.
type Weapon struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Damage      int       `gorm:"not null" json:"damage"`
	CharacterID uint64    `gorm:"uniqueIndex;not null" json:"character_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Character Character `gorm:"foreignKey:CharacterID" json:"character,omitempty"`
}
