package models

import (
	"time"

	"gorm.io/gorm"
)

type CharacterClass string

const (
	ClassWarrior CharacterClass = "Warrior"
	ClassKnight  CharacterClass = "Knight"
	ClassMage    CharacterClass = "Mage"
	ClassCleric  CharacterClass = "Cleric"
)

type Character struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	HitPoints    int            `gorm:"not null" json:"hit_points"`
	Strength     int            `gorm:"not null" json:"strength"`
	Intelligence int            `gorm:"not null" json:"intelligence"`
	Class        CharacterClass `gorm:"type:varchar(20);not null" json:"class"`
	UserID       uint64         `gorm:"not null;index" json:"user_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User   User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Weapon *Weapon `gorm:"foreignKey:CharacterID" json:"weapon,omitempty"`
	Skills []Skill `gorm:"many2many:character_skills" json:"skills,omitempty"`
}
