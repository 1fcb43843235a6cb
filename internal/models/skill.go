package models

// Skill is a shared catalog entry. Characters reference skills through the
// character_skills join table; this core never creates or mutates skills.
type Skill struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	Name   string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Damage int    `gorm:"not null" json:"damage"`

	// Relations
	Characters []Character `gorm:"many2many:character_skills" json:"-"`
}
