package dto

import (
	"github.com/mkaneko/rpg-character-api/internal/models"
	"github.com/mkaneko/rpg-character-api/internal/utils"
)

// WeaponDTO represents a character's weapon in API responses
type WeaponDTO struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Damage int    `json:"damage"`
}

// SkillDTO represents a catalog skill in API responses
type SkillDTO struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Damage int    `json:"damage"`
}

// SkillCatalogDTO is one page of the skill catalog
type SkillCatalogDTO struct {
	Skills     []SkillDTO               `json:"skills"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// CharacterDTO represents a character in API responses
type CharacterDTO struct {
	ID           uint64                `json:"id"`
	Name         string                `json:"name"`
	HitPoints    int                   `json:"hit_points"`
	Strength     int                   `json:"strength"`
	Intelligence int                   `json:"intelligence"`
	Class        models.CharacterClass `json:"class"`
	Weapon       *WeaponDTO            `json:"weapon,omitempty"`
	Skills       []SkillDTO            `json:"skills"`
}

// Conversion functions

// ToWeaponDTO converts a Weapon model to WeaponDTO
func ToWeaponDTO(weapon models.Weapon) WeaponDTO {
	return WeaponDTO{
		ID:     weapon.ID,
		Name:   weapon.Name,
		Damage: weapon.Damage,
	}
}

// ToSkillDTO converts a Skill model to SkillDTO
func ToSkillDTO(skill models.Skill) SkillDTO {
	return SkillDTO{
		ID:     skill.ID,
		Name:   skill.Name,
		Damage: skill.Damage,
	}
}

// ToSkillDTOs converts a slice of Skill models to SkillDTOs
func ToSkillDTOs(skills []models.Skill) []SkillDTO {
	dtos := make([]SkillDTO, len(skills))
	for i, skill := range skills {
		dtos[i] = ToSkillDTO(skill)
	}
	return dtos
}

// ToCharacterDTO converts a Character model to CharacterDTO
func ToCharacterDTO(character models.Character) CharacterDTO {
	dto := CharacterDTO{
		ID:           character.ID,
		Name:         character.Name,
		HitPoints:    character.HitPoints,
		Strength:     character.Strength,
		Intelligence: character.Intelligence,
		Class:        character.Class,
		Skills:       ToSkillDTOs(character.Skills),
	}

	// Include weapon if preloaded
	if character.Weapon != nil {
		weapon := ToWeaponDTO(*character.Weapon)
		dto.Weapon = &weapon
	}

	return dto
}

// ToCharacterDTOs converts a slice of Character models to CharacterDTOs
func ToCharacterDTOs(characters []models.Character) []CharacterDTO {
	dtos := make([]CharacterDTO, len(characters))
	for i, character := range characters {
		dtos[i] = ToCharacterDTO(character)
	}
	return dtos
}
