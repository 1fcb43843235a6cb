package repository

import (
	"github.com/mkaneko/rpg-character-api/internal/models"
	"gorm.io/gorm"
)

// GormCharacterRepository is a GORM implementation of CharacterRepository
type GormCharacterRepository struct {
	db *gorm.DB
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return &GormCharacterRepository{db: db}
}

// Create creates a new character
func (r *GormCharacterRepository) Create(character *models.Character) error {
	return r.db.Create(character).Error
}

// FindOwnedByID finds a character by ID scoped to its owner, with optional
// preloading
func (r *GormCharacterRepository) FindOwnedByID(id, userID uint64, preload ...string) (*models.Character, error) {
	var character models.Character
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("id = ? AND user_id = ?", id, userID).First(&character).Error; err != nil {
		return nil, err
	}

	return &character, nil
}

// ListByOwner lists a user's characters in creation order, with weapon and
// skills preloaded
func (r *GormCharacterRepository) ListByOwner(userID uint64) ([]models.Character, error) {
	var characters []models.Character

	err := r.db.
		Preload("Weapon").
		Preload("Skills").
		Where("user_id = ?", userID).
		Order("characters.created_at ASC").
		Find(&characters).Error
	if err != nil {
		return nil, err
	}

	return characters, nil
}

// Update persists field changes on a character
func (r *GormCharacterRepository) Update(character *models.Character) error {
	return r.db.Save(character).Error
}

// Delete removes a character, its skill links, and its weapon
func (r *GormCharacterRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Character{ID: id}).Association("Skills").Clear(); err != nil {
			return err
		}

		if err := tx.Where("character_id = ?", id).Delete(&models.Weapon{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Character{}, id).Error
	})
}

// AttachSkill links a catalog skill to a character
func (r *GormCharacterRepository) AttachSkill(characterID, skillID uint64) error {
	return r.db.
		Model(&models.Character{ID: characterID}).
		Association("Skills").
		Append(&models.Skill{ID: skillID})
}

// HasSkill reports whether the character already holds the skill
func (r *GormCharacterRepository) HasSkill(characterID, skillID uint64) (bool, error) {
	var count int64

	err := r.db.Table("character_skills").
		Where("character_id = ? AND skill_id = ?", characterID, skillID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
