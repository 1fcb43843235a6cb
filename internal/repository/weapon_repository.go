package repository

import (
	"github.com/mkaneko/rpg-character-api/internal/models"
	"gorm.io/gorm"
)

// GormWeaponRepository is a GORM implementation of WeaponRepository
type GormWeaponRepository struct {
	db *gorm.DB
}

// NewWeaponRepository creates a new WeaponRepository
func NewWeaponRepository(db *gorm.DB) WeaponRepository {
	return &GormWeaponRepository{db: db}
}

// ReplaceForCharacter removes any weapon the character currently holds and
// persists the new one atomically. Weapons are hard deleted so the unique
// index on character_id stays satisfiable.
func (r *GormWeaponRepository) ReplaceForCharacter(weapon *models.Weapon) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("character_id = ?", weapon.CharacterID).Delete(&models.Weapon{}).Error; err != nil {
			return err
		}

		return tx.Create(weapon).Error
	})
}
