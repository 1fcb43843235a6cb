package services

import (
	"errors"
	"fmt"

	"github.com/mkaneko/rpg-character-api/internal/models"
	"github.com/mkaneko/rpg-character-api/internal/repository"
	"gorm.io/gorm"
)

// WeaponService handles attaching a weapon to an owned character.
type WeaponService struct {
	characterRepo repository.CharacterRepository
	weaponRepo    repository.WeaponRepository
}

// NewWeaponService creates a new WeaponService
func NewWeaponService(characterRepo repository.CharacterRepository, weaponRepo repository.WeaponRepository) *WeaponService {
	return &WeaponService{
		characterRepo: characterRepo,
		weaponRepo:    weaponRepo,
	}
}

// AttachWeaponInput represents input for attaching a weapon
type AttachWeaponInput struct {
	CharacterID uint64
	Name        string
	Damage      int
}

// Attach equips a new weapon on an owned character and returns the updated
// character view. A character holds at most one weapon; attaching replaces
// whatever was held before.
func (s *WeaponService) Attach(userID uint64, input AttachWeaponInput) (*models.Character, error) {
	if _, err := s.characterRepo.FindOwnedByID(input.CharacterID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to find character: %w", err)
	}

	weapon := &models.Weapon{
		Name:        input.Name,
		Damage:      input.Damage,
		CharacterID: input.CharacterID,
	}

	if err := s.weaponRepo.ReplaceForCharacter(weapon); err != nil {
		return nil, fmt.Errorf("failed to attach weapon: %w", err)
	}

	return s.characterRepo.FindOwnedByID(input.CharacterID, userID, "Weapon", "Skills")
}
