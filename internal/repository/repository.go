package repository

import (
	"github.com/mkaneko/rpg-character-api/internal/models"
	"github.com/mkaneko/rpg-character-api/internal/utils"
)

// CharacterRepository defines the interface for character data access.
// Every lookup that takes a userID is owner-scoped: a character owned by
// someone else is indistinguishable from a missing one.
type CharacterRepository interface {
	// Create creates a new character
	Create(character *models.Character) error

	// FindOwnedByID finds a character by ID and owner with optional preloading
	FindOwnedByID(id, userID uint64, preload ...string) (*models.Character, error)

	// ListByOwner lists a user's characters with weapon and skills preloaded
	ListByOwner(userID uint64) ([]models.Character, error)

	// Update persists field changes on a character
	Update(character *models.Character) error

	// Delete removes a character together with its weapon and skill links
	Delete(id uint64) error

	// AttachSkill links a catalog skill to a character
	AttachSkill(characterID, skillID uint64) error

	// HasSkill reports whether the character already holds the skill
	HasSkill(characterID, skillID uint64) (bool, error)
}

// WeaponRepository defines the interface for weapon data access
type WeaponRepository interface {
	// ReplaceForCharacter removes any weapon the character holds and
	// persists the new one within a single transaction
	ReplaceForCharacter(weapon *models.Weapon) error
}

// SkillRepository defines the interface for the read-only skill catalog
type SkillRepository interface {
	// FindByID finds a catalog skill by ID
	FindByID(id uint64) (*models.Skill, error)

	// List retrieves a page of the skill catalog and the total count
	List(params utils.PaginationParams) ([]models.Skill, int64, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}
