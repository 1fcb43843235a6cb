package services

import (
	"errors"
	"fmt"

	"github.com/mkaneko/rpg-character-api/internal/models"
	"github.com/mkaneko/rpg-character-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCharacterNotFound = errors.New("character not found")
	ErrSkillNotFound     = errors.New("skill not found")
	ErrSkillAlreadyKnown = errors.New("skill already attached")
)

// CharacterService handles character business logic. Every operation takes
// the acting user's ID explicitly; the transport layer resolves it from the
// session and a character owned by another user behaves exactly like a
// missing one.
type CharacterService struct {
	characterRepo repository.CharacterRepository
	skillRepo     repository.SkillRepository
}

// NewCharacterService creates a new CharacterService
func NewCharacterService(characterRepo repository.CharacterRepository, skillRepo repository.SkillRepository) *CharacterService {
	return &CharacterService{
		characterRepo: characterRepo,
		skillRepo:     skillRepo,
	}
}

// Stats an omitted create field falls back to. An explicit zero is a valid
// stat and is kept as sent, so the inputs use pointers to tell the two apart.
const (
	DefaultHitPoints    = 100
	DefaultStrength     = 10
	DefaultIntelligence = 10
)

// CreateCharacterInput represents input for creating a character. Nil stat
// fields take the defaults above.
type CreateCharacterInput struct {
	Name         string
	HitPoints    *int
	Strength     *int
	Intelligence *int
	Class        models.CharacterClass
}

// UpdateCharacterInput represents input for updating a character
type UpdateCharacterInput struct {
	ID           uint64
	Name         string
	HitPoints    int
	Strength     int
	Intelligence int
	Class        models.CharacterClass
}

// AttachSkillInput represents input for attaching a catalog skill
type AttachSkillInput struct {
	CharacterID uint64
	SkillID     uint64
}

// Create persists a new character owned by userID and returns the user's
// full updated character list, so callers always see the post-create state.
func (s *CharacterService) Create(userID uint64, input CreateCharacterInput) ([]models.Character, error) {
	character := &models.Character{
		Name:         input.Name,
		HitPoints:    DefaultHitPoints,
		Strength:     DefaultStrength,
		Intelligence: DefaultIntelligence,
		Class:        input.Class,
		UserID:       userID,
	}

	if input.HitPoints != nil {
		character.HitPoints = *input.HitPoints
	}
	if input.Strength != nil {
		character.Strength = *input.Strength
	}
	if input.Intelligence != nil {
		character.Intelligence = *input.Intelligence
	}
	if character.Class == "" {
		character.Class = models.ClassWarrior
	}

	if err := s.characterRepo.Create(character); err != nil {
		return nil, fmt.Errorf("failed to create character: %w", err)
	}

	return s.List(userID)
}

// List returns all characters owned by userID with weapon and skills loaded.
// A user without characters gets an empty list, not an error.
func (s *CharacterService) List(userID uint64) ([]models.Character, error) {
	characters, err := s.characterRepo.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}

	if characters == nil {
		characters = []models.Character{}
	}

	return characters, nil
}

// Get returns the character only if it exists and belongs to userID.
func (s *CharacterService) Get(userID, id uint64) (*models.Character, error) {
	character, err := s.characterRepo.FindOwnedByID(id, userID, "Weapon", "Skills")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to find character: %w", err)
	}

	return character, nil
}

// Update mutates exactly the name, hit points, strength, intelligence and
// class fields of an owned character. Owner, weapon and skills are never
// touched by an update.
func (s *CharacterService) Update(userID uint64, input UpdateCharacterInput) (*models.Character, error) {
	character, err := s.characterRepo.FindOwnedByID(input.ID, userID, "Weapon", "Skills")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to find character: %w", err)
	}

	character.Name = input.Name
	character.HitPoints = input.HitPoints
	character.Strength = input.Strength
	character.Intelligence = input.Intelligence
	character.Class = input.Class

	if err := s.characterRepo.Update(character); err != nil {
		return nil, fmt.Errorf("failed to update character: %w", err)
	}

	return character, nil
}

// Delete removes an owned character and returns the user's remaining
// character list.
func (s *CharacterService) Delete(userID, id uint64) ([]models.Character, error) {
	if _, err := s.characterRepo.FindOwnedByID(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to find character: %w", err)
	}

	if err := s.characterRepo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete character: %w", err)
	}

	return s.List(userID)
}

// AttachSkill links a catalog skill to an owned character. Attaching a skill
// the character already holds is rejected, keeping the skill set a set.
func (s *CharacterService) AttachSkill(userID uint64, input AttachSkillInput) (*models.Character, error) {
	if _, err := s.characterRepo.FindOwnedByID(input.CharacterID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to find character: %w", err)
	}

	if _, err := s.skillRepo.FindByID(input.SkillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}

	known, err := s.characterRepo.HasSkill(input.CharacterID, input.SkillID)
	if err != nil {
		return nil, fmt.Errorf("failed to check character skills: %w", err)
	}
	if known {
		return nil, ErrSkillAlreadyKnown
	}

	if err := s.characterRepo.AttachSkill(input.CharacterID, input.SkillID); err != nil {
		return nil, fmt.Errorf("failed to attach skill: %w", err)
	}

	return s.characterRepo.FindOwnedByID(input.CharacterID, userID, "Weapon", "Skills")
}
