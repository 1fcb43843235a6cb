package services

import (
	"fmt"

	"github.com/mkaneko/rpg-character-api/internal/models"
	"github.com/mkaneko/rpg-character-api/internal/repository"
	"github.com/mkaneko/rpg-character-api/internal/utils"
)

// SkillService exposes the read-only skill catalog.
type SkillService struct {
	skillRepo repository.SkillRepository
}

// NewSkillService creates a new SkillService
func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{
		skillRepo: skillRepo,
	}
}

// List retrieves a page of the skill catalog and the total count.
func (s *SkillService) List(params utils.PaginationParams) ([]models.Skill, int64, error) {
	skills, total, err := s.skillRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list skills: %w", err)
	}

	if skills == nil {
		skills = []models.Skill{}
	}

	return skills, total, nil
}
