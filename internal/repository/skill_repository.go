package repository

import (
	"github.com/mkaneko/rpg-character-api/internal/database"
	"github.com/mkaneko/rpg-character-api/internal/models"
	"github.com/mkaneko/rpg-character-api/internal/utils"
	"gorm.io/gorm"
)

// GormSkillRepository is a GORM implementation of SkillRepository
type GormSkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &GormSkillRepository{db: db}
}

// FindByID finds a catalog skill by ID
func (r *GormSkillRepository) FindByID(id uint64) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.First(&skill, id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// List retrieves a page of the skill catalog and the total count
func (r *GormSkillRepository) List(params utils.PaginationParams) ([]models.Skill, int64, error) {
	var skills []models.Skill

	query := r.db.Model(&models.Skill{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("skills.id ASC").
		Scopes(database.Paginate(params)).
		Find(&skills).Error
	if err != nil {
		return nil, 0, err
	}

	return skills, total, nil
}
