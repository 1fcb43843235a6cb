package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/mkaneko/rpg-character-api/internal/models"
	"gorm.io/gorm"
)

// defaultSkills is the initial skill catalog. Skills are read-only from the
// API's perspective, so seeding at startup is the only way entries appear.
var defaultSkills = []models.Skill{
	{Name: "Fireball", Damage: 30},
	{Name: "Frenzy", Damage: 20},
	{Name: "Blizzard", Damage: 35},
}

// SeedSkills inserts the default skill catalog, skipping names that already
// exist so repeated startups stay idempotent.
func SeedSkills(db *gorm.DB) error {
	for _, skill := range defaultSkills {
		var existing models.Skill
		err := db.Where("name = ?", skill.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check skill %q: %w", skill.Name, err)
		}

		if err := db.Create(&skill).Error; err != nil {
			return fmt.Errorf("failed to seed skill %q: %w", skill.Name, err)
		}
		log.Printf("Seeded skill %q (damage %d)", skill.Name, skill.Damage)
	}

	return nil
}
