package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkaneko/rpg-character-api/internal/dto"
	"github.com/mkaneko/rpg-character-api/internal/services"
	"github.com/mkaneko/rpg-character-api/internal/utils"
)

// SkillHandler serves the read-only skill catalog.
type SkillHandler struct {
	skillService *services.SkillService
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

// ListSkills returns a page of the skill catalog
func (h *SkillHandler) ListSkills(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	skills, total, err := h.skillService.List(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Fail[*dto.SkillCatalogDTO]("Failed to fetch skills"))
		return
	}

	catalog := dto.SkillCatalogDTO{
		Skills: dto.ToSkillDTOs(skills),
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
	c.JSON(http.StatusOK, dto.OK(&catalog))
}
