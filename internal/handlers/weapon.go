package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkaneko/rpg-character-api/internal/dto"
	"github.com/mkaneko/rpg-character-api/internal/middleware"
	"github.com/mkaneko/rpg-character-api/internal/services"
)

// WeaponHandler coordinates weapon-related HTTP handlers.
type WeaponHandler struct {
	weaponService *services.WeaponService
}

// NewWeaponHandler creates a new WeaponHandler
func NewWeaponHandler(weaponService *services.WeaponService) *WeaponHandler {
	return &WeaponHandler{
		weaponService: weaponService,
	}
}

// AddWeapon equips a weapon on a character owned by the current user and
// returns the updated character view
func (h *WeaponHandler) AddWeapon(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, dto.Fail[*dto.CharacterDTO]("Not authenticated"))
		return
	}

	type AddWeaponRequest struct {
		CharacterID uint64 `json:"character_id" binding:"required"`
		Name        string `json:"name" binding:"required"`
		Damage      int    `json:"damage" binding:"omitempty,gte=0"`
	}

	var req AddWeaponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail[*dto.CharacterDTO]("Invalid request body"))
		return
	}

	character, err := h.weaponService.Attach(userID, services.AttachWeaponInput{
		CharacterID: req.CharacterID,
		Name:        req.Name,
		Damage:      req.Damage,
	})
	if err != nil {
		if errors.Is(err, services.ErrCharacterNotFound) {
			c.JSON(http.StatusNotFound, dto.Fail[*dto.CharacterDTO]("Character not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Fail[*dto.CharacterDTO](err.Error()))
		return
	}

	view := dto.ToCharacterDTO(*character)
	c.JSON(http.StatusOK, dto.OK(&view))
}
