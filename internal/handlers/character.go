package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mkaneko/rpg-character-api/internal/dto"
	"github.com/mkaneko/rpg-character-api/internal/middleware"
	"github.com/mkaneko/rpg-character-api/internal/models"
	"github.com/mkaneko/rpg-character-api/internal/services"
)

// CharacterHandler coordinates character-related HTTP handlers. Every
// response body is a dto.Response envelope; business failures carry
// success=false and a message while data stays absent.
type CharacterHandler struct {
	characterService *services.CharacterService
}

// NewCharacterHandler creates a new CharacterHandler
func NewCharacterHandler(characterService *services.CharacterService) *CharacterHandler {
	return &CharacterHandler{
		characterService: characterService,
	}
}

// respondCharacterFailure maps a service error to the envelope, converting
// unexpected faults into the same shape so callers see one uniform contract.
func respondCharacterFailure[T any](c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCharacterNotFound):
		c.JSON(http.StatusNotFound, dto.Fail[T]("Character not found"))
	case errors.Is(err, services.ErrSkillNotFound):
		c.JSON(http.StatusNotFound, dto.Fail[T]("Skill not found."))
	case errors.Is(err, services.ErrSkillAlreadyKnown):
		c.JSON(http.StatusConflict, dto.Fail[T]("Skill already attached"))
	default:
		c.JSON(http.StatusInternalServerError, dto.Fail[T](err.Error()))
	}
}

// CreateCharacter creates a character owned by the current user and returns
// the user's full updated character list
func (h *CharacterHandler) CreateCharacter(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, dto.Fail[[]dto.CharacterDTO]("Not authenticated"))
		return
	}

	// Stat fields are pointers so an explicit zero survives while an
	// omitted field takes the service default.
	type CreateCharacterRequest struct {
		Name         string                `json:"name" binding:"required"`
		HitPoints    *int                  `json:"hit_points" binding:"omitempty,gte=0"`
		Strength     *int                  `json:"strength"`
		Intelligence *int                  `json:"intelligence"`
		Class        models.CharacterClass `json:"class" binding:"omitempty,oneof=Warrior Knight Mage Cleric"`
	}

	var req CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail[[]dto.CharacterDTO]("Invalid request body"))
		return
	}

	characters, err := h.characterService.Create(userID, services.CreateCharacterInput{
		Name:         req.Name,
		HitPoints:    req.HitPoints,
		Strength:     req.Strength,
		Intelligence: req.Intelligence,
		Class:        req.Class,
	})
	if err != nil {
		respondCharacterFailure[[]dto.CharacterDTO](c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToCharacterDTOs(characters)))
}

// ListCharacters returns all characters owned by the current user
func (h *CharacterHandler) ListCharacters(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, dto.Fail[[]dto.CharacterDTO]("Not authenticated"))
		return
	}

	characters, err := h.characterService.List(userID)
	if err != nil {
		respondCharacterFailure[[]dto.CharacterDTO](c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToCharacterDTOs(characters)))
}

// GetCharacter returns one character, owner-scoped
func (h *CharacterHandler) GetCharacter(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, dto.Fail[*dto.CharacterDTO]("Not authenticated"))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail[*dto.CharacterDTO]("Invalid character ID"))
		return
	}

	character, err := h.characterService.Get(userID, id)
	if err != nil {
		respondCharacterFailure[*dto.CharacterDTO](c, err)
		return
	}

	view := dto.ToCharacterDTO(*character)
	c.JSON(http.StatusOK, dto.OK(&view))
}

// UpdateCharacter updates the mutable fields of an owned character. The
// target id travels in the body, matching the create/attach inputs.
func (h *CharacterHandler) UpdateCharacter(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, dto.Fail[*dto.CharacterDTO]("Not authenticated"))
		return
	}

	type UpdateCharacterRequest struct {
		ID           uint64                `json:"id" binding:"required"`
		Name         string                `json:"name" binding:"required"`
		HitPoints    int                   `json:"hit_points" binding:"omitempty,gte=0"`
		Strength     int                   `json:"strength"`
		Intelligence int                   `json:"intelligence"`
		Class        models.CharacterClass `json:"class" binding:"required,oneof=Warrior Knight Mage Cleric"`
	}

	var req UpdateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail[*dto.CharacterDTO]("Invalid request body"))
		return
	}

	character, err := h.characterService.Update(userID, services.UpdateCharacterInput{
		ID:           req.ID,
		Name:         req.Name,
		HitPoints:    req.HitPoints,
		Strength:     req.Strength,
		Intelligence: req.Intelligence,
		Class:        req.Class,
	})
	if err != nil {
		respondCharacterFailure[*dto.CharacterDTO](c, err)
		return
	}

	view := dto.ToCharacterDTO(*character)
	c.JSON(http.StatusOK, dto.OK(&view))
}

// DeleteCharacter removes an owned character and returns the remaining list
func (h *CharacterHandler) DeleteCharacter(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, dto.Fail[[]dto.CharacterDTO]("Not authenticated"))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail[[]dto.CharacterDTO]("Invalid character ID"))
		return
	}

	characters, err := h.characterService.Delete(userID, id)
	if err != nil {
		respondCharacterFailure[[]dto.CharacterDTO](c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToCharacterDTOs(characters)))
}

// AttachSkill links a catalog skill to an owned character
func (h *CharacterHandler) AttachSkill(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, dto.Fail[*dto.CharacterDTO]("Not authenticated"))
		return
	}

	type AttachSkillRequest struct {
		CharacterID uint64 `json:"character_id" binding:"required"`
		SkillID     uint64 `json:"skill_id" binding:"required"`
	}

	var req AttachSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail[*dto.CharacterDTO]("Invalid request body"))
		return
	}

	character, err := h.characterService.AttachSkill(userID, services.AttachSkillInput{
		CharacterID: req.CharacterID,
		SkillID:     req.SkillID,
	})
	if err != nil {
		respondCharacterFailure[*dto.CharacterDTO](c, err)
		return
	}

	view := dto.ToCharacterDTO(*character)
	c.JSON(http.StatusOK, dto.OK(&view))
}
