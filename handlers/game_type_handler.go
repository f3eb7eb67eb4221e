package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ezpt/services"

	"github.com/gin-gonic/gin"
)

type GameTypeHandler struct {
	gameTypeService *services.GameTypeService
}

func NewGameTypeHandler(gameTypeService *services.GameTypeService) *GameTypeHandler {
	return &GameTypeHandler{
		gameTypeService: gameTypeService,
	}
}

func (h *GameTypeHandler) ListGameTypes(c *gin.Context) {
	gameTypes, err := h.gameTypeService.ListGameTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gameTypes)
}

func (h *GameTypeHandler) CreateGameType(c *gin.Context) {
	var req services.CreateGameTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gameType, err := h.gameTypeService.CreateGameType(&req)
	if err != nil {
		if errors.Is(err, services.ErrGameTypeNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Game type name already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gameType)
}

func (h *GameTypeHandler) UpdateGameType(c *gin.Context) {
	gameTypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game type ID"})
		return
	}

	var req services.UpdateGameTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gameType, err := h.gameTypeService.UpdateGameType(uint(gameTypeID), &req)
	if err != nil {
		if errors.Is(err, services.ErrGameTypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game type not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gameType)
}

func (h *GameTypeHandler) DeleteGameType(c *gin.Context) {
	gameTypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game type ID"})
		return
	}

	err = h.gameTypeService.DeleteGameType(uint(gameTypeID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGameTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Game type not found"})
		case errors.Is(err, services.ErrGameTypeInUse):
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete: game type is used by existing sessions"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
