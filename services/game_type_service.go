package services

import (
	"errors"

	"ezpt/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GameTypeService struct {
	db *gorm.DB
}

func NewGameTypeService(db *gorm.DB) *GameTypeService {
	return &GameTypeService{db: db}
}

type CreateGameTypeRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=50"`
	DefaultBuyIn decimal.Decimal `json:"default_buy_in" binding:"required"`
}

type UpdateGameTypeRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=50"`
	DefaultBuyIn *decimal.Decimal `json:"default_buy_in"`
}

func (s *GameTypeService) ListGameTypes() ([]models.GameType, error) {
	var gameTypes []models.GameType
	err := s.db.Order("name ASC").Find(&gameTypes).Error
	return gameTypes, err
}

func (s *GameTypeService) CreateGameType(req *CreateGameTypeRequest) (*models.GameType, error) {
	var existing models.GameType
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, ErrGameTypeNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	gameType := models.GameType{
		Name:         req.Name,
		DefaultBuyIn: req.DefaultBuyIn,
	}
	if err := s.db.Create(&gameType).Error; err != nil {
		return nil, err
	}
	return &gameType, nil
}

func (s *GameTypeService) UpdateGameType(gameTypeID uint, req *UpdateGameTypeRequest) (*models.GameType, error) {
	var gameType models.GameType
	if err := s.db.First(&gameType, gameTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameTypeNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		gameType.Name = *req.Name
	}
	if req.DefaultBuyIn != nil {
		gameType.DefaultBuyIn = *req.DefaultBuyIn
	}

	if err := s.db.Save(&gameType).Error; err != nil {
		return nil, err
	}
	return &gameType, nil
}

// DeleteGameType refuses to remove a variant that recorded sessions still
// reference.
func (s *GameTypeService) DeleteGameType(gameTypeID uint) error {
	var gameType models.GameType
	if err := s.db.First(&gameType, gameTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameTypeNotFound
		}
		return err
	}

	var sessionCount int64
	if err := s.db.Model(&models.Session{}).Where("game_type_id = ?", gameTypeID).Count(&sessionCount).Error; err != nil {
		return err
	}
	if sessionCount > 0 {
		return ErrGameTypeInUse
	}

	return s.db.Delete(&models.GameType{}, gameTypeID).Error
}
