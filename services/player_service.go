package services

import (
	"errors"

	"ezpt/models"

	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{db: db}
}

type CreatePlayerRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=50"`
	IsGuest bool   `json:"is_guest"`
}

type UpdatePlayerRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=50"`
	IsGuest  *bool   `json:"is_guest"`
	IsActive *bool   `json:"is_active"`
}

// ListPlayers returns active players by default; includeArchived adds the
// ones toggled off. Guests sort after regulars.
func (s *PlayerService) ListPlayers(includeArchived bool) ([]models.Player, error) {
	q := s.db.Model(&models.Player{})
	if !includeArchived {
		q = q.Where("is_active = ?", true)
	}

	var players []models.Player
	err := q.Order("is_guest ASC").Order("name ASC").Find(&players).Error
	return players, err
}

func (s *PlayerService) GetPlayerByID(playerID uint) (*models.Player, error) {
	var player models.Player
	if err := s.db.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (s *PlayerService) CreatePlayer(req *CreatePlayerRequest) (*models.Player, error) {
	var existing models.Player
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, ErrPlayerNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	player := models.Player{
		Name:     req.Name,
		IsGuest:  req.IsGuest,
		IsActive: true,
	}
	if err := s.db.Create(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// UpdatePlayer handles renames and flag toggles. Archiving (IsActive=false)
// is the only way to retire a player; rows are never hard-deleted because
// participation history references them.
func (s *PlayerService) UpdatePlayer(playerID uint, req *UpdatePlayerRequest) (*models.Player, error) {
	player, err := s.GetPlayerByID(playerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != player.Name {
		var existing models.Player
		if err := s.db.Where("name = ?", *req.Name).First(&existing).Error; err == nil {
			return nil, ErrPlayerNameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		player.Name = *req.Name
	}
	if req.IsGuest != nil {
		player.IsGuest = *req.IsGuest
	}
	if req.IsActive != nil {
		player.IsActive = *req.IsActive
	}

	if err := s.db.Save(player).Error; err != nil {
		return nil, err
	}
	return player, nil
}
