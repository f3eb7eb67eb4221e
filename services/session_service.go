package services

import (
	"errors"
	"time"

	"ezpt/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

type ParticipantRequest struct {
	PlayerID   uint            `json:"player_id" binding:"required"`
	Rebuys     int             `json:"rebuys" binding:"min=0"`
	ProfitLoss decimal.Decimal `json:"profit_loss"`
}

type CreateSessionRequest struct {
	Date         string               `json:"date" binding:"required"`
	GameTypeID   uint                 `json:"game_type_id" binding:"required"`
	MaxBuyIn     decimal.Decimal      `json:"max_buy_in" binding:"required"`
	EventID      *uint                `json:"event_id"`
	Notes        *string              `json:"notes"`
	Participants []ParticipantRequest `json:"participants" binding:"required,min=1,dive"`
}

type UpdateSessionRequest struct {
	Date         *string              `json:"date"`
	GameTypeID   *uint                `json:"game_type_id"`
	MaxBuyIn     *decimal.Decimal     `json:"max_buy_in"`
	EventID      *uint                `json:"event_id"`
	Notes        *string              `json:"notes"`
	Participants []ParticipantRequest `json:"participants" binding:"omitempty,min=1,dive"`
}

type SessionFilter struct {
	Year       *int
	GameTypeID *uint
	PlayerID   *uint
}

// parseDay parses a YYYY-MM-DD date as midnight UTC.
func parseDay(value string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, errors.New("date must be YYYY-MM-DD")
	}
	return day, nil
}

// validateZeroSum rejects participant sets whose profit/loss does not net
// to zero. A poker session only redistributes money; this is the one place
// the invariant is enforced, the stats engine never re-checks it.
func validateZeroSum(participants []ParticipantRequest) error {
	sum := decimal.Zero
	for _, p := range participants {
		sum = sum.Add(p.ProfitLoss)
	}
	if !sum.IsZero() {
		return errors.New("participant profit/loss must sum to zero")
	}
	return nil
}

func (s *SessionService) ListSessions(filter *SessionFilter) ([]models.Session, error) {
	q := s.db.Model(&models.Session{})

	if filter.Year != nil {
		start, end := yearBounds(*filter.Year)
		q = q.Where("sessions.date >= ? AND sessions.date < ?", start, end)
	}
	if filter.GameTypeID != nil {
		q = q.Where("sessions.game_type_id = ?", *filter.GameTypeID)
	}
	if filter.PlayerID != nil {
		q = q.Where("sessions.id IN (?)",
			s.db.Table("participants").Select("session_id").Where("player_id = ?", *filter.PlayerID))
	}

	var sessions []models.Session
	err := q.Preload("GameType").
		Preload("Event").
		Preload("Participants").
		Preload("Participants.Player").
		Order("sessions.date DESC").
		Find(&sessions).Error
	return sessions, err
}

func (s *SessionService) GetSessionByID(sessionID uint) (*models.Session, error) {
	var session models.Session
	err := s.db.Preload("GameType").
		Preload("Event").
		Preload("Participants").
		Preload("Participants.Player").
		First(&session, sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (s *SessionService) CreateSession(req *CreateSessionRequest) (*models.Session, error) {
	day, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}
	if err := validateZeroSum(req.Participants); err != nil {
		return nil, err
	}

	session := models.Session{
		Date:       day,
		GameTypeID: req.GameTypeID,
		MaxBuyIn:   req.MaxBuyIn,
		EventID:    req.EventID,
		Notes:      req.Notes,
	}
	for _, p := range req.Participants {
		session.Participants = append(session.Participants, models.Participant{
			PlayerID:   p.PlayerID,
			Rebuys:     p.Rebuys,
			ProfitLoss: p.ProfitLoss,
		})
	}

	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}

	return s.GetSessionByID(session.ID)
}

func (s *SessionService) UpdateSession(sessionID uint, req *UpdateSessionRequest) (*models.Session, error) {
	session, err := s.GetSessionByID(sessionID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		day, err := parseDay(*req.Date)
		if err != nil {
			return nil, err
		}
		session.Date = day
	}
	if req.GameTypeID != nil {
		session.GameTypeID = *req.GameTypeID
	}
	if req.MaxBuyIn != nil {
		session.MaxBuyIn = *req.MaxBuyIn
	}
	if req.EventID != nil {
		session.EventID = req.EventID
	}
	if req.Notes != nil {
		session.Notes = req.Notes
	}
	if req.Participants != nil {
		if err := validateZeroSum(req.Participants); err != nil {
			return nil, err
		}
	}

	// Participants are replaced wholesale when provided, in the same
	// transaction as the session row.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		session.Participants = nil
		if err := tx.Omit("Participants").Save(session).Error; err != nil {
			return err
		}

		if req.Participants != nil {
			if err := tx.Where("session_id = ?", sessionID).Delete(&models.Participant{}).Error; err != nil {
				return err
			}
			for _, p := range req.Participants {
				participant := models.Participant{
					SessionID:  sessionID,
					PlayerID:   p.PlayerID,
					Rebuys:     p.Rebuys,
					ProfitLoss: p.ProfitLoss,
				}
				if err := tx.Create(&participant).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetSessionByID(sessionID)
}

func (s *SessionService) DeleteSession(sessionID uint) error {
	if _, err := s.GetSessionByID(sessionID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&models.Participant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Session{}, sessionID).Error
	})
}
