package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Participant is one player's outcome within one session. ProfitLoss is
// signed; the zero-sum check across a session happens at the service
// boundary, not here.
type Participant struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	SessionID  uint            `json:"session_id" gorm:"not null;uniqueIndex:idx_session_player"`
	PlayerID   uint            `json:"player_id" gorm:"not null;uniqueIndex:idx_session_player"`
	Rebuys     int             `json:"rebuys" gorm:"not null;default:0"`
	ProfitLoss decimal.Decimal `json:"profit_loss" gorm:"type:numeric(10,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// Relationships
	Session Session `json:"session,omitempty"`
	Player  Player  `json:"player,omitempty"`
}
