package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Session is one recorded game night. Date carries day resolution only
// (stored as a DATE column, midnight UTC in memory).
type Session struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Date       time.Time       `json:"date" gorm:"type:date;not null;index"`
	GameTypeID uint            `json:"game_type_id" gorm:"not null"`
	MaxBuyIn   decimal.Decimal `json:"max_buy_in" gorm:"type:numeric(10,2);not null"`
	EventID    *uint           `json:"event_id"`
	Notes      *string         `json:"notes"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// Relationships
	GameType     GameType      `json:"game_type,omitempty"`
	Event        *Event        `json:"event,omitempty"`
	Participants []Participant `json:"participants,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}
