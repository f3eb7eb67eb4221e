package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type GameType struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Name         string          `json:"name" gorm:"uniqueIndex;not null"`
	DefaultBuyIn decimal.Decimal `json:"default_buy_in" gorm:"type:numeric(10,2);not null"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// Relationships
	Sessions []Session `json:"sessions,omitempty" gorm:"foreignKey:GameTypeID"`
}
