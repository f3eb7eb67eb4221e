package models

import (
	"time"
)

// Event groups sessions (a tournament weekend, a yearly finale). The
// start/end dates are descriptive; membership is the session's EventID.
type Event struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	StartDate   *time.Time `json:"start_date" gorm:"type:date"`
	EndDate     *time.Time `json:"end_date" gorm:"type:date"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relationships
	Sessions []Session `json:"sessions,omitempty" gorm:"foreignKey:EventID"`
}
