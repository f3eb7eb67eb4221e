package services

import (
	"ezpt/models"

	"gorm.io/gorm"
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

type CreateEventRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description"`
}

type EventSummary struct {
	models.Event
	SessionCount int64 `json:"session_count"`
}

func (s *EventService) ListEvents() ([]EventSummary, error) {
	var events []models.Event
	if err := s.db.Order("start_date DESC").Find(&events).Error; err != nil {
		return nil, err
	}

	type countRow struct {
		EventID uint
		N       int64
	}
	var counts []countRow
	err := s.db.Table("sessions").
		Select("event_id, COUNT(*) AS n").
		Where("event_id IS NOT NULL").
		Group("event_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	countByEvent := make(map[uint]int64, len(counts))
	for _, c := range counts {
		countByEvent[c.EventID] = c.N
	}

	summaries := make([]EventSummary, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, EventSummary{
			Event:        event,
			SessionCount: countByEvent[event.ID],
		})
	}
	return summaries, nil
}

func (s *EventService) CreateEvent(req *CreateEventRequest) (*models.Event, error) {
	event := models.Event{
		Name:        req.Name,
		Description: req.Description,
	}

	if req.StartDate != nil && *req.StartDate != "" {
		day, err := parseDay(*req.StartDate)
		if err != nil {
			return nil, err
		}
		event.StartDate = &day
	}
	if req.EndDate != nil && *req.EndDate != "" {
		day, err := parseDay(*req.EndDate)
		if err != nil {
			return nil, err
		}
		event.EndDate = &day
	}

	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}
