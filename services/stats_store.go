package services

import (
	"context"
	"errors"
	"time"

	"ezpt/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlayerRef is the identity slice of a player the stats engine needs.
type PlayerRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ParticipationRow is one player-session outcome joined with the session
// date and game type name, already scoped by whatever filter applied.
type ParticipationRow struct {
	SessionID    uint
	Date         time.Time
	GameTypeName string
	Rebuys       int
	ProfitLoss   decimal.Decimal
}

// LeaderboardRow is a ParticipationRow tagged with its player, as produced
// by the single batched leaderboard query.
type LeaderboardRow struct {
	PlayerID     uint
	SessionID    uint
	Date         time.Time
	GameTypeName string
	Rebuys       int
	ProfitLoss   decimal.Decimal
}

func (r LeaderboardRow) participation() ParticipationRow {
	return ParticipationRow{
		SessionID:    r.SessionID,
		Date:         r.Date,
		GameTypeName: r.GameTypeName,
		Rebuys:       r.Rebuys,
		ProfitLoss:   r.ProfitLoss,
	}
}

type EventInfo struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
}

type EventParticipantRow struct {
	PlayerID   uint
	PlayerName string
	Rebuys     int
	ProfitLoss decimal.Decimal
}

type EventSessionRows struct {
	SessionID    uint
	Participants []EventParticipantRow
}

type EventData struct {
	Event    EventInfo
	Sessions []EventSessionRows
}

// StatsStore is the read-only data access the stats engine depends on. The
// engine itself never touches the database; it reduces whatever snapshot
// the store hands it.
type StatsStore interface {
	GetPlayer(ctx context.Context, playerID uint) (*PlayerRef, error)
	ListParticipations(ctx context.Context, playerID uint, year *int) ([]ParticipationRow, error)
	// ListLeaderboardRows returns the full eligible roster plus all of its
	// participation rows in one batched query each, so building a
	// leaderboard never issues one query per player.
	ListLeaderboardRows(ctx context.Context, year *int, includeGuests bool) ([]PlayerRef, []LeaderboardRow, error)
	GetEventWithSessions(ctx context.Context, eventID uint) (*EventData, error)
}

type GormStatsStore struct {
	db *gorm.DB
}

func NewGormStatsStore(db *gorm.DB) *GormStatsStore {
	return &GormStatsStore{db: db}
}

// yearBounds returns the half-open UTC range [Jan 1 year, Jan 1 year+1).
func yearBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

func (s *GormStatsStore) GetPlayer(ctx context.Context, playerID uint) (*PlayerRef, error) {
	var player models.Player
	if err := s.db.WithContext(ctx).First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &PlayerRef{ID: player.ID, Name: player.Name}, nil
}

func (s *GormStatsStore) ListParticipations(ctx context.Context, playerID uint, year *int) ([]ParticipationRow, error) {
	q := s.db.WithContext(ctx).Table("participants").
		Select("participants.session_id, sessions.date, game_types.name AS game_type_name, participants.rebuys, participants.profit_loss").
		Joins("JOIN sessions ON sessions.id = participants.session_id").
		Joins("JOIN game_types ON game_types.id = sessions.game_type_id").
		Where("participants.player_id = ?", playerID)
	if year != nil {
		start, end := yearBounds(*year)
		q = q.Where("sessions.date >= ? AND sessions.date < ?", start, end)
	}

	var rows []ParticipationRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStatsStore) ListLeaderboardRows(ctx context.Context, year *int, includeGuests bool) ([]PlayerRef, []LeaderboardRow, error) {
	pq := s.db.WithContext(ctx).Model(&models.Player{}).
		Select("id, name").
		Where("is_active = ?", true)
	if !includeGuests {
		pq = pq.Where("is_guest = ?", false)
	}

	var players []PlayerRef
	if err := pq.Order("name ASC").Scan(&players).Error; err != nil {
		return nil, nil, err
	}

	q := s.db.WithContext(ctx).Table("participants").
		Select("participants.player_id, participants.session_id, sessions.date, game_types.name AS game_type_name, participants.rebuys, participants.profit_loss").
		Joins("JOIN sessions ON sessions.id = participants.session_id").
		Joins("JOIN game_types ON game_types.id = sessions.game_type_id").
		Joins("JOIN players ON players.id = participants.player_id").
		Where("players.is_active = ?", true)
	if !includeGuests {
		q = q.Where("players.is_guest = ?", false)
	}
	if year != nil {
		start, end := yearBounds(*year)
		q = q.Where("sessions.date >= ? AND sessions.date < ?", start, end)
	}

	var rows []LeaderboardRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, nil, err
	}
	return players, rows, nil
}

func (s *GormStatsStore) GetEventWithSessions(ctx context.Context, eventID uint) (*EventData, error) {
	var event models.Event
	err := s.db.WithContext(ctx).
		Preload("Sessions").
		Preload("Sessions.Participants").
		Preload("Sessions.Participants.Player").
		First(&event, eventID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	data := &EventData{
		Event: EventInfo{
			ID:          event.ID,
			Name:        event.Name,
			StartDate:   event.StartDate,
			EndDate:     event.EndDate,
			Description: event.Description,
		},
		Sessions: make([]EventSessionRows, 0, len(event.Sessions)),
	}
	for _, session := range event.Sessions {
		rows := EventSessionRows{
			SessionID:    session.ID,
			Participants: make([]EventParticipantRow, 0, len(session.Participants)),
		}
		for _, p := range session.Participants {
			rows.Participants = append(rows.Participants, EventParticipantRow{
				PlayerID:   p.PlayerID,
				PlayerName: p.Player.Name,
				Rebuys:     p.Rebuys,
				ProfitLoss: p.ProfitLoss,
			})
		}
		data.Sessions = append(data.Sessions, rows)
	}
	return data, nil
}
