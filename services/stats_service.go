package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
)

// StatsService derives per-player and per-event rollups from raw
// participation records. It is read-only and holds no state beyond its
// store; identical inputs always produce identical output.
type StatsService struct {
	store StatsStore
}

func NewStatsService(store StatsStore) *StatsService {
	return &StatsService{store: store}
}

type SessionRef struct {
	SessionID uint            `json:"session_id"`
	Date      string          `json:"date"`
	Pnl       decimal.Decimal `json:"pnl"`
}

type PlayerStats struct {
	PlayerID            uint                       `json:"player_id"`
	PlayerName          string                     `json:"player_name"`
	TotalPnl            decimal.Decimal            `json:"total_pnl"`
	TotalSessions       int                        `json:"total_sessions"`
	TotalRebuys         int                        `json:"total_rebuys"`
	AvgRebuysPerSession decimal.Decimal            `json:"avg_rebuys_per_session"`
	AvgPnlPerSession    decimal.Decimal            `json:"avg_pnl_per_session"`
	BestSession         *SessionRef                `json:"best_session"`
	WorstSession        *SessionRef                `json:"worst_session"`
	PnlByGameType       map[string]decimal.Decimal `json:"pnl_by_game_type"`
}

type EventPlayerTotal struct {
	PlayerID uint            `json:"player_id"`
	Name     string          `json:"name"`
	Pnl      decimal.Decimal `json:"pnl"`
	Sessions int             `json:"sessions"`
	Rebuys   int             `json:"rebuys"`
}

type EventStats struct {
	Event         EventInfo          `json:"event"`
	TotalSessions int                `json:"total_sessions"`
	PlayerStats   []EventPlayerTotal `json:"player_stats"`
}

// GetPlayerStats rolls up one player's sessions, optionally limited to a
// calendar year. A player with no qualifying sessions gets a zero-valued
// result, not an error.
func (s *StatsService) GetPlayerStats(ctx context.Context, playerID uint, year *int) (*PlayerStats, error) {
	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.ListParticipations(ctx, playerID, year)
	if err != nil {
		return nil, err
	}

	stats := rollupPlayer(*player, rows)
	return &stats, nil
}

// GetLeaderboard rolls up every eligible player (active, guests only when
// asked for) and orders the result by total P&L, highest first. Players
// with zero qualifying sessions stay in the list so the roster is complete.
func (s *StatsService) GetLeaderboard(ctx context.Context, year *int, includeGuests bool) ([]PlayerStats, error) {
	players, rows, err := s.store.ListLeaderboardRows(ctx, year, includeGuests)
	if err != nil {
		return nil, err
	}

	byPlayer := make(map[uint][]ParticipationRow, len(players))
	for _, r := range rows {
		byPlayer[r.PlayerID] = append(byPlayer[r.PlayerID], r.participation())
	}

	stats := make([]PlayerStats, 0, len(players))
	for _, p := range players {
		stats = append(stats, rollupPlayer(p, byPlayer[p.ID]))
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalPnl.GreaterThan(stats[j].TotalPnl)
	})
	return stats, nil
}

// GetEventStats aggregates per-player totals across every session that
// belongs to the event. An unknown event id is ErrEventNotFound; a known
// event with no sessions is a valid, empty result.
func (s *StatsService) GetEventStats(ctx context.Context, eventID uint) (*EventStats, error) {
	data, err := s.store.GetEventWithSessions(ctx, eventID)
	if err != nil {
		return nil, err
	}

	totals := make(map[uint]*EventPlayerTotal)
	for _, session := range data.Sessions {
		for _, p := range session.Participants {
			t, ok := totals[p.PlayerID]
			if !ok {
				t = &EventPlayerTotal{PlayerID: p.PlayerID, Name: p.PlayerName}
				totals[p.PlayerID] = t
			}
			t.Pnl = t.Pnl.Add(p.ProfitLoss)
			t.Sessions++
			t.Rebuys += p.Rebuys
		}
	}

	playerStats := make([]EventPlayerTotal, 0, len(totals))
	for _, t := range totals {
		playerStats = append(playerStats, *t)
	}
	sort.SliceStable(playerStats, func(i, j int) bool {
		return playerStats[i].Pnl.GreaterThan(playerStats[j].Pnl)
	})

	return &EventStats{
		Event:         data.Event,
		TotalSessions: len(data.Sessions),
		PlayerStats:   playerStats,
	}, nil
}

// rollupPlayer reduces already-scoped participation rows in a single pass.
// Best and worst session keep the first row encountered on an exact P&L
// tie. Averages are defined as zero for an empty input.
func rollupPlayer(player PlayerRef, rows []ParticipationRow) PlayerStats {
	stats := PlayerStats{
		PlayerID:      player.ID,
		PlayerName:    player.Name,
		PnlByGameType: map[string]decimal.Decimal{},
	}
	if len(rows) == 0 {
		return stats
	}

	totalPnl := decimal.Zero
	totalRebuys := 0
	var best, worst *SessionRef

	for _, r := range rows {
		totalPnl = totalPnl.Add(r.ProfitLoss)
		totalRebuys += r.Rebuys
		stats.PnlByGameType[r.GameTypeName] = stats.PnlByGameType[r.GameTypeName].Add(r.ProfitLoss)

		ref := SessionRef{
			SessionID: r.SessionID,
			Date:      r.Date.UTC().Format("2006-01-02"),
			Pnl:       r.ProfitLoss,
		}
		if best == nil || r.ProfitLoss.GreaterThan(best.Pnl) {
			b := ref
			best = &b
		}
		if worst == nil || r.ProfitLoss.LessThan(worst.Pnl) {
			w := ref
			worst = &w
		}
	}

	sessionCount := decimal.NewFromInt(int64(len(rows)))
	stats.TotalPnl = totalPnl
	stats.TotalSessions = len(rows)
	stats.TotalRebuys = totalRebuys
	stats.AvgPnlPerSession = totalPnl.Div(sessionCount)
	stats.AvgRebuysPerSession = decimal.NewFromInt(int64(totalRebuys)).Div(sessionCount)
	stats.BestSession = best
	stats.WorstSession = worst
	return stats
}
