package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ezpt/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatsStore struct {
	players map[uint]services.PlayerRef
	rows    map[uint][]services.ParticipationRow
}

func (s *stubStatsStore) GetPlayer(_ context.Context, playerID uint) (*services.PlayerRef, error) {
	p, ok := s.players[playerID]
	if !ok {
		return nil, services.ErrPlayerNotFound
	}
	return &p, nil
}

func (s *stubStatsStore) ListParticipations(_ context.Context, playerID uint, year *int) ([]services.ParticipationRow, error) {
	var rows []services.ParticipationRow
	for _, r := range s.rows[playerID] {
		if year != nil && r.Date.UTC().Year() != *year {
			continue
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func (s *stubStatsStore) ListLeaderboardRows(_ context.Context, year *int, _ bool) ([]services.PlayerRef, []services.LeaderboardRow, error) {
	var players []services.PlayerRef
	var rows []services.LeaderboardRow
	for id, p := range s.players {
		players = append(players, p)
		for _, r := range s.rows[id] {
			if year != nil && r.Date.UTC().Year() != *year {
				continue
			}
			rows = append(rows, services.LeaderboardRow{
				PlayerID:     id,
				SessionID:    r.SessionID,
				Date:         r.Date,
				GameTypeName: r.GameTypeName,
				Rebuys:       r.Rebuys,
				ProfitLoss:   r.ProfitLoss,
			})
		}
	}
	return players, rows, nil
}

func (s *stubStatsStore) GetEventWithSessions(context.Context, uint) (*services.EventData, error) {
	return nil, services.ErrEventNotFound
}

func newStatsRouter(store services.StatsStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewStatsHandler(services.NewStatsService(store))
	router.GET("/api/stats", h.GetLeaderboard)
	router.GET("/api/stats/:playerId", h.GetPlayerStats)
	return router
}

func testStore() *stubStatsStore {
	return &stubStatsStore{
		players: map[uint]services.PlayerRef{
			1: {ID: 1, Name: "ALEX"},
			2: {ID: 2, Name: "RICO"},
		},
		rows: map[uint][]services.ParticipationRow{
			1: {
				{SessionID: 1, Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), GameTypeName: "Texas", Rebuys: 1, ProfitLoss: decimal.NewFromInt(50)},
				{SessionID: 2, Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), GameTypeName: "PLO", Rebuys: 0, ProfitLoss: decimal.NewFromInt(-10)},
			},
			2: {
				{SessionID: 1, Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), GameTypeName: "Texas", Rebuys: 0, ProfitLoss: decimal.NewFromInt(-50)},
			},
		},
	}
}

func TestGetLeaderboard(t *testing.T) {
	router := newStatsRouter(testStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var stats []services.PlayerStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Len(t, stats, 2)
	assert.Equal(t, "ALEX", stats[0].PlayerName)
	assert.True(t, stats[0].TotalPnl.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, "RICO", stats[1].PlayerName)
}

func TestGetLeaderboardYearFilter(t *testing.T) {
	router := newStatsRouter(testStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats?year=2024", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var stats []services.PlayerStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Len(t, stats, 2)
	// Only ALEX played in 2024; RICO still appears with a zero rollup.
	for _, s := range stats {
		if s.PlayerName == "ALEX" {
			assert.Equal(t, 1, s.TotalSessions)
			assert.True(t, s.TotalPnl.Equal(decimal.NewFromInt(-10)))
		} else {
			assert.Equal(t, 0, s.TotalSessions)
		}
	}
}

func TestGetLeaderboardIgnoresBadYear(t *testing.T) {
	router := newStatsRouter(testStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats?year=banana", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var stats []services.PlayerStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	// Bad year falls back to all history.
	for _, s := range stats {
		if s.PlayerName == "ALEX" {
			assert.Equal(t, 2, s.TotalSessions)
		}
	}
}

func TestGetPlayerStats(t *testing.T) {
	router := newStatsRouter(testStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/1?year=2025", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var stats services.PlayerStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, uint(1), stats.PlayerID)
	assert.Equal(t, 1, stats.TotalSessions)
	assert.True(t, stats.TotalPnl.Equal(decimal.NewFromInt(50)))
	require.NotNil(t, stats.BestSession)
	assert.Equal(t, "2025-03-01", stats.BestSession.Date)
}

func TestGetPlayerStatsNotFound(t *testing.T) {
	router := newStatsRouter(testStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPlayerStatsBadID(t *testing.T) {
	router := newStatsRouter(testStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
