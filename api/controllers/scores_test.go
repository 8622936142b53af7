package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	testutils "github.com/NickyGee44/TheGambler-sub000/api/controllers/testing"
	"github.com/NickyGee44/TheGambler-sub000/api/models"
	"github.com/NickyGee44/TheGambler-sub000/cache"
	"github.com/NickyGee44/TheGambler-sub000/logging"
	"github.com/NickyGee44/TheGambler-sub000/scoring"
	"github.com/NickyGee44/TheGambler-sub000/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStores struct {
	players *storage.MemoryPlayerStorage
	teams   *storage.MemoryTeamStorage
	scores  *storage.MemoryHoleScoreStorage
	matches *storage.MemoryMatchStorage
}

func newTestStores() *testStores {
	return &testStores{
		players: storage.NewMemoryPlayerStorage(),
		teams:   storage.NewMemoryTeamStorage(),
		scores:  storage.NewMemoryHoleScoreStorage(),
		matches: storage.NewMemoryMatchStorage(),
	}
}

func (s *testStores) newEngine() *scoring.Engine {
	return scoring.NewEngine(s.players, s.teams, s.scores, s.matches, cache.NewMemoryCache(0))
}

// seedTeam creates a team and its players directly in storage.
func (s *testStores) seedTeam(t *testing.T, teamID int, handicaps map[string]int) {
	t.Helper()
	ctx := context.Background()

	members := make([]storage.TeamMember, 0, len(handicaps))
	for id, h := range handicaps {
		require.NoError(t, s.players.Create(ctx, &storage.Player{
			ID: id, Name: "Player " + id, Handicap: h, TeamID: teamID,
		}))
		members = append(members, storage.TeamMember{PlayerID: id, Name: "Player " + id})
	}
	require.NoError(t, s.teams.Create(ctx, &storage.Team{
		ID: teamID, TeamNumber: teamID, Name: "Team " + string(rune('0'+teamID)),
		Members: members, IsThreePersonTeam: len(handicaps) == 3,
	}))
}

func setupScoreTestController(t *testing.T) (*testStores, *gin.Engine) {
	t.Helper()
	logging.Log = logrus.New()

	stores := newTestStores()
	controller := NewScoreController(stores.newEngine())
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/scores", controller.recordScore)
	r.GET("/api/scores/:playerId/:round", controller.getScorecard)
	return stores, r
}

func TestRecordScore(t *testing.T) {
	stores, router := setupScoreTestController(t)
	stores.seedTeam(t, 1, map[string]int{"AAA11": 10, "BBB22": 0})

	t.Run("Happy path - record a score", func(t *testing.T) {
		// North hole 4 is stroke index 1: the 10-handicapper nets par.
		payload := models.RecordScoreRequest{PlayerID: "AAA11", Round: 1, Hole: 4, Strokes: 5}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/scores", payload, nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var res models.HoleScoreResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 4, res.NetScore)
		assert.Equal(t, 2, res.Points)
		assert.Equal(t, 1, res.TeamID)
	})

	t.Run("Happy path - edit replaces the hole", func(t *testing.T) {
		payload := models.RecordScoreRequest{PlayerID: "AAA11", Round: 1, Hole: 4, Strokes: 6}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/scores", payload, nil)
		require.Equal(t, http.StatusOK, w.Code)

		card := testutils.PerformRequest(router, http.MethodGet, "/api/scores/AAA11/1", nil, nil)
		require.Equal(t, http.StatusOK, card.Code)
		var res models.ScorecardResponse
		require.NoError(t, json.Unmarshal(card.Body.Bytes(), &res))
		require.Len(t, res.Holes, 1)
		assert.Equal(t, 6, res.Holes[0].Strokes)
	})

	t.Run("Unhappy path - strokes out of range", func(t *testing.T) {
		payload := models.RecordScoreRequest{PlayerID: "AAA11", Round: 1, Hole: 1, Strokes: 16}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/scores", payload, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unhappy path - bad round and hole", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodPost, "/api/scores",
			models.RecordScoreRequest{PlayerID: "AAA11", Round: 4, Hole: 1, Strokes: 4}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = testutils.PerformRequest(router, http.MethodPost, "/api/scores",
			models.RecordScoreRequest{PlayerID: "AAA11", Round: 1, Hole: 19, Strokes: 4}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unhappy path - unknown player", func(t *testing.T) {
		payload := models.RecordScoreRequest{PlayerID: "NOONE", Round: 1, Hole: 1, Strokes: 4}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/scores", payload, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Unhappy path - missing body fields", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodPost, "/api/scores", map[string]any{"playerId": "AAA11"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetScorecard(t *testing.T) {
	stores, router := setupScoreTestController(t)
	stores.seedTeam(t, 1, map[string]int{"AAA11": 10, "BBB22": 0})

	for _, hole := range []int{3, 1, 2} {
		payload := models.RecordScoreRequest{PlayerID: "AAA11", Round: 1, Hole: hole, Strokes: 4}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/scores", payload, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	t.Run("Happy path - holes come back in order", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/scores/AAA11/1", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res models.ScorecardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res.Holes, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{res.Holes[0].Hole, res.Holes[1].Hole, res.Holes[2].Hole})
	})

	t.Run("Happy path - empty card for a round not started", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/scores/AAA11/2", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res models.ScorecardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Empty(t, res.Holes)
	})

	t.Run("Unhappy path - invalid round", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/scores/AAA11/9", nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
