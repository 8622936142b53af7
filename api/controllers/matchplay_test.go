package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	testutils "github.com/NickyGee44/TheGambler-sub000/api/controllers/testing"
	"github.com/NickyGee44/TheGambler-sub000/api/models"
	"github.com/NickyGee44/TheGambler-sub000/logging"
	"github.com/NickyGee44/TheGambler-sub000/scoring"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMatchPlayTestController(t *testing.T) (*testStores, *gin.Engine) {
	t.Helper()
	logging.Log = logrus.New()

	stores := newTestStores()
	engine := stores.newEngine()
	matchplay := NewMatchPlayController(engine)
	scores := NewScoreController(engine)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/matchplay/groups", matchplay.createGroup)
	r.GET("/api/matchplay/groups/:group", matchplay.getGroupMatches)
	r.GET("/api/matchplay/player/:playerId", matchplay.getPlayerMatches)
	r.GET("/api/matchplay/leaderboard", matchplay.getLeaderboard)
	r.POST("/api/scores", scores.recordScore)
	return stores, r
}

func TestCreateGroup(t *testing.T) {
	stores, router := setupMatchPlayTestController(t)
	stores.seedTeam(t, 1, map[string]int{"AAA11": 5, "AAA22": 8})
	stores.seedTeam(t, 2, map[string]int{"BBB11": 12, "BBB22": 20})

	t.Run("Happy path - six segment matches", func(t *testing.T) {
		payload := models.CreateGroupRequest{
			GroupNumber: 1,
			PlayerIDs:   []string{"AAA11", "AAA22", "BBB11", "BBB22"},
		}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/matchplay/groups", payload, nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var matches []models.MatchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matches))
		require.Len(t, matches, 6)

		segments := map[string]int{}
		for _, m := range matches {
			segments[m.HoleSegment]++
			if m.StrokesGiven > 0 {
				assert.NotEmpty(t, m.StrokeRecipientID)
				assert.NotEmpty(t, m.StrokeHoles)
			}
		}
		assert.Equal(t, map[string]int{"1-6": 2, "7-12": 2, "13-18": 2}, segments)
	})

	t.Run("Unhappy path - wrong group size", func(t *testing.T) {
		payload := models.CreateGroupRequest{GroupNumber: 2, PlayerIDs: []string{"AAA11", "AAA22"}}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/matchplay/groups", payload, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unhappy path - unknown player", func(t *testing.T) {
		payload := models.CreateGroupRequest{
			GroupNumber: 2,
			PlayerIDs:   []string{"AAA11", "AAA22", "BBB11", "NOONE"},
		}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/matchplay/groups", payload, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetGroupMatches(t *testing.T) {
	stores, router := setupMatchPlayTestController(t)
	stores.seedTeam(t, 1, map[string]int{"AAA11": 10, "AAA22": 10})
	stores.seedTeam(t, 2, map[string]int{"BBB11": 10, "BBB22": 10})

	payload := models.CreateGroupRequest{
		GroupNumber: 1,
		PlayerIDs:   []string{"AAA11", "AAA22", "BBB11", "BBB22"},
	}
	w := testutils.PerformRequest(router, http.MethodPost, "/api/matchplay/groups", payload, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// AAA11 takes the first two front-six holes off AAA22.
	for _, hole := range []int{1, 2} {
		for player, strokes := range map[string]int{"AAA11": 3, "AAA22": 5} {
			score := models.RecordScoreRequest{PlayerID: player, Round: 3, Hole: hole, Strokes: strokes}
			res := testutils.PerformRequest(router, http.MethodPost, "/api/scores", score, nil)
			require.Equal(t, http.StatusOK, res.Code)
		}
	}

	t.Run("Happy path - live results attached", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/matchplay/groups/1", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var matches []models.MatchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matches))
		require.Len(t, matches, 6)

		for _, m := range matches {
			require.NotNil(t, m.Live)
			if m.HoleSegment == scoring.SegmentFront && m.Player1ID == "AAA11" {
				assert.Equal(t, 2, m.Live.HolesPlayed)
				assert.Equal(t, 2, m.Live.CarryPoints1)
			}
		}
	})

	t.Run("Happy path - empty group", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/matchplay/groups/99", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var matches []models.MatchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matches))
		assert.Empty(t, matches)
	})

	t.Run("Unhappy path - bad group number", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/matchplay/groups/abc", nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetPlayerMatchesAndLeaderboard(t *testing.T) {
	stores, router := setupMatchPlayTestController(t)
	stores.seedTeam(t, 1, map[string]int{"AAA11": 10, "AAA22": 10})
	stores.seedTeam(t, 2, map[string]int{"BBB11": 10, "BBB22": 10})

	payload := models.CreateGroupRequest{
		GroupNumber: 1,
		PlayerIDs:   []string{"AAA11", "AAA22", "BBB11", "BBB22"},
	}
	w := testutils.PerformRequest(router, http.MethodPost, "/api/matchplay/groups", payload, nil)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("Happy path - player has three matches", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/matchplay/player/AAA11", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var matches []models.MatchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matches))
		assert.Len(t, matches, 3)
	})

	t.Run("Happy path - leaderboard covers all grouped players", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/matchplay/leaderboard", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var standings []scoring.PlayerMatchStanding
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &standings))
		require.Len(t, standings, 4)
		for _, s := range standings {
			// Nothing played yet: every match halves.
			assert.Equal(t, 6, s.SegmentPoints)
			assert.Equal(t, 1, s.Position)
		}
	})
}
