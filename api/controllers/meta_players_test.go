package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	testutils "github.com/NickyGee44/TheGambler-sub000/api/controllers/testing"
	"github.com/NickyGee44/TheGambler-sub000/api/models"
	"github.com/NickyGee44/TheGambler-sub000/logging"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPlayerTestController(t *testing.T) (*testStores, *gin.Engine) {
	t.Helper()
	logging.Log = logrus.New()

	stores := newTestStores()
	controller := NewPlayerMetaController(stores.players)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/meta/players", controller.getAll)
	r.GET("/api/meta/players/:id", controller.get)
	r.POST("/api/meta/players", controller.create)
	r.PUT("/api/meta/players/:id", controller.update)
	r.DELETE("/api/meta/players/:id", controller.delete)
	return stores, r
}

func intPtr(v int) *int { return &v }

func TestCreatePlayer(t *testing.T) {
	_, router := setupPlayerTestController(t)

	t.Run("Happy path - create with declared handicap", func(t *testing.T) {
		payload := models.PlayerCreateRequest{Name: "Nick", Handicap: intPtr(12), TeamID: 1}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/meta/players", payload, nil)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var res models.PlayerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Len(t, res.ID, 5, "short generated id")
		assert.Equal(t, 12, res.Handicap)
		assert.Equal(t, 1, res.TeamID)
	})

	t.Run("Happy path - missing handicap falls back to the default", func(t *testing.T) {
		payload := models.PlayerCreateRequest{Name: "Sandbagger"}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/meta/players", payload, nil)

		require.Equal(t, http.StatusCreated, w.Code)
		var res models.PlayerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 20, res.Handicap)
	})

	t.Run("Unhappy path - missing name", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodPost, "/api/meta/players", models.PlayerCreateRequest{}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unhappy path - handicap out of range", func(t *testing.T) {
		payload := models.PlayerCreateRequest{Name: "Wild", Handicap: intPtr(60)}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/meta/players", payload, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetAndListPlayers(t *testing.T) {
	_, router := setupPlayerTestController(t)

	var created []models.PlayerResponse
	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		payload := models.PlayerCreateRequest{Name: name, Handicap: intPtr(10)}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/meta/players", payload, nil)
		require.Equal(t, http.StatusCreated, w.Code)
		var res models.PlayerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		created = append(created, res)
	}

	t.Run("Happy path - list sorted by name", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/meta/players", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var players []models.PlayerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &players))
		require.Len(t, players, 3)
		assert.Equal(t, []string{"Alice", "Bob", "Charlie"},
			[]string{players[0].Name, players[1].Name, players[2].Name})
	})

	t.Run("Happy path - get by id", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/meta/players/"+created[0].ID, nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res models.PlayerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "Charlie", res.Name)
	})

	t.Run("Unhappy path - not found", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/meta/players/ZZZZZ", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateAndDeletePlayer(t *testing.T) {
	_, router := setupPlayerTestController(t)

	payload := models.PlayerCreateRequest{Name: "Nick", Handicap: intPtr(12), TeamID: 1}
	w := testutils.PerformRequest(router, http.MethodPost, "/api/meta/players", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.PlayerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	t.Run("Happy path - change handicap only", func(t *testing.T) {
		update := models.PlayerUpdateRequest{Handicap: intPtr(15)}
		w := testutils.PerformRequest(router, http.MethodPut, "/api/meta/players/"+created.ID, update, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res models.PlayerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 15, res.Handicap)
		assert.Equal(t, "Nick", res.Name, "unset fields keep their values")
		assert.Equal(t, 1, res.TeamID)
	})

	t.Run("Unhappy path - handicap out of range", func(t *testing.T) {
		update := models.PlayerUpdateRequest{Handicap: intPtr(-1)}
		w := testutils.PerformRequest(router, http.MethodPut, "/api/meta/players/"+created.ID, update, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unhappy path - unknown player", func(t *testing.T) {
		update := models.PlayerUpdateRequest{Handicap: intPtr(10)}
		w := testutils.PerformRequest(router, http.MethodPut, "/api/meta/players/ZZZZZ", update, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Happy path - delete", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodDelete, "/api/meta/players/"+created.ID, nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		res := testutils.PerformRequest(router, http.MethodGet, "/api/meta/players/"+created.ID, nil, nil)
		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}
