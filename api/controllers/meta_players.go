package controllers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/NickyGee44/TheGambler-sub000/api/models"
	"github.com/NickyGee44/TheGambler-sub000/api/transport"
	"github.com/NickyGee44/TheGambler-sub000/logging"
	"github.com/NickyGee44/TheGambler-sub000/scoring"
	"github.com/NickyGee44/TheGambler-sub000/storage"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type PlayerMetaController struct {
	storage storage.PlayerStorage
}

func NewPlayerMetaController(s storage.PlayerStorage) *PlayerMetaController {
	return &PlayerMetaController{storage: s}
}

func (c *PlayerMetaController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/meta/players")

	group.GET("", c.getAll)
	group.GET("/:id", c.get)
	group.POST("", transport.AdminAuthMiddleware(), c.create)
	group.PUT("/:id", transport.AdminAuthMiddleware(), c.update)
	group.DELETE("/:id", transport.AdminAuthMiddleware(), c.delete)
}

// @Summary Get all players
// @Tags Meta/Players
// @Produce json
// @Success 200 {array} models.PlayerResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/players [get]
func (c *PlayerMetaController) getAll(g *gin.Context) {
	players, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("PLAYER: failed to get all players: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	// Sort this so it shows the same for everyone
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Name < players[j].Name
	})

	responses := make([]models.PlayerResponse, 0, len(players))
	for _, player := range players {
		responses = append(responses, models.TransformPlayerFromStorage(player))
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Get a player by ID
// @Tags Meta/Players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} models.PlayerResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/players/{id} [get]
func (c *PlayerMetaController) get(g *gin.Context) {
	id := g.Param("id")

	player, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "player not found"})
			return
		}
		logging.Log.Errorf("PLAYER: failed to get player %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, models.TransformPlayerFromStorage(player))
}

// @Security AdminToken
// @Summary Create a new player
// @Description Generates a short player ID; players without a declared handicap get the tournament default
// @Tags Meta/Players
// @Accept json
// @Produce json
// @Param player body models.PlayerCreateRequest true "Player"
// @Success 201 {object} models.PlayerResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/players [post]
func (c *PlayerMetaController) create(g *gin.Context) {
	var req models.PlayerCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}

	handicap := scoring.DefaultHandicap
	if req.Handicap != nil {
		if *req.Handicap < 0 || *req.Handicap > 54 {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "handicap must be between 0 and 54"})
			return
		}
		handicap = *req.Handicap
	}

	player := &storage.Player{
		ID:        c.generatePlayerID(),
		Name:      req.Name,
		Handicap:  handicap,
		TeamID:    req.TeamID,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.storage.Create(g.Request.Context(), player); err != nil {
		logging.Log.Errorf("PLAYER: failed to create player: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	logging.Log.Infof("PLAYER: created player %s (%s) handicap %d", player.ID, player.Name, player.Handicap)
	g.JSON(http.StatusCreated, models.TransformPlayerFromStorage(player))
}

// @Security AdminToken
// @Summary Update a player
// @Description Handicap edits take effect on the next score computation, not retroactively on stored rows
// @Tags Meta/Players
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param player body models.PlayerUpdateRequest true "Player"
// @Success 200 {object} models.PlayerResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/players/{id} [put]
func (c *PlayerMetaController) update(g *gin.Context) {
	id := g.Param("id")

	existing, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "player not found"})
			return
		}
		logging.Log.Errorf("PLAYER: failed to get player %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.PlayerUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Handicap != nil {
		if *req.Handicap < 0 || *req.Handicap > 54 {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "handicap must be between 0 and 54"})
			return
		}
		existing.Handicap = *req.Handicap
	}
	if req.TeamID != nil {
		existing.TeamID = *req.TeamID
	}

	if err := c.storage.Update(g.Request.Context(), existing); err != nil {
		logging.Log.Errorf("PLAYER: failed to update player %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	logging.Log.Infof("PLAYER: updated player %s handicap %d", existing.ID, existing.Handicap)
	g.JSON(http.StatusOK, models.TransformPlayerFromStorage(existing))
}

// @Security AdminToken
// @Summary Delete a player
// @Tags Meta/Players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/players/{id} [delete]
func (c *PlayerMetaController) delete(g *gin.Context) {
	id := g.Param("id")

	if err := c.storage.Delete(g.Request.Context(), id); err != nil {
		logging.Log.Errorf("PLAYER: failed to delete player %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (c *PlayerMetaController) generatePlayerID() string {
	id, err := gonanoid.Generate(models.Alphabet, 5)
	if err != nil {
		logging.Log.Errorf("PLAYER: failed to generate id: %v", err)
		return "ERROR"
	}
	return id
}
