package controllers

import (
	"net/http"
	"strconv"

	"github.com/NickyGee44/TheGambler-sub000/api/models"
	"github.com/NickyGee44/TheGambler-sub000/api/transport"
	"github.com/NickyGee44/TheGambler-sub000/logging"
	"github.com/NickyGee44/TheGambler-sub000/scoring"
	"github.com/NickyGee44/TheGambler-sub000/seed"
	"github.com/NickyGee44/TheGambler-sub000/storage"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	engine  *scoring.Engine
	players storage.PlayerStorage
	teams   storage.TeamStorage
}

func NewAdminController(engine *scoring.Engine, players storage.PlayerStorage, teams storage.TeamStorage) *AdminController {
	return &AdminController{
		engine:  engine,
		players: players,
		teams:   teams,
	}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/admin", transport.AdminAuthMiddleware())

	group.POST("/recalculate", c.recalculate)
	group.POST("/seed", c.seedTournament)
	group.POST("/cache/invalidate/:teamId/:round", c.invalidateCache)
}

// @Security AdminToken
// recalculate godoc
// @Summary Recompute net scores and points for every stored hole score
// @Description Run after correcting a player handicap so old rows pick up the new strokes received
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/recalculate [post]
func (c *AdminController) recalculate(g *gin.Context) {
	updated, err := c.engine.RecalculateAllScores(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: recalculation failed: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Infof("ADMIN: recalculated %d score rows", updated)
	g.JSON(http.StatusOK, gin.H{"message": "recalculated", "updated": strconv.Itoa(updated)})
}

// @Security AdminToken
// seedTournament godoc
// @Summary Seed demo players, teams and match play groups
// @Tags admin
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/seed [post]
func (c *AdminController) seedTournament(g *gin.Context) {
	result, err := seed.Tournament(g.Request.Context(), c.players, c.teams)
	if err != nil {
		logging.Log.Errorf("ADMIN: seeding failed: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Infof("ADMIN: seeded %d players across %d teams", result.Players, result.Teams)
	g.JSON(http.StatusOK, models.MessageResponse{Message: "tournament seeded"})
}

// @Security AdminToken
// invalidateCache godoc
// @Summary Drop the cached aggregate for a team and round
// @Tags admin
// @Produce json
// @Param teamId path int true "Team ID"
// @Param round path int true "Round number"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/admin/cache/invalidate/{teamId}/{round} [post]
func (c *AdminController) invalidateCache(g *gin.Context) {
	teamID, err := strconv.Atoi(g.Param("teamId"))
	if err != nil {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}
	round, err := strconv.Atoi(g.Param("round"))
	if err != nil || round < 1 || round > 3 {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid round"})
		return
	}

	c.engine.InvalidateAggregate(g.Request.Context(), teamID, round)
	logging.Log.Infof("ADMIN: invalidated cached aggregate for team %d round %d", teamID, round)
	g.JSON(http.StatusOK, models.MessageResponse{Message: "cache invalidated"})
}
