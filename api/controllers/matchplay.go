package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/NickyGee44/TheGambler-sub000/api/models"
	"github.com/NickyGee44/TheGambler-sub000/api/transport"
	"github.com/NickyGee44/TheGambler-sub000/logging"
	"github.com/NickyGee44/TheGambler-sub000/scoring"
	"github.com/NickyGee44/TheGambler-sub000/storage"
	"github.com/gin-gonic/gin"
)

type MatchPlayController struct {
	engine *scoring.Engine
}

func NewMatchPlayController(engine *scoring.Engine) *MatchPlayController {
	return &MatchPlayController{engine: engine}
}

func (c *MatchPlayController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/matchplay")

	group.POST("/groups", transport.AdminAuthMiddleware(), c.createGroup)
	group.GET("/groups/:group", c.getGroupMatches)
	group.GET("/player/:playerId", c.getPlayerMatches)
	group.GET("/leaderboard", c.getLeaderboard)
}

// createGroup godoc
// @Security AdminToken
// @Summary Create the segment matches for a preset four-player group
// @Description Precomputes handicap difference, stroke recipient and stroke holes for each of the six segment matches
// @Tags matchplay
// @Accept json
// @Produce json
// @Param group body models.CreateGroupRequest true "Group setup"
// @Success 200 {array} models.MatchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "A player was not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/matchplay/groups [post]
func (c *MatchPlayController) createGroup(g *gin.Context) {
	var req models.CreateGroupRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if len(req.PlayerIDs) != 4 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "a group needs exactly 4 players"})
		return
	}

	matches, err := c.engine.SetupGroupMatches(g.Request.Context(), req.GroupNumber, req.PlayerIDs)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "player not found"})
			return
		}
		logging.Log.Errorf("MATCH: failed to create group %d: %v", req.GroupNumber, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create group matches"})
		return
	}

	resp := make([]models.MatchResponse, 0, len(matches))
	for _, m := range matches {
		resp = append(resp, models.TransformMatchFromStorage(m, nil))
	}
	g.JSON(http.StatusOK, resp)
}

// getGroupMatches godoc
// @Summary Get a group's matches with live results
// @Tags matchplay
// @Produce json
// @Param group path int true "Group number"
// @Success 200 {array} models.MatchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/matchplay/groups/{group} [get]
func (c *MatchPlayController) getGroupMatches(g *gin.Context) {
	groupNumber, err := strconv.Atoi(g.Param("group"))
	if err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid group number"})
		return
	}

	matches, live, err := c.engine.MatchesForGroup(g.Request.Context(), groupNumber)
	if err != nil {
		logging.Log.Errorf("MATCH: failed to load group %d: %v", groupNumber, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load matches"})
		return
	}

	resp := make([]models.MatchResponse, 0, len(matches))
	for i, m := range matches {
		resp = append(resp, models.TransformMatchFromStorage(m, &live[i]))
	}
	g.JSON(http.StatusOK, resp)
}

// getPlayerMatches godoc
// @Summary Get a player's matches with live results
// @Tags matchplay
// @Produce json
// @Param playerId path string true "Player ID"
// @Success 200 {array} models.MatchResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/matchplay/player/{playerId} [get]
func (c *MatchPlayController) getPlayerMatches(g *gin.Context) {
	playerID := g.Param("playerId")

	matches, live, err := c.engine.MatchesForPlayer(g.Request.Context(), playerID)
	if err != nil {
		logging.Log.Errorf("MATCH: failed to load matches for player %s: %v", playerID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load matches"})
		return
	}

	resp := make([]models.MatchResponse, 0, len(matches))
	for i, m := range matches {
		resp = append(resp, models.TransformMatchFromStorage(m, &live[i]))
	}
	g.JSON(http.StatusOK, resp)
}

// getLeaderboard godoc
// @Summary Get the individual match play leaderboard
// @Description Players ranked by summed segment points (4 win / 2 halved / 0 loss per segment)
// @Tags matchplay
// @Produce json
// @Success 200 {array} scoring.PlayerMatchStanding
// @Failure 500 {object} models.ErrorResponse
// @Router /api/matchplay/leaderboard [get]
func (c *MatchPlayController) getLeaderboard(g *gin.Context) {
	standings, err := c.engine.MatchPlayLeaderboard(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("MATCH: failed to compute leaderboard: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not compute leaderboard"})
		return
	}
	g.JSON(http.StatusOK, standings)
}
