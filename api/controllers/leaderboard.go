package controllers

import (
	"net/http"
	"strconv"

	"github.com/NickyGee44/TheGambler-sub000/api/models"
	"github.com/NickyGee44/TheGambler-sub000/logging"
	"github.com/NickyGee44/TheGambler-sub000/scoring"
	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	engine *scoring.Engine
}

func NewLeaderboardController(engine *scoring.Engine) *LeaderboardController {
	return &LeaderboardController{engine: engine}
}

func (c *LeaderboardController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/leaderboard")

	group.GET("/round/:round", c.getRoundLeaderboard)
	group.GET("/overall", c.getOverallStandings)
}

// getRoundLeaderboard godoc
// @Summary Get the leaderboard for a round
// @Description Rounds 1 and 2 rank teams on net strokes with placement points; round 3 ranks teams on match play points
// @Tags leaderboard
// @Produce json
// @Param round path int true "Round (1-3)"
// @Success 200 {object} scoring.RoundLeaderboard
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/leaderboard/round/{round} [get]
func (c *LeaderboardController) getRoundLeaderboard(g *gin.Context) {
	round, err := strconv.Atoi(g.Param("round"))
	if err != nil || round < 1 || round > 3 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "round must be 1-3"})
		return
	}

	board, err := c.engine.RoundLeaderboard(g.Request.Context(), round)
	if err != nil {
		logging.Log.Errorf("LEADERBOARD: failed to compute round %d leaderboard: %v", round, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not compute leaderboard"})
		return
	}
	g.JSON(http.StatusOK, board)
}

// getOverallStandings godoc
// @Summary Get the overall tournament standings
// @Description Combines placement points from rounds 1-2 with match play points
// @Tags leaderboard
// @Produce json
// @Success 200 {object} scoring.OverallStandings
// @Failure 500 {object} models.ErrorResponse
// @Router /api/leaderboard/overall [get]
func (c *LeaderboardController) getOverallStandings(g *gin.Context) {
	standings, err := c.engine.ComputeOverallStandings(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("LEADERBOARD: failed to compute overall standings: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not compute standings"})
		return
	}
	g.JSON(http.StatusOK, standings)
}
