package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/NickyGee44/TheGambler-sub000/api/models"
	"github.com/NickyGee44/TheGambler-sub000/logging"
	"github.com/NickyGee44/TheGambler-sub000/scoring"
	"github.com/NickyGee44/TheGambler-sub000/storage"
	"github.com/gin-gonic/gin"
)

type ScoreController struct {
	engine *scoring.Engine
}

func NewScoreController(engine *scoring.Engine) *ScoreController {
	return &ScoreController{engine: engine}
}

func (c *ScoreController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/scores")

	group.POST("", c.recordScore)
	group.GET("/:playerId/:round", c.getScorecard)
}

// recordScore godoc
// @Summary Record or edit a hole score
// @Description Upserts the score for (player, round, hole) and rederives net score and points
// @Tags scores
// @Accept json
// @Produce json
// @Param score body models.RecordScoreRequest true "Score entry"
// @Success 200 {object} models.HoleScoreResponse
// @Failure 400 {object} models.ErrorResponse "Invalid score data"
// @Failure 404 {object} models.ErrorResponse "Player not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/scores [post]
func (c *ScoreController) recordScore(g *gin.Context) {
	var req models.RecordScoreRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.Round < 1 || req.Round > 3 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "round must be 1-3"})
		return
	}
	if req.Hole < 1 || req.Hole > 18 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "hole must be 1-18"})
		return
	}
	if req.Strokes < 1 || req.Strokes > 15 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "strokes must be 1-15"})
		return
	}

	score, err := c.engine.RecordHoleScore(g.Request.Context(), req.PlayerID, req.Round, req.Hole, req.Strokes, scoring.HoleScoreStats{
		FairwayHit: req.FairwayHit,
		GreenHit:   req.GreenHit,
		Putts:      req.Putts,
		Penalties:  req.Penalties,
		SandSave:   req.SandSave,
		UpAndDown:  req.UpAndDown,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			logging.Log.Warnf("SCORE: record for unknown player %s", req.PlayerID)
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "player not found"})
			return
		}
		logging.Log.Errorf("SCORE: failed to record score: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not record score"})
		return
	}

	g.JSON(http.StatusOK, models.TransformHoleScoreFromStorage(score))
}

// getScorecard godoc
// @Summary Get a player's scorecard for a round
// @Tags scores
// @Produce json
// @Param playerId path string true "Player ID"
// @Param round path int true "Round (1-3)"
// @Success 200 {object} models.ScorecardResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/scores/{playerId}/{round} [get]
func (c *ScoreController) getScorecard(g *gin.Context) {
	playerID := g.Param("playerId")
	round, err := strconv.Atoi(g.Param("round"))
	if err != nil || round < 1 || round > 3 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "round must be 1-3"})
		return
	}

	scores, err := c.engine.Scorecard(g.Request.Context(), playerID, round)
	if err != nil {
		logging.Log.Errorf("SCORE: failed to get scorecard for %s round %d: %v", playerID, round, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load scorecard"})
		return
	}

	resp := models.ScorecardResponse{
		PlayerID: playerID,
		Round:    round,
		Holes:    make([]models.HoleScoreResponse, 0, len(scores)),
	}
	for _, sc := range scores {
		resp.Holes = append(resp.Holes, models.TransformHoleScoreFromStorage(sc))
	}
	g.JSON(http.StatusOK, resp)
}
