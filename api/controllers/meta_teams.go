package controllers

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/NickyGee44/TheGambler-sub000/api/models"
	"github.com/NickyGee44/TheGambler-sub000/api/transport"
	"github.com/NickyGee44/TheGambler-sub000/logging"
	"github.com/NickyGee44/TheGambler-sub000/scoring"
	"github.com/NickyGee44/TheGambler-sub000/storage"
	"github.com/gin-gonic/gin"
)

type TeamMetaController struct {
	storage storage.TeamStorage
	players storage.PlayerStorage
}

func NewTeamMetaController(s storage.TeamStorage, players storage.PlayerStorage) *TeamMetaController {
	return &TeamMetaController{storage: s, players: players}
}

func (c *TeamMetaController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/meta/teams")

	group.GET("", c.getAll)
	group.GET("/:id", c.get)
	group.GET("/:id/handicap", c.getTeamHandicap)
	group.POST("", transport.AdminAuthMiddleware(), c.create)
	group.PUT("/:id", transport.AdminAuthMiddleware(), c.update)
	group.DELETE("/:id", transport.AdminAuthMiddleware(), c.delete)
}

// @Summary Get all teams
// @Tags Meta/Teams
// @Produce json
// @Success 200 {array} models.TeamResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/teams [get]
func (c *TeamMetaController) getAll(g *gin.Context) {
	teams, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("META: failed to get all teams: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	// Sort this so it shows the same for everyone
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].TeamNumber < teams[j].TeamNumber
	})

	responses := make([]models.TeamResponse, 0, len(teams))
	for _, team := range teams {
		responses = append(responses, models.TransformTeamFromStorage(team))
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Get a team by ID
// @Tags Meta/Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/teams/{id} [get]
func (c *TeamMetaController) get(g *gin.Context) {
	id, err := strconv.Atoi(g.Param("id"))
	if err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid team id"})
		return
	}

	team, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "team not found"})
			return
		}
		logging.Log.Errorf("META: failed to get team %d: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, models.TransformTeamFromStorage(team))
}

// @Summary Get a team's blended handicap
// @Description The scramble/better-ball team allowance computed from the members' current individual handicaps
// @Tags Meta/Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.TeamHandicapResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/teams/{id}/handicap [get]
func (c *TeamMetaController) getTeamHandicap(g *gin.Context) {
	id, err := strconv.Atoi(g.Param("id"))
	if err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid team id"})
		return
	}

	team, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "team not found"})
			return
		}
		logging.Log.Errorf("META: failed to get team %d: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	handicaps := make([]int, 0, len(team.Members))
	for _, m := range team.Members {
		player, err := c.players.Get(g.Request.Context(), m.PlayerID)
		if err != nil {
			logging.Log.Errorf("META: team %d member %s missing: %v", id, m.PlayerID, err)
			g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "team member record missing"})
			return
		}
		handicaps = append(handicaps, player.Handicap)
	}

	teamHandicap, err := scoring.TeamHandicap(handicaps)
	if err != nil {
		logging.Log.Errorf("META: team %d handicap computation failed: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, models.TeamHandicapResponse{TeamID: id, TeamHandicap: teamHandicap})
}

// @Security AdminToken
// @Summary Create a new team
// @Tags Meta/Teams
// @Accept json
// @Produce json
// @Param team body models.TeamCreateRequest true "Team"
// @Success 201 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/teams [post]
func (c *TeamMetaController) create(g *gin.Context) {
	var req models.TeamCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if len(req.Members) < 2 || len(req.Members) > 3 {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "a team needs 2 or 3 members"})
		return
	}
	if req.IsThreePersonTeam != (len(req.Members) == 3) {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "isThreePersonTeam does not match member count"})
		return
	}

	team := &storage.Team{
		ID:                req.ID,
		TeamNumber:        req.TeamNumber,
		Name:              req.Name,
		Members:           models.TransformMembers(req.Members),
		IsThreePersonTeam: req.IsThreePersonTeam,
		TotalHandicap:     req.TotalHandicap,
		PairRotation:      models.TransformRotation(req.PairRotation),
	}
	if err := c.storage.Create(g.Request.Context(), team); err != nil {
		if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: "team already exists"})
			return
		}
		logging.Log.Errorf("META: failed to create team: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	logging.Log.Infof("META: created team %d (%s)", team.ID, team.Name)
	g.JSON(http.StatusCreated, models.TransformTeamFromStorage(team))
}

// @Security AdminToken
// @Summary Update a team
// @Tags Meta/Teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body models.TeamUpdateRequest true "Team"
// @Success 200 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/teams/{id} [put]
func (c *TeamMetaController) update(g *gin.Context) {
	id, err := strconv.Atoi(g.Param("id"))
	if err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid team id"})
		return
	}

	existing, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "team not found"})
			return
		}
		logging.Log.Errorf("META: failed to get team %d: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.TeamUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}

	existing.TeamNumber = req.TeamNumber
	existing.Name = req.Name
	existing.Members = models.TransformMembers(req.Members)
	existing.IsThreePersonTeam = req.IsThreePersonTeam
	existing.TotalHandicap = req.TotalHandicap
	existing.PairRotation = models.TransformRotation(req.PairRotation)

	if err := c.storage.Update(g.Request.Context(), existing); err != nil {
		logging.Log.Errorf("META: failed to update team %d: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, models.TransformTeamFromStorage(existing))
}

// @Security AdminToken
// @Summary Delete a team
// @Tags Meta/Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/teams/{id} [delete]
func (c *TeamMetaController) delete(g *gin.Context) {
	id, err := strconv.Atoi(g.Param("id"))
	if err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid team id"})
		return
	}

	if err := c.storage.Delete(g.Request.Context(), id); err != nil {
		logging.Log.Errorf("META: failed to delete team %d: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, gin.H{"deleted": strconv.Itoa(id)})
}
