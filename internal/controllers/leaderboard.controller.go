package controllers

import (
	"net/http"
	"strconv"

	"octofit/internal/models"
	"octofit/internal/repository"
	"octofit/internal/services"

	"github.com/gin-gonic/gin"
)

const DefaultTopLimit = 10

type LeaderboardController struct {
	*crud[models.Leaderboard, *models.Leaderboard]
	entries     repository.LeaderboardRepository
	maintenance *services.MaintenanceService
}

func NewLeaderboardController(entries repository.LeaderboardRepository, maintenance *services.MaintenanceService) *LeaderboardController {
	return &LeaderboardController{
		crud:        newCrud[models.Leaderboard]("leaderboard entry", entries, entries.FindAll),
		entries:     entries,
		maintenance: maintenance,
	}
}

// ListLeaderboard godoc
// @Summary List leaderboard entries
// @Description Ordered by rank ascending.
// @Tags leaderboard
// @Produce json
// @Success 200 {array} models.Leaderboard
// @Failure 500 {object} ErrorResponse
// @Router /leaderboard/ [get]
func (lc *LeaderboardController) ListLeaderboard(c *gin.Context) {
	if entries, ok := lc.list(c); ok {
		c.JSON(http.StatusOK, entries)
	}
}

// GetLeaderboardEntry godoc
// @Summary Get a leaderboard entry
// @Tags leaderboard
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} models.Leaderboard
// @Failure 404 {object} ErrorResponse
// @Router /leaderboard/{id}/ [get]
func (lc *LeaderboardController) GetLeaderboardEntry(c *gin.Context) {
	if entry, ok := lc.get(c); ok {
		c.JSON(http.StatusOK, entry)
	}
}

// CreateLeaderboardEntry godoc
// @Summary Create a leaderboard entry
// @Description The rank is stored as given; use the recompute endpoint to re-rank.
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param entry body models.Leaderboard true "Entry"
// @Success 201 {object} models.Leaderboard
// @Failure 400 {object} ErrorResponse
// @Router /leaderboard/ [post]
func (lc *LeaderboardController) CreateLeaderboardEntry(c *gin.Context) {
	if entry, ok := lc.create(c); ok {
		c.JSON(http.StatusCreated, entry)
	}
}

// UpdateLeaderboardEntry godoc
// @Summary Update a leaderboard entry
// @Description Partial update: fields absent from the body keep their value. PUT and PATCH behave the same.
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param entry body models.Leaderboard true "Fields to change"
// @Success 200 {object} models.Leaderboard
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /leaderboard/{id}/ [put]
// @Router /leaderboard/{id}/ [patch]
func (lc *LeaderboardController) UpdateLeaderboardEntry(c *gin.Context) {
	if entry, ok := lc.update(c); ok {
		c.JSON(http.StatusOK, entry)
	}
}

// DeleteLeaderboardEntry godoc
// @Summary Delete a leaderboard entry
// @Tags leaderboard
// @Param id path string true "Entry ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /leaderboard/{id}/ [delete]
func (lc *LeaderboardController) DeleteLeaderboardEntry(c *gin.Context) {
	if lc.remove(c) {
		noContent(c)
	}
}

// GetLeaderboardByTeam godoc
// @Summary List leaderboard entries of a team
// @Tags leaderboard
// @Produce json
// @Param team_id query string true "Team ID"
// @Success 200 {array} models.Leaderboard
// @Failure 400 {object} ErrorResponse
// @Router /leaderboard/by_team/ [get]
func (lc *LeaderboardController) GetLeaderboardByTeam(c *gin.Context) {
	teamID, ok := requireQuery(c, "team_id")
	if !ok {
		return
	}
	entries, err := lc.entries.FindByTeamID(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, "leaderboard entry", "list", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetTopLeaderboard godoc
// @Summary Top of the leaderboard
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Number of entries" default(10) minimum(1)
// @Success 200 {array} models.Leaderboard
// @Failure 400 {object} ErrorResponse
// @Router /leaderboard/top/ [get]
func (lc *LeaderboardController) GetTopLeaderboard(c *gin.Context) {
	limit := DefaultTopLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondBadRequest(c, "Invalid limit", "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := lc.entries.FindTop(c.Request.Context(), limit)
	if err != nil {
		respondError(c, "leaderboard entry", "list", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// RecomputeLeaderboard godoc
// @Summary Re-rank the leaderboard
// @Description mode=rank re-ranks by stored points; mode=full first refreshes every entry from its user and activities.
// @Tags leaderboard
// @Produce json
// @Param mode query string false "rank or full" default(rank)
// @Success 200 {array} models.Leaderboard
// @Failure 400 {object} ErrorResponse
// @Router /leaderboard/recompute/ [post]
func (lc *LeaderboardController) RecomputeLeaderboard(c *gin.Context) {
	mode, err := services.ParseRecomputeMode(c.Query("mode"))
	if err != nil {
		respondBadRequest(c, "Invalid mode", err.Error())
		return
	}
	entries, err := lc.maintenance.RecomputeLeaderboard(c.Request.Context(), mode)
	if err != nil {
		respondError(c, "leaderboard entry", "recompute", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
