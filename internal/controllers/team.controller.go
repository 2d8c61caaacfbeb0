package controllers

import (
	"net/http"

	"octofit/internal/models"
	"octofit/internal/repository"
	"octofit/internal/services"

	"github.com/gin-gonic/gin"
)

type TeamController struct {
	*crud[models.Team, *models.Team]
	users       repository.UserRepository
	maintenance *services.MaintenanceService
}

func NewTeamController(teams repository.TeamRepository, users repository.UserRepository, maintenance *services.MaintenanceService) *TeamController {
	return &TeamController{
		crud:        newCrud[models.Team]("team", teams, teams.FindAll),
		users:       users,
		maintenance: maintenance,
	}
}

// ListTeams godoc
// @Summary List teams
// @Tags teams
// @Produce json
// @Success 200 {array} models.Team
// @Failure 500 {object} ErrorResponse
// @Router /teams/ [get]
func (tc *TeamController) ListTeams(c *gin.Context) {
	if teams, ok := tc.list(c); ok {
		c.JSON(http.StatusOK, teams)
	}
}

// GetTeam godoc
// @Summary Get a team
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} ErrorResponse
// @Router /teams/{id}/ [get]
func (tc *TeamController) GetTeam(c *gin.Context) {
	if team, ok := tc.get(c); ok {
		c.JSON(http.StatusOK, team)
	}
}

// CreateTeam godoc
// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body models.Team true "Team"
// @Success 201 {object} models.Team
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /teams/ [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	if team, ok := tc.create(c); ok {
		c.JSON(http.StatusCreated, team)
	}
}

// UpdateTeam godoc
// @Summary Update a team
// @Description Partial update: fields absent from the body keep their value. PUT and PATCH behave the same.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param team body models.Team true "Fields to change"
// @Success 200 {object} models.Team
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /teams/{id}/ [put]
// @Router /teams/{id}/ [patch]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	if team, ok := tc.update(c); ok {
		c.JSON(http.StatusOK, team)
	}
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Members keep their team_id.
// @Tags teams
// @Param id path string true "Team ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /teams/{id}/ [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	if tc.remove(c) {
		noContent(c)
	}
}

// GetTeamMembers godoc
// @Summary List the users of a team
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} models.User
// @Failure 404 {object} ErrorResponse
// @Router /teams/{id}/members/ [get]
func (tc *TeamController) GetTeamMembers(c *gin.Context) {
	team, ok := tc.get(c)
	if !ok {
		return
	}
	members, err := tc.users.FindByTeamID(c.Request.Context(), team.ID)
	if err != nil {
		respondError(c, "user", "list", err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// RecomputeMemberCounts godoc
// @Summary Recount team members
// @Description Sets every team's member_count to the number of users referencing it.
// @Tags teams
// @Produce json
// @Success 200 {array} models.Team
// @Failure 500 {object} ErrorResponse
// @Router /teams/recompute_member_counts/ [post]
func (tc *TeamController) RecomputeMemberCounts(c *gin.Context) {
	teams, err := tc.maintenance.RecomputeMemberCounts(c.Request.Context())
	if err != nil {
		respondError(c, "team", "recompute", err)
		return
	}
	c.JSON(http.StatusOK, teams)
}
