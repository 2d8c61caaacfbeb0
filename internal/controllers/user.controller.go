package controllers

import (
	"context"
	"net/http"

	"octofit/internal/models"
	"octofit/internal/repository"
	"octofit/internal/services"
	"octofit/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	*crud[models.User, *models.User]
	users       repository.UserRepository
	activities  repository.ActivityRepository
	names       *services.UserNameResolver
	maintenance *services.MaintenanceService
}

func NewUserController(users repository.UserRepository, activities repository.ActivityRepository, names *services.UserNameResolver, maintenance *services.MaintenanceService) *UserController {
	uc := &UserController{
		crud:        newCrud[models.User]("user", users, users.FindAll),
		users:       users,
		activities:  activities,
		names:       names,
		maintenance: maintenance,
	}
	uc.prepare = hashUserPassword
	uc.written = uc.afterUserWrite
	return uc
}

func hashUserPassword(user *models.User) error {
	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hash
	return nil
}

func (uc *UserController) afterUserWrite(ctx context.Context, id string) {
	uc.names.Forget(ctx, id)
	uc.maintenance.AfterWrite(ctx)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} ErrorResponse
// @Router /users/ [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	if users, ok := uc.list(c); ok {
		c.JSON(http.StatusOK, users)
	}
}

// GetUser godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse
// @Router /users/{id}/ [get]
func (uc *UserController) GetUser(c *gin.Context) {
	if user, ok := uc.get(c); ok {
		c.JSON(http.StatusOK, user)
	}
}

// CreateUser godoc
// @Summary Create a user
// @Description The password is stored as a bcrypt hash and never returned.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.User true "User"
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /users/ [post]
func (uc *UserController) CreateUser(c *gin.Context) {
	if user, ok := uc.create(c); ok {
		c.JSON(http.StatusCreated, user)
	}
}

// UpdateUser godoc
// @Summary Update a user
// @Description Partial update: fields absent from the body keep their value. PUT and PATCH behave the same.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body models.User true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/{id}/ [put]
// @Router /users/{id}/ [patch]
func (uc *UserController) UpdateUser(c *gin.Context) {
	if user, ok := uc.update(c); ok {
		c.JSON(http.StatusOK, user)
	}
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Activities and leaderboard entries of the user are kept.
// @Tags users
// @Param id path string true "User ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /users/{id}/ [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	if uc.remove(c) {
		noContent(c)
	}
}

// GetUserActivities godoc
// @Summary List the activities of a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} models.Activity
// @Failure 404 {object} ErrorResponse
// @Router /users/{id}/activities/ [get]
func (uc *UserController) GetUserActivities(c *gin.Context) {
	user, ok := uc.get(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	activities, err := uc.activities.FindByUserID(ctx, user.ID)
	if err != nil {
		respondError(c, "activity", "list", err)
		return
	}
	uc.names.Decorate(ctx, activities)
	c.JSON(http.StatusOK, activities)
}

// GetUsersByTeam godoc
// @Summary List users by team
// @Tags users
// @Produce json
// @Param team_id query string true "Team ID"
// @Success 200 {array} models.User
// @Failure 400 {object} ErrorResponse
// @Router /users/by_team/ [get]
func (uc *UserController) GetUsersByTeam(c *gin.Context) {
	teamID, ok := requireQuery(c, "team_id")
	if !ok {
		return
	}
	users, err := uc.users.FindByTeamID(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, "user", "list", err)
		return
	}
	c.JSON(http.StatusOK, users)
}
