package controllers

import (
	"context"
	"net/http"

	"octofit/internal/models"
	"octofit/internal/repository"
	"octofit/internal/services"

	"github.com/gin-gonic/gin"
)

// ActivityController serves activities with the user_name of their user
// filled in.
type ActivityController struct {
	*crud[models.Activity, *models.Activity]
	activities  repository.ActivityRepository
	names       *services.UserNameResolver
	maintenance *services.MaintenanceService
}

func NewActivityController(activities repository.ActivityRepository, names *services.UserNameResolver, maintenance *services.MaintenanceService) *ActivityController {
	ac := &ActivityController{
		crud:        newCrud[models.Activity]("activity", activities, activities.FindAll),
		activities:  activities,
		names:       names,
		maintenance: maintenance,
	}
	ac.written = func(ctx context.Context, _ string) { maintenance.AfterWrite(ctx) }
	return ac
}

func (ac *ActivityController) respondOne(c *gin.Context, status int, activity *models.Activity) {
	one := []models.Activity{*activity}
	ac.names.Decorate(c.Request.Context(), one)
	c.JSON(status, one[0])
}

func (ac *ActivityController) respondMany(c *gin.Context, activities []models.Activity) {
	ac.names.Decorate(c.Request.Context(), activities)
	c.JSON(http.StatusOK, activities)
}

// ListActivities godoc
// @Summary List activities
// @Tags activities
// @Produce json
// @Success 200 {array} models.Activity
// @Failure 500 {object} ErrorResponse
// @Router /activities/ [get]
func (ac *ActivityController) ListActivities(c *gin.Context) {
	if activities, ok := ac.list(c); ok {
		ac.respondMany(c, activities)
	}
}

// GetActivity godoc
// @Summary Get an activity
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} models.Activity
// @Failure 404 {object} ErrorResponse
// @Router /activities/{id}/ [get]
func (ac *ActivityController) GetActivity(c *gin.Context) {
	if activity, ok := ac.get(c); ok {
		ac.respondOne(c, http.StatusOK, activity)
	}
}

// CreateActivity godoc
// @Summary Log an activity
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body models.Activity true "Activity"
// @Success 201 {object} models.Activity
// @Failure 400 {object} ErrorResponse
// @Router /activities/ [post]
func (ac *ActivityController) CreateActivity(c *gin.Context) {
	if activity, ok := ac.create(c); ok {
		ac.respondOne(c, http.StatusCreated, activity)
	}
}

// UpdateActivity godoc
// @Summary Update an activity
// @Description Partial update: fields absent from the body keep their value. PUT and PATCH behave the same.
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param activity body models.Activity true "Fields to change"
// @Success 200 {object} models.Activity
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /activities/{id}/ [put]
// @Router /activities/{id}/ [patch]
func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	if activity, ok := ac.update(c); ok {
		ac.respondOne(c, http.StatusOK, activity)
	}
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Tags activities
// @Param id path string true "Activity ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /activities/{id}/ [delete]
func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	if ac.remove(c) {
		noContent(c)
	}
}

// GetActivitiesByUser godoc
// @Summary List activities by user
// @Tags activities
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} models.Activity
// @Failure 400 {object} ErrorResponse
// @Router /activities/by_user/ [get]
func (ac *ActivityController) GetActivitiesByUser(c *gin.Context) {
	userID, ok := requireQuery(c, "user_id")
	if !ok {
		return
	}
	activities, err := ac.activities.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "activity", "list", err)
		return
	}
	ac.respondMany(c, activities)
}

// GetActivitiesByType godoc
// @Summary List activities by type
// @Description Exact, case-sensitive match on activity_type.
// @Tags activities
// @Produce json
// @Param type query string true "Activity type" example(Running)
// @Success 200 {array} models.Activity
// @Failure 400 {object} ErrorResponse
// @Router /activities/by_type/ [get]
func (ac *ActivityController) GetActivitiesByType(c *gin.Context) {
	activityType, ok := requireQuery(c, "type")
	if !ok {
		return
	}
	activities, err := ac.activities.FindByType(c.Request.Context(), activityType)
	if err != nil {
		respondError(c, "activity", "list", err)
		return
	}
	ac.respondMany(c, activities)
}
