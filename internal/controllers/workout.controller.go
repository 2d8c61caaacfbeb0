package controllers

import (
	"net/http"

	"octofit/internal/models"
	"octofit/internal/repository"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	*crud[models.Workout, *models.Workout]
	workouts repository.WorkoutRepository
}

func NewWorkoutController(workouts repository.WorkoutRepository) *WorkoutController {
	return &WorkoutController{
		crud:     newCrud[models.Workout]("workout", workouts, workouts.FindAll),
		workouts: workouts,
	}
}

// ListWorkouts godoc
// @Summary List workout suggestions
// @Tags workouts
// @Produce json
// @Success 200 {array} models.Workout
// @Failure 500 {object} ErrorResponse
// @Router /workouts/ [get]
func (wc *WorkoutController) ListWorkouts(c *gin.Context) {
	if workouts, ok := wc.list(c); ok {
		c.JSON(http.StatusOK, workouts)
	}
}

// GetWorkout godoc
// @Summary Get a workout
// @Tags workouts
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} models.Workout
// @Failure 404 {object} ErrorResponse
// @Router /workouts/{id}/ [get]
func (wc *WorkoutController) GetWorkout(c *gin.Context) {
	if workout, ok := wc.get(c); ok {
		c.JSON(http.StatusOK, workout)
	}
}

// CreateWorkout godoc
// @Summary Create a workout
// @Description exercises may be sent as an array or as a JSON-encoded string.
// @Tags workouts
// @Accept json
// @Produce json
// @Param workout body models.Workout true "Workout"
// @Success 201 {object} models.Workout
// @Failure 400 {object} ErrorResponse
// @Router /workouts/ [post]
func (wc *WorkoutController) CreateWorkout(c *gin.Context) {
	if workout, ok := wc.create(c); ok {
		c.JSON(http.StatusCreated, workout)
	}
}

// UpdateWorkout godoc
// @Summary Update a workout
// @Description Partial update: fields absent from the body keep their value. PUT and PATCH behave the same.
// @Tags workouts
// @Accept json
// @Produce json
// @Param id path string true "Workout ID"
// @Param workout body models.Workout true "Fields to change"
// @Success 200 {object} models.Workout
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /workouts/{id}/ [put]
// @Router /workouts/{id}/ [patch]
func (wc *WorkoutController) UpdateWorkout(c *gin.Context) {
	if workout, ok := wc.update(c); ok {
		c.JSON(http.StatusOK, workout)
	}
}

// DeleteWorkout godoc
// @Summary Delete a workout
// @Tags workouts
// @Param id path string true "Workout ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /workouts/{id}/ [delete]
func (wc *WorkoutController) DeleteWorkout(c *gin.Context) {
	if wc.remove(c) {
		noContent(c)
	}
}

// GetWorkoutsByDifficulty godoc
// @Summary List workouts by difficulty
// @Tags workouts
// @Produce json
// @Param difficulty query string true "beginner, intermediate or advanced"
// @Success 200 {array} models.Workout
// @Failure 400 {object} ErrorResponse
// @Router /workouts/by_difficulty/ [get]
func (wc *WorkoutController) GetWorkoutsByDifficulty(c *gin.Context) {
	difficulty, ok := requireQuery(c, "difficulty")
	if !ok {
		return
	}
	workouts, err := wc.workouts.FindByDifficulty(c.Request.Context(), difficulty)
	if err != nil {
		respondError(c, "workout", "list", err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkoutsByCategory godoc
// @Summary List workouts by category
// @Tags workouts
// @Produce json
// @Param category query string true "Category" example(strength)
// @Success 200 {array} models.Workout
// @Failure 400 {object} ErrorResponse
// @Router /workouts/by_category/ [get]
func (wc *WorkoutController) GetWorkoutsByCategory(c *gin.Context) {
	category, ok := requireQuery(c, "category")
	if !ok {
		return
	}
	workouts, err := wc.workouts.FindByCategory(c.Request.Context(), category)
	if err != nil {
		respondError(c, "workout", "list", err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}
