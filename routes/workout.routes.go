package routes

import (
	"octofit/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterWorkoutRoutes(router gin.IRouter, workoutController *controllers.WorkoutController) {
	workoutRoutes := router.Group("/workouts")
	{
		workoutRoutes.GET("/", workoutController.ListWorkouts)
		workoutRoutes.POST("/", workoutController.CreateWorkout)
		workoutRoutes.GET("/by_difficulty/", workoutController.GetWorkoutsByDifficulty)
		workoutRoutes.GET("/by_category/", workoutController.GetWorkoutsByCategory)
		workoutRoutes.GET("/:id/", workoutController.GetWorkout)
		workoutRoutes.PUT("/:id/", workoutController.UpdateWorkout)
		workoutRoutes.PATCH("/:id/", workoutController.UpdateWorkout)
		workoutRoutes.DELETE("/:id/", workoutController.DeleteWorkout)
	}
}
