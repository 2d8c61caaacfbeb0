package routes

import (
	"octofit/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router gin.IRouter, userController *controllers.UserController) {
	userRoutes := router.Group("/users")
	{
		userRoutes.GET("/", userController.ListUsers)
		userRoutes.POST("/", userController.CreateUser)
		userRoutes.GET("/by_team/", userController.GetUsersByTeam)
		userRoutes.GET("/:id/", userController.GetUser)
		userRoutes.PUT("/:id/", userController.UpdateUser)
		userRoutes.PATCH("/:id/", userController.UpdateUser)
		userRoutes.DELETE("/:id/", userController.DeleteUser)
		userRoutes.GET("/:id/activities/", userController.GetUserActivities)
	}
}
