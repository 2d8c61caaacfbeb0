package routes

import (
	"octofit/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterActivityRoutes(router gin.IRouter, activityController *controllers.ActivityController) {
	activityRoutes := router.Group("/activities")
	{
		activityRoutes.GET("/", activityController.ListActivities)
		activityRoutes.POST("/", activityController.CreateActivity)
		activityRoutes.GET("/by_user/", activityController.GetActivitiesByUser)
		activityRoutes.GET("/by_type/", activityController.GetActivitiesByType)
		activityRoutes.GET("/:id/", activityController.GetActivity)
		activityRoutes.PUT("/:id/", activityController.UpdateActivity)
		activityRoutes.PATCH("/:id/", activityController.UpdateActivity)
		activityRoutes.DELETE("/:id/", activityController.DeleteActivity)
	}
}
