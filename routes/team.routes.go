package routes

import (
	"octofit/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterTeamRoutes(router gin.IRouter, teamController *controllers.TeamController) {
	teamRoutes := router.Group("/teams")
	{
		teamRoutes.GET("/", teamController.ListTeams)
		teamRoutes.POST("/", teamController.CreateTeam)
		teamRoutes.POST("/recompute_member_counts/", teamController.RecomputeMemberCounts)
		teamRoutes.GET("/:id/", teamController.GetTeam)
		teamRoutes.PUT("/:id/", teamController.UpdateTeam)
		teamRoutes.PATCH("/:id/", teamController.UpdateTeam)
		teamRoutes.DELETE("/:id/", teamController.DeleteTeam)
		teamRoutes.GET("/:id/members/", teamController.GetTeamMembers)
	}
}
