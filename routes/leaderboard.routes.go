package routes

import (
	"octofit/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterLeaderboardRoutes(router gin.IRouter, leaderboardController *controllers.LeaderboardController) {
	leaderboardRoutes := router.Group("/leaderboard")
	{
		leaderboardRoutes.GET("/", leaderboardController.ListLeaderboard)
		leaderboardRoutes.POST("/", leaderboardController.CreateLeaderboardEntry)
		leaderboardRoutes.GET("/by_team/", leaderboardController.GetLeaderboardByTeam)
		leaderboardRoutes.GET("/top/", leaderboardController.GetTopLeaderboard)
		leaderboardRoutes.POST("/recompute/", leaderboardController.RecomputeLeaderboard)
		leaderboardRoutes.GET("/:id/", leaderboardController.GetLeaderboardEntry)
		leaderboardRoutes.PUT("/:id/", leaderboardController.UpdateLeaderboardEntry)
		leaderboardRoutes.PATCH("/:id/", leaderboardController.UpdateLeaderboardEntry)
		leaderboardRoutes.DELETE("/:id/", leaderboardController.DeleteLeaderboardEntry)
	}
}
