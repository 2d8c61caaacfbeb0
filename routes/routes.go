package routes

import (
	"octofit/internal/controllers"
	"octofit/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAPIRoutes mounts the record routes at the root and again under
// /api, the prefix used by the web frontend. Mutating routes require a
// bearer token when jwtSecret is set.
func RegisterAPIRoutes(router *gin.Engine, h *controllers.Handlers, jwtSecret string) {
	router.GET("/healthz", h.Root.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	for _, prefix := range []string{"", "/api"} {
		api := router.Group(prefix)
		api.Use(middleware.AuthMiddleware(jwtSecret))

		api.GET("/", h.Root.Index)
		RegisterTeamRoutes(api, h.Teams)
		RegisterUserRoutes(api, h.Users)
		RegisterActivityRoutes(api, h.Activities)
		RegisterLeaderboardRoutes(api, h.Leaderboard)
		RegisterWorkoutRoutes(api, h.Workouts)
	}
}
