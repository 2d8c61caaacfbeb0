package controllers

import (
	"octofit/internal/repository"
	"octofit/internal/services"
)

// Handlers groups the controllers mounted by the router.
type Handlers struct {
	Root        *RootController
	Teams       *TeamController
	Users       *UserController
	Activities  *ActivityController
	Leaderboard *LeaderboardController
	Workouts    *WorkoutController
}

func NewHandlers(repos *repository.Repositories, store Pinger, names *services.UserNameResolver, maintenance *services.MaintenanceService) *Handlers {
	return &Handlers{
		Root:        NewRootController(store),
		Teams:       NewTeamController(repos.Teams, repos.Users, maintenance),
		Users:       NewUserController(repos.Users, repos.Activities, names, maintenance),
		Activities:  NewActivityController(repos.Activities, names, maintenance),
		Leaderboard: NewLeaderboardController(repos.Leaderboard, maintenance),
		Workouts:    NewWorkoutController(repos.Workouts),
	}
}
