package repository

import (
	"octofit/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Repositories bundles one repository per record type over a single
// backend.
type Repositories struct {
	Teams       TeamRepository
	Users       UserRepository
	Activities  ActivityRepository
	Leaderboard LeaderboardRepository
	Workouts    WorkoutRepository
}

func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Teams:       NewTeamRepository(NewMongoStore[models.Team](db)),
		Users:       NewUserRepository(NewMongoStore[models.User](db)),
		Activities:  NewActivityRepository(NewMongoStore[models.Activity](db)),
		Leaderboard: NewLeaderboardRepository(NewMongoStore[models.Leaderboard](db)),
		Workouts:    NewWorkoutRepository(NewMongoStore[models.Workout](db)),
	}
}

func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Teams:       NewTeamRepository(NewGormStore[models.Team](db)),
		Users:       NewUserRepository(NewGormStore[models.User](db)),
		Activities:  NewActivityRepository(NewGormStore[models.Activity](db)),
		Leaderboard: NewLeaderboardRepository(NewGormStore[models.Leaderboard](db)),
		Workouts:    NewWorkoutRepository(NewGormStore[models.Workout](db)),
	}
}

func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Teams:       NewTeamRepository(NewMemoryStore[models.Team]()),
		Users:       NewUserRepository(NewMemoryStore[models.User]("email")),
		Activities:  NewActivityRepository(NewMemoryStore[models.Activity]()),
		Leaderboard: NewLeaderboardRepository(NewMemoryStore[models.Leaderboard]()),
		Workouts:    NewWorkoutRepository(NewMemoryStore[models.Workout]()),
	}
}
