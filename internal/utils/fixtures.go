package utils

import "octofit/internal/models"

func intPtr(v int) *int { return &v }

func seedTeams() []*models.Team {
	return []*models.Team{
		{ID: "team_marvel", Name: "Team Marvel", Description: "Earth's Mightiest Heroes"},
		{ID: "team_dc", Name: "Team DC", Description: "Justice League Champions"},
	}
}

func seedUsers() []*models.User {
	return []*models.User{
		{Name: "Tony Stark", Email: "ironman@marvel.com", TeamID: "team_marvel", Role: models.RoleLeader, TotalPoints: 2500},
		{Name: "Steve Rogers", Email: "captainamerica@marvel.com", TeamID: "team_marvel", Role: models.RoleMember, TotalPoints: 2300},
		{Name: "Natasha Romanoff", Email: "blackwidow@marvel.com", TeamID: "team_marvel", Role: models.RoleMember, TotalPoints: 2200},
		{Name: "Bruce Banner", Email: "hulk@marvel.com", TeamID: "team_marvel", Role: models.RoleMember, TotalPoints: 2100},
		{Name: "Thor Odinson", Email: "thor@marvel.com", TeamID: "team_marvel", Role: models.RoleMember, TotalPoints: 2400},
		{Name: "Clark Kent", Email: "superman@dc.com", TeamID: "team_dc", Role: models.RoleLeader, TotalPoints: 2600},
		{Name: "Bruce Wayne", Email: "batman@dc.com", TeamID: "team_dc", Role: models.RoleMember, TotalPoints: 2450},
		{Name: "Diana Prince", Email: "wonderwoman@dc.com", TeamID: "team_dc", Role: models.RoleMember, TotalPoints: 2350},
		{Name: "Barry Allen", Email: "flash@dc.com", TeamID: "team_dc", Role: models.RoleMember, TotalPoints: 2250},
		{Name: "Arthur Curry", Email: "aquaman@dc.com", TeamID: "team_dc", Role: models.RoleMember, TotalPoints: 2150},
	}
}

func seedWorkouts() []*models.Workout {
	return []*models.Workout{
		{
			Name:        "Hero Strength Training",
			Description: "Build strength like a superhero",
			Duration:    60,
			Difficulty:  models.DifficultyIntermediate,
			Category:    "strength",
			Exercises: models.Exercises{
				{Name: "Push-ups", Sets: 3, Reps: intPtr(15)},
				{Name: "Pull-ups", Sets: 3, Reps: intPtr(10)},
				{Name: "Squats", Sets: 3, Reps: intPtr(20)},
				{Name: "Plank", Sets: 3, Duration: "60 seconds"},
			},
		},
		{
			Name:        "Speed Force Cardio",
			Description: "Run as fast as The Flash",
			Duration:    45,
			Difficulty:  models.DifficultyAdvanced,
			Category:    "cardio",
			Exercises: models.Exercises{
				{Name: "Sprint Intervals", Sets: 5, Duration: "2 minutes"},
				{Name: "Burpees", Sets: 3, Reps: intPtr(15)},
				{Name: "Jump Rope", Sets: 3, Duration: "3 minutes"},
				{Name: "Mountain Climbers", Sets: 3, Reps: intPtr(30)},
			},
		},
		{
			Name:        "Warrior Flexibility",
			Description: "Flexibility training fit for Wonder Woman",
			Duration:    30,
			Difficulty:  models.DifficultyBeginner,
			Category:    "flexibility",
			Exercises: models.Exercises{
				{Name: "Yoga Flow", Sets: 1, Duration: "15 minutes"},
				{Name: "Static Stretches", Sets: 1, Duration: "10 minutes"},
				{Name: "Deep Breathing", Sets: 1, Duration: "5 minutes"},
			},
		},
		{
			Name:        "Asgardian Power Workout",
			Description: "Train like Thor with hammer swings",
			Duration:    90,
			Difficulty:  models.DifficultyAdvanced,
			Category:    "strength",
			Exercises: models.Exercises{
				{Name: "Deadlifts", Sets: 4, Reps: intPtr(8)},
				{Name: "Overhead Press", Sets: 4, Reps: intPtr(10)},
				{Name: "Battle Ropes", Sets: 3, Duration: "2 minutes"},
				{Name: "Farmer's Walk", Sets: 3, Distance: "50 meters"},
			},
		},
		{
			Name:        "Detective Core Training",
			Description: "Batman's core workout routine",
			Duration:    40,
			Difficulty:  models.DifficultyIntermediate,
			Category:    "core",
			Exercises: models.Exercises{
				{Name: "Hanging Leg Raises", Sets: 3, Reps: intPtr(12)},
				{Name: "Russian Twists", Sets: 3, Reps: intPtr(30)},
				{Name: "Ab Wheel Rollouts", Sets: 3, Reps: intPtr(10)},
				{Name: "Side Plank", Sets: 3, Duration: "45 seconds"},
			},
		},
	}
}
