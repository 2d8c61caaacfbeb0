package utils

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"octofit/internal/models"
	"octofit/internal/ranking"
	"octofit/internal/repository"

	"github.com/fatih/color"
)

const (
	MinActivitiesPerUser = 5
	MaxActivitiesPerUser = 10
)

// SeedSummary holds per-collection record counts.
type SeedSummary struct {
	Teams       int64
	Users       int64
	Activities  int64
	Leaderboard int64
	Workouts    int64
}

// Seeder fills the store with the sample teams, users, activities,
// leaderboard and workouts.
type Seeder struct {
	repos *repository.Repositories
	rng   *rand.Rand
	out   io.Writer
	now   func() time.Time

	success *color.Color
	info    *color.Color
}

func NewSeeder(repos *repository.Repositories, rng *rand.Rand, out io.Writer) *Seeder {
	return &Seeder{
		repos:   repos,
		rng:     rng,
		out:     out,
		now:     time.Now,
		success: color.New(color.FgGreen),
		info:    color.New(color.FgCyan),
	}
}

// Clear deletes every record of every type.
func (s *Seeder) Clear(ctx context.Context) error {
	s.info.Fprintln(s.out, "Clearing existing data...")

	clears := []struct {
		name  string
		clear func(context.Context) (int64, error)
	}{
		{"users", s.repos.Users.DeleteAll},
		{"teams", s.repos.Teams.DeleteAll},
		{"activities", s.repos.Activities.DeleteAll},
		{"leaderboard", s.repos.Leaderboard.DeleteAll},
		{"workouts", s.repos.Workouts.DeleteAll},
	}
	for _, c := range clears {
		if _, err := c.clear(ctx); err != nil {
			return fmt.Errorf("clear %s: %w", c.name, err)
		}
	}

	s.success.Fprintln(s.out, "Existing data cleared.")
	return nil
}

// Populate replaces the store contents with the sample data set.
func (s *Seeder) Populate(ctx context.Context) (*SeedSummary, error) {
	if err := s.Clear(ctx); err != nil {
		return nil, err
	}
	now := s.now()

	s.info.Fprintln(s.out, "Inserting teams...")
	teams := seedTeams()
	for _, team := range teams {
		team.ApplyDefaults(now)
	}
	if err := s.repos.Teams.CreateMany(ctx, teams); err != nil {
		return nil, fmt.Errorf("insert teams: %w", err)
	}
	s.success.Fprintf(s.out, "Inserted %d teams.\n", len(teams))

	s.info.Fprintln(s.out, "Inserting users...")
	users := seedUsers()
	for i, user := range users {
		user.ApplyDefaults(now)
		hash, err := HashPassword(fmt.Sprintf("hashed_password_%d", i+1))
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if err := s.repos.Users.CreateMany(ctx, users); err != nil {
		return nil, fmt.Errorf("insert users: %w", err)
	}
	s.success.Fprintf(s.out, "Inserted %d users.\n", len(users))

	for _, team := range teams {
		members := 0
		for _, user := range users {
			if user.TeamID == team.ID {
				members++
			}
		}
		if _, err := s.repos.Teams.Update(ctx, team.ID, map[string]any{"member_count": members}); err != nil {
			return nil, fmt.Errorf("update member count of %s: %w", team.ID, err)
		}
	}

	s.info.Fprintln(s.out, "Inserting activities...")
	var activities []*models.Activity
	perUser := make(map[string]int, len(users))
	for _, user := range users {
		n := MinActivitiesPerUser + s.rng.Intn(MaxActivitiesPerUser-MinActivitiesPerUser+1)
		for i := 0; i < n; i++ {
			activities = append(activities, s.randomActivity(user, now))
		}
		perUser[user.ID] = n
	}
	if err := s.repos.Activities.CreateMany(ctx, activities); err != nil {
		return nil, fmt.Errorf("insert activities: %w", err)
	}
	s.success.Fprintf(s.out, "Inserted %d activities.\n", len(activities))

	s.info.Fprintln(s.out, "Inserting leaderboard entries...")
	entries := make([]models.Leaderboard, 0, len(users))
	for _, user := range users {
		entries = append(entries, models.Leaderboard{
			UserID:          user.ID,
			UserName:        user.Name,
			TeamID:          user.TeamID,
			TotalPoints:     user.TotalPoints,
			ActivitiesCount: perUser[user.ID],
			LastUpdated:     now,
		})
	}
	ranked := ranking.Rank(entries)
	rows := make([]*models.Leaderboard, len(ranked))
	for i := range ranked {
		rows[i] = &ranked[i]
	}
	if err := s.repos.Leaderboard.CreateMany(ctx, rows); err != nil {
		return nil, fmt.Errorf("insert leaderboard: %w", err)
	}
	s.success.Fprintf(s.out, "Inserted %d leaderboard entries.\n", len(rows))

	s.info.Fprintln(s.out, "Inserting workout suggestions...")
	workouts := seedWorkouts()
	for _, workout := range workouts {
		workout.ApplyDefaults(now)
	}
	if err := s.repos.Workouts.CreateMany(ctx, workouts); err != nil {
		return nil, fmt.Errorf("insert workouts: %w", err)
	}
	s.success.Fprintf(s.out, "Inserted %d workout suggestions.\n", len(workouts))

	summary, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	s.PrintSummary(summary)
	return summary, nil
}

// randomActivity draws one activity for user dated within the last 30 days.
func (s *Seeder) randomActivity(user *models.User, now time.Time) *models.Activity {
	activityType := models.ActivityTypes[s.rng.Intn(len(models.ActivityTypes))]
	duration := 30 + s.rng.Intn(151)

	distance := 0.0
	if models.IsDistanceActivity(activityType) {
		distance = math.Round((1+s.rng.Float64()*24)*100) / 100
	}

	return &models.Activity{
		UserID:         user.ID,
		ActivityType:   activityType,
		Duration:       duration,
		Distance:       distance,
		CaloriesBurned: duration * (5 + s.rng.Intn(11)),
		PointsEarned:   models.PointsFor(duration, distance),
		Date:           now.AddDate(0, 0, -s.rng.Intn(31)),
		Notes:          fmt.Sprintf("%s session with %s", activityType, user.Name),
	}
}

// Stats counts the records of every type.
func (s *Seeder) Stats(ctx context.Context) (*SeedSummary, error) {
	var summary SeedSummary
	counts := []struct {
		name  string
		count func(context.Context, map[string]any) (int64, error)
		dst   *int64
	}{
		{"teams", s.repos.Teams.Count, &summary.Teams},
		{"users", s.repos.Users.Count, &summary.Users},
		{"activities", s.repos.Activities.Count, &summary.Activities},
		{"leaderboard", s.repos.Leaderboard.Count, &summary.Leaderboard},
		{"workouts", s.repos.Workouts.Count, &summary.Workouts},
	}
	for _, c := range counts {
		n, err := c.count(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", c.name, err)
		}
		*c.dst = n
	}
	return &summary, nil
}

func (s *Seeder) PrintSummary(summary *SeedSummary) {
	line := "=================================================="
	fmt.Fprintln(s.out, "\n"+line)
	s.success.Fprintln(s.out, "Database population completed successfully!")
	fmt.Fprintln(s.out, line)
	fmt.Fprintf(s.out, "Teams: %d\n", summary.Teams)
	fmt.Fprintf(s.out, "Users: %d\n", summary.Users)
	fmt.Fprintf(s.out, "Activities: %d\n", summary.Activities)
	fmt.Fprintf(s.out, "Leaderboard entries: %d\n", summary.Leaderboard)
	fmt.Fprintf(s.out, "Workout suggestions: %d\n", summary.Workouts)
	fmt.Fprintln(s.out, line)
}
