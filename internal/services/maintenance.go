package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"octofit/internal/config"
	"octofit/internal/models"
	"octofit/internal/observability"
	"octofit/internal/ranking"
	"octofit/internal/repository"
)

// RecomputeMode selects how much of a leaderboard entry is rebuilt.
type RecomputeMode string

const (
	// RecomputeRanks re-ranks entries by their stored total points.
	RecomputeRanks RecomputeMode = "rank"
	// RecomputeFull first refreshes every entry from its user and the
	// user's activities, creating entries for users that have none.
	RecomputeFull RecomputeMode = "full"
)

func ParseRecomputeMode(raw string) (RecomputeMode, error) {
	switch RecomputeMode(raw) {
	case "", RecomputeRanks:
		return RecomputeRanks, nil
	case RecomputeFull:
		return RecomputeFull, nil
	}
	return "", fmt.Errorf("unknown recompute mode %q (want rank or full)", raw)
}

// MaintenanceService rebuilds the denormalized fields: team member counts
// and leaderboard totals and ranks.
type MaintenanceService struct {
	repos  *repository.Repositories
	policy string
	now    func() time.Time
}

func NewMaintenanceService(repos *repository.Repositories, policy string) *MaintenanceService {
	return &MaintenanceService{repos: repos, policy: policy, now: time.Now}
}

// AutoRecompute reports whether writes trigger a refresh.
func (s *MaintenanceService) AutoRecompute() bool {
	return s.policy == config.ModeRecompute
}

// AfterWrite refreshes member counts and the leaderboard when the service
// runs in recompute mode. Failures are logged, never returned: the write
// that triggered the refresh has already succeeded.
func (s *MaintenanceService) AfterWrite(ctx context.Context) {
	if !s.AutoRecompute() {
		return
	}
	if _, err := s.RecomputeMemberCounts(ctx); err != nil {
		log.Printf("Member count refresh failed: %v", err)
	}
	if _, err := s.RecomputeLeaderboard(ctx, RecomputeFull); err != nil {
		log.Printf("Leaderboard refresh failed: %v", err)
	}
}

// RecomputeMemberCounts sets every team's member_count to the number of
// users referencing it and returns the teams.
func (s *MaintenanceService) RecomputeMemberCounts(ctx context.Context) (teams []models.Team, err error) {
	defer func() { observability.RecordRecompute("member_counts", err) }()

	teams, err = s.repos.Teams.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range teams {
		n, err := s.repos.Users.CountByTeamID(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
		if int(n) == teams[i].MemberCount {
			continue
		}
		updated, err := s.repos.Teams.Update(ctx, teams[i].ID, map[string]any{"member_count": int(n)})
		if err != nil {
			return nil, err
		}
		teams[i] = *updated
	}
	return teams, nil
}

// RecomputeLeaderboard rebuilds the leaderboard and returns it ordered by
// rank.
func (s *MaintenanceService) RecomputeLeaderboard(ctx context.Context, mode RecomputeMode) (entries []models.Leaderboard, err error) {
	defer func() { observability.RecordRecompute("leaderboard_"+string(mode), err) }()

	if mode == RecomputeFull {
		if err := s.refreshEntries(ctx); err != nil {
			return nil, err
		}
	}

	// Entries come back in their current rank order, so point ties keep
	// the order they were last ranked in.
	current, err := s.repos.Leaderboard.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	ranked := ranking.Rank(current)
	for _, entry := range ranking.Changed(current, ranked) {
		if _, err := s.repos.Leaderboard.Update(ctx, entry.ID, map[string]any{"rank": entry.Rank}); err != nil {
			return nil, err
		}
	}
	return ranked, nil
}

// refreshEntries copies each user's name, team and points onto its entry
// and recounts activities. Entries of deleted users are left as they are.
func (s *MaintenanceService) refreshEntries(ctx context.Context) error {
	users, err := s.repos.Users.FindAll(ctx)
	if err != nil {
		return err
	}
	entries, err := s.repos.Leaderboard.FindAll(ctx)
	if err != nil {
		return err
	}
	byUser := make(map[string]models.Leaderboard, len(entries))
	for _, entry := range entries {
		byUser[entry.UserID] = entry
	}

	now := s.now()
	for _, user := range users {
		count, err := s.repos.Activities.CountByUserID(ctx, user.ID)
		if err != nil {
			return err
		}

		entry, ok := byUser[user.ID]
		if !ok {
			created := &models.Leaderboard{
				UserID:          user.ID,
				UserName:        user.Name,
				TeamID:          user.TeamID,
				TotalPoints:     user.TotalPoints,
				ActivitiesCount: int(count),
				LastUpdated:     now,
			}
			if err := s.repos.Leaderboard.Create(ctx, created); err != nil {
				return err
			}
			continue
		}

		if entry.UserName == user.Name && entry.TeamID == user.TeamID &&
			entry.TotalPoints == user.TotalPoints && entry.ActivitiesCount == int(count) {
			continue
		}
		_, err = s.repos.Leaderboard.Update(ctx, entry.ID, map[string]any{
			"user_name":        user.Name,
			"team_id":          user.TeamID,
			"total_points":     user.TotalPoints,
			"activities_count": int(count),
			"last_updated":     now,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
