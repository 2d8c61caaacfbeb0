package repository

import (
	"context"
	"sort"

	"octofit/internal/models"
)

// LeaderboardRepository returns entries ordered by stored rank. Entries
// with rank 0 have not been ranked yet and come last; equal ranks fall back
// to the entry id so every backend yields the same order.
type LeaderboardRepository interface {
	Store[models.Leaderboard]
	FindAll(ctx context.Context) ([]models.Leaderboard, error)
	FindByTeamID(ctx context.Context, teamID string) ([]models.Leaderboard, error)
	FindTop(ctx context.Context, limit int) ([]models.Leaderboard, error)
}

type leaderboardRepository struct {
	Store[models.Leaderboard]
}

func NewLeaderboardRepository(store Store[models.Leaderboard]) LeaderboardRepository {
	return &leaderboardRepository{store}
}

func (r *leaderboardRepository) FindAll(ctx context.Context) ([]models.Leaderboard, error) {
	entries, err := r.Find(ctx, Query{})
	if err != nil {
		return nil, err
	}
	return byRank(entries), nil
}

func (r *leaderboardRepository) FindByTeamID(ctx context.Context, teamID string) ([]models.Leaderboard, error) {
	entries, err := r.Find(ctx, Where("team_id", teamID))
	if err != nil {
		return nil, err
	}
	return byRank(entries), nil
}

// FindTop sorts in process so unranked entries never displace ranked ones.
func (r *leaderboardRepository) FindTop(ctx context.Context, limit int) ([]models.Leaderboard, error) {
	entries, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func byRank(entries []models.Leaderboard) []models.Leaderboard {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if (a.Rank == 0) != (b.Rank == 0) {
			return b.Rank == 0
		}
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		return a.ID < b.ID
	})
	return entries
}
