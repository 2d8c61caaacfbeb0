package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"octofit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[models.Team]()

	team := &models.Team{Name: "Team Marvel", Description: "Earth's Mightiest Heroes"}
	require.NoError(t, store.Create(ctx, team))
	assert.NotEmpty(t, team.ID)

	got, err := store.Get(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, team, got)

	_, err = store.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStoreKeepsClientID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[models.Team]()

	require.NoError(t, store.Create(ctx, &models.Team{ID: "team_dc", Name: "Team DC"}))
	err := store.Create(ctx, &models.Team{ID: "team_dc", Name: "Team DC again"})
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestMemoryStoreUniqueEmail(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[models.User]("email")

	first := &models.User{Name: "Tony Stark", Email: "ironman@marvel.com", Password: "x"}
	require.NoError(t, store.Create(ctx, first))

	err := store.Create(ctx, &models.User{Name: "Impostor", Email: "ironman@marvel.com", Password: "y"})
	assert.True(t, errors.Is(err, ErrConflict))

	n, err := store.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	second := &models.User{Name: "Steve Rogers", Email: "captainamerica@marvel.com", Password: "z"}
	require.NoError(t, store.Create(ctx, second))
	_, err = store.Update(ctx, second.ID, map[string]any{"email": "ironman@marvel.com"})
	assert.True(t, errors.Is(err, ErrConflict))

	unchanged, err := store.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "captainamerica@marvel.com", unchanged.Email)
}

func TestMemoryStoreUpdateOnlyListedFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[models.User]()

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	user := &models.User{Name: "Bruce Banner", Email: "hulk@marvel.com", Password: "x", TeamID: "team_marvel", TotalPoints: 2100, CreatedAt: created}
	require.NoError(t, store.Create(ctx, user))

	updated, err := store.Update(ctx, user.ID, map[string]any{"total_points": 2200, "id": "hijack"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, updated.ID)
	assert.Equal(t, 2200, updated.TotalPoints)
	assert.Equal(t, "team_marvel", updated.TeamID)
	assert.Equal(t, "Bruce Banner", updated.Name)
	assert.True(t, created.Equal(updated.CreatedAt))

	_, err = store.Update(ctx, "missing", map[string]any{"name": "x"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStoreFindSortLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaderboardRepository(NewMemoryStore[models.Leaderboard]())

	entries := []*models.Leaderboard{
		{UserID: "a", TeamID: "team_dc", Rank: 3},
		{UserID: "b", TeamID: "team_marvel", Rank: 1},
		{UserID: "c", TeamID: "team_dc", Rank: 2},
	}
	require.NoError(t, repo.CreateMany(ctx, entries))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{all[0].UserID, all[1].UserID, all[2].UserID})

	top, err := repo.FindTop(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 1, top[0].Rank)
	assert.Equal(t, 2, top[1].Rank)

	dc, err := repo.FindByTeamID(ctx, "team_dc")
	require.NoError(t, err)
	require.Len(t, dc, 2)
	assert.Equal(t, "c", dc[0].UserID)
}

func TestLeaderboardUnrankedEntriesSortLast(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaderboardRepository(NewMemoryStore[models.Leaderboard]())

	require.NoError(t, repo.CreateMany(ctx, []*models.Leaderboard{
		{ID: "new", UserID: "new", TotalPoints: 5000},
		{ID: "second", UserID: "second", Rank: 2},
		{ID: "tie-b", UserID: "tie-b", Rank: 1},
		{ID: "tie-a", UserID: "tie-a", Rank: 1},
	}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	var got []string
	for _, entry := range all {
		got = append(got, entry.ID)
	}
	assert.Equal(t, []string{"tie-a", "tie-b", "second", "new"}, got)

	top, err := repo.FindTop(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "tie-a", top[0].ID)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[models.Workout]()

	workout := &models.Workout{Name: "Warrior Flexibility", Difficulty: models.DifficultyBeginner, Category: "flexibility"}
	require.NoError(t, store.Create(ctx, workout))
	require.NoError(t, store.Delete(ctx, workout.ID))

	assert.True(t, errors.Is(store.Delete(ctx, workout.ID), ErrNotFound))

	require.NoError(t, store.Create(ctx, &models.Workout{Name: "a"}))
	require.NoError(t, store.Create(ctx, &models.Workout{Name: "b"}))
	n, err := store.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	remaining, err := store.Find(ctx, Query{})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
