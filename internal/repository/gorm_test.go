package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"octofit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormError(t *testing.T) {
	assert.ErrorIs(t, gormError("insert users", gorm.ErrDuplicatedKey), ErrConflict)
	assert.ErrorIs(t, gormError("get users", gorm.ErrRecordNotFound), ErrNotFound)

	other := gormError("find users", errors.New("connection refused"))
	assert.NotErrorIs(t, other, ErrConflict)
	assert.NotErrorIs(t, other, ErrNotFound)
	assert.Contains(t, other.Error(), "connection refused")
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// openTestPostgres connects to the database named by the DB_* variables and
// skips the test when DB_HOST is unset.
func openTestPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	host := os.Getenv("DB_HOST")
	if host == "" {
		t.Skip("DB_HOST not set, skipping Postgres store test")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host,
		envOr("DB_USER", "postgres"),
		envOr("DB_PASSWORD", "postgres"),
		envOr("DB_NAME", "octofit_test"),
		envOr("DB_PORT", "5432"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	t.Cleanup(func() {
		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{})
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestGormStoreUsers(t *testing.T) {
	ctx := context.Background()
	store := NewGormStore[models.User](openTestPostgres(t))
	_, err := store.DeleteAll(ctx)
	require.NoError(t, err)

	tony := &models.User{Name: "Tony Stark", Email: "ironman@marvel.com", Password: "x", TeamID: "team_marvel", Role: models.RoleLeader}
	require.NoError(t, store.Create(ctx, tony))
	assert.NotEmpty(t, tony.ID)

	steve := &models.User{ID: "steve", Name: "Steve Rogers", Email: "cap@marvel.com", Password: "x", TeamID: "team_marvel", Role: models.RoleMember}
	require.NoError(t, store.Create(ctx, steve))
	assert.Equal(t, "steve", steve.ID)

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		err := store.Create(ctx, &models.User{Name: "Impostor", Email: "ironman@marvel.com", Password: "x"})
		assert.ErrorIs(t, err, ErrConflict)

		_, err = store.Update(ctx, "steve", map[string]any{"email": "ironman@marvel.com"})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("duplicate id is a conflict", func(t *testing.T) {
		err := store.Create(ctx, &models.User{ID: "steve", Name: "Steve Again", Email: "again@marvel.com", Password: "x"})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("update keeps id", func(t *testing.T) {
		updated, err := store.Update(ctx, tony.ID, map[string]any{"total_points": 2500, "id": "hijack"})
		require.NoError(t, err)
		assert.Equal(t, tony.ID, updated.ID)
		assert.Equal(t, 2500, updated.TotalPoints)
		assert.Equal(t, "Tony Stark", updated.Name)

		_, err = store.Get(ctx, "hijack")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = store.Update(ctx, "missing", map[string]any{"name": "x"})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, store.Delete(ctx, "missing"), ErrNotFound)
	})

	t.Run("find and count by team", func(t *testing.T) {
		n, err := store.Count(ctx, map[string]any{"team_id": "team_marvel"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		found, err := store.Find(ctx, Where("team_id", "team_marvel").OrderBy("name", false).Take(1))
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Steve Rogers", found[0].Name)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "steve"))
		assert.ErrorIs(t, store.Delete(ctx, "steve"), ErrNotFound)
	})
}
