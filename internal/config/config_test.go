package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, DriverMongo, cfg.Store.Driver)
	assert.Equal(t, ModeSnapshot, cfg.Store.DenormalizationMode)
	assert.Equal(t, "octofit_db", cfg.Mongo.Database)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Redis.NameCacheTTL)
	assert.Empty(t, cfg.Auth.JWTSecret)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("DENORMALIZATION_MODE", "recompute")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REQUEST_TIMEOUT", "2s")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, ModeRecompute, cfg.Store.DenormalizationMode)
	assert.Equal(t, 2*time.Second, cfg.Server.RequestTimeout)
	assert.Contains(t, cfg.Postgres.DSN(), "host=db.internal")
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")

	_, err := Load("does-not-exist.env")
	assert.ErrorContains(t, err, "STORE_DRIVER")
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	t.Setenv("DENORMALIZATION_MODE", "sometimes")

	_, err := Load("does-not-exist.env")
	assert.ErrorContains(t, err, "DENORMALIZATION_MODE")
}
