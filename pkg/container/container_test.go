package container

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goose-quotes/internal/config"
	gooseRepo "goose-quotes/internal/domains/goose/repository"
	"goose-quotes/internal/infrastructure/database"
)

func memoryConfig() *config.Config {
	return &config.Config{
		App:   config.AppConfig{Environment: "test", Port: "0"},
		Store: config.StoreConfig{Driver: config.StoreDriverMemory},
	}
}

func TestNewWithMemoryStore(t *testing.T) {
	c, err := New(t.Context(), memoryConfig(), &config.AIConfig{Timeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	assert.Nil(t, c.DB)
	assert.Nil(t, c.Cache)
	assert.Equal(t, map[string]string{"store": "ok", "cache": "disabled"}, c.HealthCheck(t.Context()))
}

func TestNewWithRedis(t *testing.T) {
	srv := miniredis.RunT(t)
	cfg := memoryConfig()
	cfg.Redis.Host = srv.Addr()

	c, err := New(t.Context(), cfg, &config.AIConfig{Timeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	require.NotNil(t, c.Cache)
	assert.Equal(t, "ok", c.HealthCheck(t.Context())["cache"])

	srv.Close()
	assert.Equal(t, "unavailable", c.HealthCheck(t.Context())["cache"])
}

func TestHealthCheckUsesDatabasePool(t *testing.T) {
	// The repository alone would report ok; the unconnected pool must win
	c := &Container{
		DB:        database.NewPostgresDB(&database.DBConfig{}),
		GooseRepo: gooseRepo.NewMemoryRepository(),
	}
	assert.Equal(t, "unavailable", c.HealthCheck(t.Context())["store"])
}
