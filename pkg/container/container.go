package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"goose-quotes/internal/config"
	gooseHandler "goose-quotes/internal/domains/goose/handler"
	gooseRepo "goose-quotes/internal/domains/goose/repository"
	gooseService "goose-quotes/internal/domains/goose/service"
	"goose-quotes/internal/infrastructure/ai"
	infraCache "goose-quotes/internal/infrastructure/cache"
	"goose-quotes/internal/infrastructure/database"
	"goose-quotes/pkg/cache"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph.
// It owns the lifecycle of every collaborator client.
type Container struct {
	// Infrastructure
	Config   *config.Config
	AIConfig *config.AIConfig
	DB       *database.PostgresDB // nil with the memory store
	Cache    cache.Cache          // nil when Redis is disabled
	redis    *infraCache.RedisCache

	// Repository
	GooseRepo gooseRepo.RepositoryInterface

	// Service
	Generator    gooseService.Generator
	GooseService gooseService.ServiceInterface

	// Handlers
	GooseHandler *gooseHandler.GooseHandler
	EventHandler *gooseHandler.EventHandler
}

// NewContainer loads configuration from the environment and builds the container
func NewContainer(ctx context.Context) (*Container, error) {
	log.Info().Msg("Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	aiCfg, err := config.LoadAIConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load ai config: %w", err)
	}

	return New(ctx, cfg, aiCfg)
}

// New builds the dependency graph in order:
// infrastructure -> repository -> service -> handlers
func New(ctx context.Context, cfg *config.Config, aiCfg *config.AIConfig) (*Container, error) {
	c := &Container{
		Config:   cfg,
		AIConfig: aiCfg,
	}

	if err := c.initStore(ctx); err != nil {
		return nil, err
	}
	c.initCache(ctx)
	c.initGenerator()

	c.GooseService = gooseService.NewGooseService(c.GooseRepo, c.Generator)

	c.GooseHandler = gooseHandler.NewGooseHandler(c.GooseService)
	c.EventHandler = gooseHandler.NewEventHandler(c.GooseService, cfg.App.AllowedOrigins)

	log.Info().
		Str("store", cfg.Store.Driver).
		Bool("cache", c.Cache != nil).
		Bool("ai", aiCfg.Enabled()).
		Msg("DI Container initialized")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initStore(ctx context.Context) error {
	if c.Config.Store.Driver == config.StoreDriverMemory {
		log.Warn().Msg("Using in-memory goose store; data is lost on restart")
		c.GooseRepo = gooseRepo.NewMemoryRepository()
		return nil
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	c.DB = db
	c.GooseRepo = gooseRepo.NewPostgresRepository(db.Pool)
	return nil
}

// initCache wraps the repository with Redis when configured.
// A Redis failure is not critical: the service runs uncached.
func (c *Container) initCache(ctx context.Context) {
	if !c.Config.Redis.Enabled() {
		return
	}

	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed (non-critical), running without cache")
		_ = rc.Close()
		return
	}

	c.redis = rc
	c.Cache = rc
	c.GooseRepo = gooseRepo.NewCachedRepository(c.GooseRepo, rc)
}

func (c *Container) initGenerator() {
	if !c.AIConfig.Enabled() {
		log.Warn().Msg("AI_API_KEY not set - quote and bio generation will fail")
		c.Generator = ai.Unavailable{}
		return
	}

	client := ai.NewClient(*c.AIConfig)
	c.Generator = ai.NewPersonaWriter(client, c.AIConfig.Temperature, c.AIConfig.MaxTokens)
}

// ========================================
// HELPER METHODS
// ========================================

// HealthCheck reports the reachability of each collaborator
func (c *Container) HealthCheck(ctx context.Context) map[string]string {
	status := map[string]string{
		"store": "ok",
		"cache": "disabled",
	}

	if err := c.pingStore(ctx); err != nil {
		log.Warn().Err(err).Msg("store health check failed")
		status["store"] = "unavailable"
	}
	if c.Cache != nil {
		status["cache"] = "ok"
		if err := c.Cache.Ping(ctx); err != nil {
			status["cache"] = "unavailable"
		}
	}
	return status
}

// pingStore uses the pool health check when Postgres is wired
func (c *Container) pingStore(ctx context.Context) error {
	if c.DB != nil {
		return c.DB.HealthCheck(ctx)
	}
	return c.GooseRepo.Ping(ctx)
}

// Cleanup releases collaborator connections on shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("Database connections closed")
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		} else {
			log.Info().Msg("Redis connections closed")
		}
	}
}
