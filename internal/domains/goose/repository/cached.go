package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"goose-quotes/internal/domains/goose/model"
	"goose-quotes/pkg/cache"
)

const (
	gooseCacheKeyPrefix   = "goose:"
	gooseVersionKeySuffix = ":version"
	cacheTTL              = 15 * time.Minute

	// Outlives any in-flight read that started before the last write
	versionTTL = 2 * cacheTTL
)

// cachedRepository adds a Redis read-through cache for single-goose lookups.
// Lists are never cached.
//
// Every write bumps a per-goose version and drops the cached row. A read miss
// notes the version before going to the store and only fills the cache if no
// write happened in between, so a slow reader cannot put an old row back.
type cachedRepository struct {
	RepositoryInterface
	cache cache.Cache
}

// NewCachedRepository wraps next with a read-through cache
func NewCachedRepository(next RepositoryInterface, c cache.Cache) RepositoryInterface {
	return &cachedRepository{
		RepositoryInterface: next,
		cache:               c,
	}
}

func gooseCacheKey(id int64) string {
	return gooseCacheKeyPrefix + strconv.FormatInt(id, 10)
}

func gooseVersionKey(id int64) string {
	return gooseCacheKey(id) + gooseVersionKeySuffix
}

func (r *cachedRepository) FindByID(ctx context.Context, id int64) (*model.Goose, error) {
	key := gooseCacheKey(id)

	var g model.Goose
	found, err := r.cache.Get(ctx, key, &g)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	if found {
		return &g, nil
	}

	version, versionErr := r.cache.Version(ctx, gooseVersionKey(id))
	if versionErr != nil {
		log.Warn().Err(versionErr).Int64("goose_id", id).Msg("cache version read failed")
	}

	stored, err := r.RepositoryInterface.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Without a version there is no safe way to fill
	if versionErr == nil {
		r.fill(ctx, stored, version)
	}
	return stored, nil
}

func (r *cachedRepository) Insert(ctx context.Context, g *model.Goose) (*model.Goose, error) {
	created, err := r.RepositoryInterface.Insert(ctx, g)
	if err != nil {
		return nil, err
	}
	r.fill(ctx, created, 0)
	return created, nil
}

func (r *cachedRepository) Update(ctx context.Context, id int64, patch model.GoosePatch) (*model.Goose, error) {
	updated, err := r.RepositoryInterface.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, id)
	return updated, nil
}

// invalidate runs after a committed write: readers that started before it
// see a new version and skip their fill
func (r *cachedRepository) invalidate(ctx context.Context, id int64) {
	if _, err := r.cache.BumpVersion(ctx, gooseVersionKey(id), versionTTL); err != nil {
		log.Warn().Err(err).Int64("goose_id", id).Msg("cache version bump failed")
	}
	if err := r.cache.Delete(ctx, gooseCacheKey(id)); err != nil {
		log.Warn().Err(err).Int64("goose_id", id).Msg("cache invalidation failed")
	}
}

func (r *cachedRepository) fill(ctx context.Context, g *model.Goose, version int64) {
	stored, err := r.cache.SetIfVersion(ctx, gooseCacheKey(g.ID), g, cacheTTL, gooseVersionKey(g.ID), version)
	if err != nil {
		log.Warn().Err(err).Int64("goose_id", g.ID).Msg("cache write failed")
		return
	}
	if !stored {
		log.Debug().Int64("goose_id", g.ID).Msg("cache fill skipped, goose changed during read")
	}
}
