package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"riftwatch/fetcher/assets"
	"riftwatch/pkg/models/champion"
	"riftwatch/pkg/redis"

	log "github.com/sirupsen/logrus"
)

const championCachePrefix = "ddragon:champions:"

// The catalog changes on the game release cadence, well above process lifetime.
const championCacheTTL = 24 * time.Hour

// ChampionCatalog is the process lifetime cache of the champion dataset.
// It is owned by the composition root and injected where needed, populated
// lazily on the first lookup and optionally backed by Redis.
type ChampionCatalog struct {
	source assets.CatalogSource
	redis  *redis.RedisClient

	mu     sync.RWMutex
	byKey  map[string]champion.Champion
	loaded bool
}

// ChampionCatalogDependencies is the dependency list for the catalog.
type ChampionCatalogDependencies struct {
	Source assets.CatalogSource
	Redis  *redis.RedisClient
}

// NewChampionCatalog creates a empty catalog. Nothing is fetched until needed.
func NewChampionCatalog(deps *ChampionCatalogDependencies) *ChampionCatalog {
	return &ChampionCatalog{
		source: deps.Source,
		redis:  deps.Redis,
	}
}

// Name returns the display name for a champion id, empty when unknown.
// Failures to load the catalog degrade to a empty name, never to a error:
// the display name is cosmetic for every caller.
func (c *ChampionCatalog) Name(ctx context.Context, championId int) string {
	if err := c.ensureLoaded(ctx); err != nil {
		log.WithError(err).Warn("champion catalog unavailable")
		return ""
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if entry, ok := c.byKey[strconv.Itoa(championId)]; ok {
		return entry.Name
	}
	return ""
}

// All returns a copy of the full catalog keyed by numeric champion key.
func (c *ChampionCatalog) All(ctx context.Context) (map[string]champion.Champion, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	catalog := make(map[string]champion.Champion, len(c.byKey))
	for key, entry := range c.byKey {
		catalog[key] = entry
	}
	return catalog, nil
}

// ensureLoaded populates the catalog once, going memory -> Redis -> ddragon.
func (c *ChampionCatalog) ensureLoaded(ctx context.Context) error {
	c.mu.RLock()
	if c.loaded {
		c.mu.RUnlock()
		return nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another request may have loaded it while waiting for the lock.
	if c.loaded {
		return nil
	}

	version, err := c.source.GetLatestVersion(ctx)
	if err != nil {
		return fmt.Errorf("couldn't get the catalog version: %w", err)
	}

	cacheKey := championCachePrefix + version

	// Try the Redis backing before going to the CDN.
	if c.redis != nil {
		if cached, err := c.redis.Get(ctx, cacheKey); err == nil {
			var catalog map[string]champion.Champion
			if err := json.Unmarshal([]byte(cached), &catalog); err == nil {
				c.byKey = catalog
				c.loaded = true
				return nil
			}
			log.WithError(err).Warn("discarding unparsable catalog cache entry")
		}
	}

	catalog, err := c.source.GetChampionCatalog(ctx, version)
	if err != nil {
		return fmt.Errorf("couldn't load the champion catalog: %w", err)
	}

	c.byKey = catalog
	c.loaded = true

	if c.redis != nil {
		if encoded, err := json.Marshal(catalog); err == nil {
			if err := c.redis.Set(ctx, cacheKey, encoded, championCacheTTL); err != nil {
				log.WithError(err).Warn("couldn't store the catalog on redis")
			}
		}
	}

	log.WithFields(log.Fields{
		"version":   version,
		"champions": len(catalog),
	}).Info("champion catalog loaded")

	return nil
}
