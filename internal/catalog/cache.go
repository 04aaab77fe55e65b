package catalog

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	pkgcatalog "github.com/HerbHall/apidex/pkg/catalog"
)

// Cache defaults used when config leaves them unset.
const (
	DefaultCacheTTL     = 5 * time.Minute
	DefaultCacheCleanup = 10 * time.Minute
)

// queryCache memoizes query results. The catalog never changes after load,
// so entries only expire to bound memory.
type queryCache struct {
	cache  *gocache.Cache
	logger *zap.Logger
}

func newQueryCache(ttl, cleanup time.Duration, logger *zap.Logger) *queryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if cleanup <= 0 {
		cleanup = DefaultCacheCleanup
	}
	return &queryCache{cache: gocache.New(ttl, cleanup), logger: logger}
}

func cacheKey(q Query) string {
	q = q.Normalize()
	return strings.Join([]string{string(q.Sort), q.Category, q.AuthType, q.Search}, "\x00")
}

func (c *queryCache) get(q Query) ([]pkgcatalog.APIRecord, bool) {
	v, found := c.cache.Get(cacheKey(q))
	if !found {
		cacheMissesTotal.Inc()
		return nil, false
	}
	records, ok := v.([]pkgcatalog.APIRecord)
	if !ok {
		c.logger.Error("unexpected value type in query cache")
		cacheMissesTotal.Inc()
		return nil, false
	}
	cacheHitsTotal.Inc()
	return pkgcatalog.CloneRecords(records), true
}

func (c *queryCache) set(q Query, records []pkgcatalog.APIRecord) {
	c.cache.SetDefault(cacheKey(q), pkgcatalog.CloneRecords(records))
}

func (c *queryCache) len() int {
	return c.cache.ItemCount()
}
