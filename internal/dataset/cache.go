package dataset

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/patrickmn/go-cache"
)

// Cache memoizes parsed tables by content identity so re-uploading the same
// file skips the decode. This is purely a performance optimization: a cache
// miss always falls back to a full parse.
type Cache struct {
	parsed *cache.Cache
}

// NewCache creates a parse cache. Entries expire after ttl and expired items
// are purged every ttl/2.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{parsed: cache.New(ttl, ttl/2)}
}

// ContentKey derives the cache key for an upload from its filename and a
// 64-bit hash of the raw bytes.
func ContentKey(filename string, content []byte) string {
	return filename + ":" + strconv.FormatUint(xxhash.Sum64(content), 16)
}

// Load parses the upload, consulting the cache first. Failures are never
// cached; the same typed errors as Load are returned.
func (c *Cache) Load(filename string, content []byte) (*Table, error) {
	key := ContentKey(filename, content)
	if hit, found := c.parsed.Get(key); found {
		return hit.(*Table), nil
	}
	tbl, err := Load(filename, content)
	if err != nil {
		return nil, err
	}
	c.parsed.Set(key, tbl, cache.DefaultExpiration)
	return tbl, nil
}
