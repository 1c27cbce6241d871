package service

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/templui/fileserver/internal/model"
)

// resolvedPath is a directory's absolute path and its distance from the root.
type resolvedPath struct {
	path  string
	depth int
}

// pathCache maps directory ids to resolved paths. Directories are never
// renamed or moved, so an entry stays correct for the life of the record.
// A nil *pathCache is a disabled cache.
type pathCache struct {
	lru *expirable.LRU[model.DirectoryID, resolvedPath]
}

func newPathCache(size int, ttl time.Duration) *pathCache {
	if size <= 0 {
		return nil
	}
	return &pathCache{lru: expirable.NewLRU[model.DirectoryID, resolvedPath](size, nil, ttl)}
}

func (c *pathCache) Get(id model.DirectoryID) (resolvedPath, bool) {
	if c == nil {
		return resolvedPath{}, false
	}
	rp, ok := c.lru.Get(id)
	if ok {
		pathCacheHits.Inc()
		return rp, true
	}
	pathCacheMisses.Inc()
	return resolvedPath{}, false
}

func (c *pathCache) Add(id model.DirectoryID, rp resolvedPath) {
	if c == nil {
		return
	}
	c.lru.Add(id, rp)
}
