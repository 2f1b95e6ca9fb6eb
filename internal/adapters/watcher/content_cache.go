package watcher

import (
	"errors"
	"io/fs"
	"os"
	"sync"
	"unique"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/zerr"
)

// ContentCache remembers the content fingerprint of watched files so that writes which
// leave a file unchanged, as many editors do on save, do not trigger invalidations.
type ContentCache struct {
	mu      sync.Mutex
	entries map[unique.Handle[string]]uint64
}

// NewContentCache creates an empty content cache.
func NewContentCache() *ContentCache {
	return &ContentCache{entries: make(map[unique.Handle[string]]uint64)}
}

// Changed reads path and reports whether its content differs from the last observation.
// Unknown paths count as changed. A missing file counts as changed and is forgotten.
func (c *ContentCache) Changed(path string) (bool, error) {
	//nolint:gosec // path comes from the watcher
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.Forget(path)
			return true, nil
		}
		return true, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}

	sum := xxhash.Sum64(data)
	key := unique.Make(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	prev, ok := c.entries[key]
	c.entries[key] = sum
	return !ok || prev != sum, nil
}

// Observe records the current content of path without reporting a change.
func (c *ContentCache) Observe(path string) error {
	_, err := c.Changed(path)
	return err
}

// Forget drops path from the cache.
func (c *ContentCache) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, unique.Make(path))
}

// Len returns the number of remembered files.
func (c *ContentCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
