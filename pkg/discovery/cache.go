package discovery

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
)

// Cache persists scan results between launcher invocations so every
// keystroke does not trigger a filesystem walk.
type Cache struct {
	Path        string    `json:"-"`
	Root        string    `json:"root"`
	Entries     []Entry   `json:"entries"`
	LastScanned time.Time `json:"last_scanned"`
}

// NewCache creates a new cache instance
func NewCache(path string) *Cache {
	return &Cache{
		Path: path,
	}
}

// Load reads the cache from disk. A missing cache file is not an error,
// just empty.
func (c *Cache) Load() error {
	data, err := os.ReadFile(c.Path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to read cache")
	}

	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrap(err, "failed to parse cache")
	}
	return nil
}

// Save writes the cache to disk.
func (c *Cache) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create cache directory")
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode cache")
	}

	return os.WriteFile(c.Path, data, 0o644)
}

// Update replaces the cached entries and stamps the scan time.
func (c *Cache) Update(root string, entries []Entry) {
	c.Root = root
	c.Entries = entries
	c.LastScanned = time.Now()
}

// Fresh reports whether the cache holds a usable result for root: same
// root, non-empty, and scanned within ttl.
func (c *Cache) Fresh(root string, ttl time.Duration) bool {
	if c.Root != root || len(c.Entries) == 0 {
		return false
	}
	return time.Since(c.LastScanned) < ttl
}
