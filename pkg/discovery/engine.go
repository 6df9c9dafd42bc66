package discovery

import "time"

// Mode selects a traversal strategy.
type Mode int

const (
	// Unbounded walks the tree to arbitrary depth.
	Unbounded Mode = iota
	// Structured reads a fixed two-level owner/repo layout.
	Structured
)

// Engine wraps scanning with a best-effort result cache.
type Engine struct {
	Root  string
	Mode  Mode
	Cache *Cache
	TTL   time.Duration
}

// NewEngine creates a discovery engine. An empty cachePath disables
// caching entirely.
func NewEngine(root string, mode Mode, cachePath string, ttl time.Duration) *Engine {
	e := &Engine{
		Root: root,
		Mode: mode,
		TTL:  ttl,
	}
	if cachePath != "" {
		e.Cache = NewCache(cachePath)
	}
	return e
}

// Entries returns discovered repositories, reusing the cache when it is
// fresh for this root. forceRefresh always rescans. Cache failures are
// never fatal; they fall through to a fresh scan.
func (e *Engine) Entries(forceRefresh bool) []Entry {
	if !forceRefresh && e.Cache != nil {
		if err := e.Cache.Load(); err == nil && e.Cache.Fresh(e.Root, e.TTL) {
			return e.Cache.Entries
		}
	}

	entries := e.scan()

	if e.Cache != nil {
		e.Cache.Update(e.Root, entries)
		_ = e.Cache.Save() // Best effort save
	}

	return entries
}

func (e *Engine) scan() []Entry {
	if e.Mode == Structured {
		return ScanStructured(e.Root)
	}
	return Scan(e.Root)
}
