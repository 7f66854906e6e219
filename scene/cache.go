package scene

import (
	"fmt"
	"log/slog"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/internal/cache"
)

// Cache remembers built shapes by their definition, so rebuilding an edited
// document only tessellates the shapes that changed. Cached meshes are
// shared between builds and must not be modified.
//
// Cache is safe for concurrent use.
type Cache struct {
	lru *cache.LRU[string, Built]
}

// NewCache creates a cache holding at most capacity shapes.
func NewCache(capacity int) *Cache {
	return &Cache{lru: cache.New[string, Built](capacity)}
}

// Build is like Document.Build but reuses cached results for shapes whose
// definition and pixels per unit are unchanged.
func (c *Cache) Build(d *Document) ([]Built, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	out := make([]Built, 0, len(d.Shapes))
	reused := 0
	for i := range d.Shapes {
		s := &d.Shapes[i]
		key, err := cacheKey(s, d.ppu())
		if err != nil {
			return nil, fmt.Errorf("scene: shape %q: %w", s.Name, err)
		}
		if b, ok := c.lru.Get(key); ok {
			out = append(out, b)
			reused++
			continue
		}
		b, err := d.buildShape(s, nil)
		if err != nil {
			return nil, fmt.Errorf("scene: shape %q: %w", s.Name, err)
		}
		c.lru.Set(key, b)
		out = append(out, b)
	}

	shapes.Logger().Debug("scene: cached build",
		slog.Int("shapes", len(out)),
		slog.Int("reused", reused))
	return out, nil
}

// Stats reports how many shape lookups were served from the cache and how
// many had to be built.
func (c *Cache) Stats() (hits, misses uint64) {
	s := c.lru.Stats()
	return s.Hits, s.Misses
}

// Len returns the number of cached shapes.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// cacheKey is the canonical YAML form of the shape plus the pixel density.
func cacheKey(s *Shape, ppu float64) (string, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(ppu, 'g', -1, 64) + "\n" + string(data), nil
}
