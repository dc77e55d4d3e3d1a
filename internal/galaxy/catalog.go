package galaxy

import (
	"context"
	"slices"
	"strings"
	"sync"

	"starseed-server/internal/celestial"
	"starseed-server/internal/shared/errors"
)

const maxGalaxyNameLength = 255

// Catalog stores galaxy definitions by name. Generated bodies are never
// stored; only the name, type and seed needed to regenerate them.
type Catalog interface {
	Get(ctx context.Context, name string) (*celestial.Galaxy, error)
	List(ctx context.Context) ([]celestial.Galaxy, error)
	Register(ctx context.Context, g celestial.Galaxy) error
	Backend() string
}

// MemoryCatalog is a process-local catalog.
type MemoryCatalog struct {
	mu       sync.RWMutex
	galaxies map[string]celestial.Galaxy
}

func NewMemoryCatalog(initial ...celestial.Galaxy) *MemoryCatalog {
	c := &MemoryCatalog{galaxies: make(map[string]celestial.Galaxy, len(initial))}
	for _, g := range initial {
		c.galaxies[g.Name] = g
	}
	return c
}

func (c *MemoryCatalog) Backend() string { return "memory" }

func (c *MemoryCatalog) Get(_ context.Context, name string) (*celestial.Galaxy, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	g, ok := c.galaxies[name]
	if !ok {
		return nil, errors.NotFoundf("galaxy %q not found", name)
	}
	return &g, nil
}

func (c *MemoryCatalog) List(_ context.Context) ([]celestial.Galaxy, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]celestial.Galaxy, 0, len(c.galaxies))
	for _, g := range c.galaxies {
		out = append(out, g)
	}
	slices.SortFunc(out, func(a, b celestial.Galaxy) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (c *MemoryCatalog) Register(_ context.Context, g celestial.Galaxy) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.galaxies[g.Name]; exists {
		return errors.Conflictf("galaxy %q already exists", g.Name)
	}
	c.galaxies[g.Name] = g
	return nil
}

func validateGalaxy(g celestial.Galaxy) error {
	name := strings.TrimSpace(g.Name)
	if name == "" {
		return errors.Validation("galaxy name is required")
	}
	if name != g.Name {
		return errors.Validation("galaxy name must not have surrounding whitespace")
	}
	if len(g.Name) > maxGalaxyNameLength {
		return errors.Validationf("galaxy name must be at most %d bytes", maxGalaxyNameLength)
	}
	if !g.GalaxyType.Valid() {
		return errors.Validationf("unknown galaxy type %q", g.GalaxyType)
	}
	return nil
}
