// Package plugin holds custody plugin implementations and the catalog the
// administrative API resolves them from.
package plugin

import (
	"fmt"
	"sort"
	"sync"

	"custody-ledger/internal/core/ports"
)

// Catalog is a name-indexed registry of plugin instances. Registration
// happens at startup; lookups are concurrent-safe.
type Catalog struct {
	mu      sync.RWMutex
	plugins map[string]ports.Plugin
}

func NewCatalog() *Catalog {
	return &Catalog{plugins: make(map[string]ports.Plugin)}
}

// Register adds a plugin under its own name. Duplicate names are a wiring
// mistake and fail loudly.
func (c *Catalog) Register(p ports.Plugin) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	name := p.Name()
	if name == "" {
		return fmt.Errorf("plugin has empty name")
	}
	if _, exists := c.plugins[name]; exists {
		return fmt.Errorf("plugin %q already registered", name)
	}
	c.plugins[name] = p
	return nil
}

func (c *Catalog) Get(name string) (ports.Plugin, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.plugins[name]
	return p, ok
}

func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.plugins))
	for name := range c.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
