package registry

import (
	"sync"

	"github.com/aretw0/pergola/pkg/domain"
)

// ViewConfig describes which views a component kind supports.
type ViewConfig struct {
	DefaultView    domain.ViewType
	AvailableViews []domain.ViewType
}

// Registry maps component identifiers to their view configuration.
type Registry struct {
	mu    sync.RWMutex
	views map[string]ViewConfig
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		views: make(map[string]ViewConfig),
	}
}

// Register adds a component kind to the registry.
// If a kind with the same id exists, it is overwritten.
func (r *Registry) Register(id string, cfg ViewConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[id] = cfg
}

// Lookup returns the view configuration for id.
func (r *Registry) Lookup(id string) (ViewConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.views[id]
	return cfg, ok
}

// DefaultView returns the default view for id, or table for unknown kinds.
func (r *Registry) DefaultView(id string) domain.ViewType {
	if cfg, ok := r.Lookup(id); ok {
		return cfg.DefaultView
	}
	return domain.ViewTable
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared registry of built-in component kinds.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		for id, cfg := range builtin {
			defaultReg.Register(id, cfg)
		}
	})
	return defaultReg
}
