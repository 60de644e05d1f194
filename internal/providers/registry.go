package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/dataTrevor/automatic-create-dashboard/internal/domain"
	"github.com/dataTrevor/automatic-create-dashboard/internal/util"
)

// Options carries the per-run settings a provider is built with.
type Options struct {
	Region  string
	Profile string
}

// Factory is a constructor function that builds a Provider for a region.
type Factory func(ctx context.Context, opts Options) (domain.Provider, error)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// Register adds a provider factory to the registry.
// It panics on empty name, nil factory, or duplicate registration
// (programmer errors detected at startup).
func Register(name string, factory Factory) {
	normalizedName := util.NormalizeKey(name)
	if normalizedName == "" {
		panic("providers: empty provider name")
	}
	if factory == nil {
		panic("providers: nil factory")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[normalizedName]; exists {
		panic(fmt.Sprintf("providers: provider %q already registered", name))
	}

	registry[normalizedName] = factory
}

// Get constructs and returns the Provider registered under name.
func Get(ctx context.Context, name string, opts Options) (domain.Provider, error) {
	normalizedName := util.NormalizeKey(name)
	mu.RLock()
	factory, ok := registry[normalizedName]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("providers: unknown provider %q", name)
	}

	provider, err := factory(ctx, opts)
	if err != nil {
		return nil, err
	}

	return provider, nil
}

// Reset clears the provider registry. Intended for use in tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = map[string]Factory{}
}

// List returns the names of all registered providers.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	return names
}
