package rng

import (
	"fmt"
	"sort"
	"sync"
)

// ErrProviderUnavailable is returned when a provider is requested under an
// algorithm name the registry does not hold. Callers treat it as a
// dependency-configuration failure: the requesting task aborts before
// producing output.
var ErrProviderUnavailable = fmt.Errorf("rng provider unavailable")

// Registry maps algorithm names to provider factories
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// NewDefaultRegistry creates a Registry with all built-in algorithms
// registered
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(AlgorithmPCG, newPCG)
	r.Register(AlgorithmChaCha8, newChaCha8)
	r.Register(AlgorithmCrypto, newCrypto)
	return r
}

// Register adds a factory under an algorithm name, replacing any previous
// registration
func (r *Registry) Register(algorithm string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[algorithm] = factory
}

// Provider builds a provider for the named algorithm
func (r *Registry) Provider(algorithm string, seed uint64) (Provider, error) {
	r.mu.RLock()
	factory, ok := r.factories[algorithm]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderUnavailable, algorithm)
	}
	return factory(seed)
}

// Algorithms returns the registered algorithm names in sorted order
func (r *Registry) Algorithms() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
