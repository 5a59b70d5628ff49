// Package plugins holds the builtin plugin catalog.
package plugins

import (
	"fmt"
	"sort"

	"taskmill.dev/cli/internal/core/plugin"
	"taskmill.dev/cli/internal/core/rng"
	"taskmill.dev/cli/internal/plugins/random"
)

// ErrUnknownPlugin is returned when configuration names a plugin the
// catalog does not carry.
var ErrUnknownPlugin = fmt.Errorf("unknown plugin")

// Catalog builds builtin plugins on demand. Plugins are constructed fresh
// for every lookup so a plugin applied to two projects shares no state.
type Catalog struct {
	providers *rng.Registry
	algorithm string
	seed      uint64

	builders map[string]func() plugin.Plugin
}

// NewCatalog creates a catalog wired to the given provider registry and
// RNG configuration
func NewCatalog(providers *rng.Registry, algorithm string, seed uint64) *Catalog {
	c := &Catalog{
		providers: providers,
		algorithm: algorithm,
		seed:      seed,
	}
	c.builders = map[string]func() plugin.Plugin{
		random.PluginName: c.buildRandom,
	}
	return c
}

func (c *Catalog) buildRandom() plugin.Plugin {
	return random.New(func() (rng.Provider, error) {
		return c.providers.Provider(c.algorithm, c.seed)
	})
}

// Plugin builds the named builtin plugin
func (c *Catalog) Plugin(name string) (plugin.Plugin, error) {
	builder, ok := c.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlugin, name)
	}
	return builder(), nil
}

// Names returns the builtin plugin names in sorted order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.builders))
	for name := range c.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
