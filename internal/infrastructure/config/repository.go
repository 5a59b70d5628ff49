package config

import (
	"fmt"
)

// Repository layers configuration sources over the defaults. Later sources
// override earlier ones; the CLI applies flag overrides on top of the
// loaded result.
type Repository struct {
	sources []Source
}

// NewRepository creates a Repository with the standard source stack:
// defaults, then the user config file, then environment variables.
func NewRepository() *Repository {
	return &Repository{
		sources: []Source{
			NewFileSource(DefaultConfigPath()),
			NewEnvSource(),
		},
	}
}

// NewRepositoryWithSources creates a Repository over an explicit source
// stack, in override order. Used by tests.
func NewRepositoryWithSources(sources ...Source) *Repository {
	return &Repository{sources: sources}
}

// Load assembles the effective configuration
func (r *Repository) Load() (*Configuration, error) {
	cfg := Default()

	for _, source := range r.sources {
		overlay, err := source.Load()
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", source.Name(), err)
		}
		overlay.apply(cfg)
	}

	return cfg, nil
}
