package services

import (
	"fmt"

	"go.uber.org/zap"

	"taskmill.dev/cli/internal/core/project"
	"taskmill.dev/cli/internal/plugins"
)

// PluginService assembles projects from the configured plugin set
type PluginService struct {
	catalog *plugins.Catalog
	enabled []string
	log     *zap.Logger
}

// NewPluginService creates a PluginService
func NewPluginService(catalog *plugins.Catalog, enabled []string, log *zap.Logger) *PluginService {
	return &PluginService{
		catalog: catalog,
		enabled: enabled,
		log:     log,
	}
}

// BuildProject creates a fresh project and applies every enabled plugin to
// it, in configuration order. The first unknown plugin or failed
// registration aborts the build.
func (s *PluginService) BuildProject() (*project.Project, error) {
	proj := project.New()

	for _, name := range s.enabled {
		pl, err := s.catalog.Plugin(name)
		if err != nil {
			return nil, err
		}
		if err := proj.ApplyPlugin(pl); err != nil {
			return nil, err
		}
		s.log.Debug("applied plugin",
			zap.String("plugin", pl.Name()),
			zap.String("version", pl.Version()),
			zap.Int("tasks", proj.TaskCount()),
		)
	}

	if len(s.enabled) == 0 {
		return nil, fmt.Errorf("no plugins enabled")
	}
	return proj, nil
}

// BuiltinPlugins returns the names of all plugins the catalog carries
func (s *PluginService) BuiltinPlugins() []string {
	return s.catalog.Names()
}
