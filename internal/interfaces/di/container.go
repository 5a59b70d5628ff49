// Package di wires the application's dependencies together.
package di

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"taskmill.dev/cli/internal/application/services"
	"taskmill.dev/cli/internal/core/plugin"
	"taskmill.dev/cli/internal/core/project"
	"taskmill.dev/cli/internal/core/rng"
	"taskmill.dev/cli/internal/core/task"
	"taskmill.dev/cli/internal/infrastructure/config"
	"taskmill.dev/cli/internal/infrastructure/logging"
	infraplugins "taskmill.dev/cli/internal/infrastructure/plugins"
	"taskmill.dev/cli/internal/infrastructure/registry"
	builtins "taskmill.dev/cli/internal/plugins"
)

// Overrides carries command-line flag values that take precedence over
// every configuration source. Nil pointers mean "flag not set".
type Overrides struct {
	ConfigPath string
	Debug      *bool
	Algorithm  *string
	Seed       *uint64
	Plugins    []string
}

// Container holds all application dependencies
type Container struct {
	Config    *config.Configuration
	Logger    *zap.Logger
	Providers *rng.Registry
}

// NewContainer loads configuration and builds the dependency container
func NewContainer(overrides Overrides) (*Container, error) {
	repo := config.NewRepository()
	if overrides.ConfigPath != "" {
		repo = config.NewRepositoryWithSources(
			config.NewFileSource(overrides.ConfigPath),
			config.NewEnvSource(),
		)
	}

	cfg, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	if overrides.Debug != nil {
		cfg.Debug = *overrides.Debug
	}
	if overrides.Algorithm != nil {
		cfg.RNGAlgorithm = *overrides.Algorithm
	}
	if overrides.Seed != nil {
		cfg.RNGSeed = *overrides.Seed
	}
	if overrides.Plugins != nil {
		cfg.Plugins = overrides.Plugins
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Providers: rng.NewDefaultRegistry(),
	}, nil
}

// PluginService builds the plugin service over the current configuration
func (c *Container) PluginService() *services.PluginService {
	catalog := builtins.NewCatalog(c.Providers, c.Config.RNGAlgorithm, c.Config.RNGSeed)
	return services.NewPluginService(catalog, c.Config.Plugins, c.Logger)
}

// BuildProject assembles a fresh project from the configured plugins
func (c *Container) BuildProject() (*project.Project, error) {
	return c.PluginService().BuildProject()
}

// RunTask builds the project and executes the named task
func (c *Container) RunTask(ctx context.Context, name string, streams task.IO) error {
	proj, err := c.BuildProject()
	if err != nil {
		return err
	}
	return services.NewExecutionService(c.Logger).Run(ctx, proj, name, streams)
}

// Provider resolves the configured RNG provider
func (c *Container) Provider() (rng.Provider, error) {
	return c.Providers.Provider(c.Config.RNGAlgorithm, c.Config.RNGSeed)
}

// DiscoverPlugins scans the configured plugin directories for manifests
func (c *Container) DiscoverPlugins(ctx context.Context) ([]plugin.Info, error) {
	discovery := infraplugins.NewFilesystemDiscovery(c.Config.PluginDirs, c.Logger)
	return discovery.Discover(ctx)
}

// RemotePlugins lists the remote registry's plugin index
func (c *Container) RemotePlugins(ctx context.Context) ([]plugin.Info, error) {
	client := registry.NewClient(c.Config.RegistryURL)
	return client.ListPlugins(ctx)
}

// Shutdown flushes buffered log output
func (c *Container) Shutdown() {
	// Sync fails on stderr in some environments; nothing useful to do.
	_ = c.Logger.Sync()
}
