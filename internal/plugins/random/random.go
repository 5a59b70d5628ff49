// Package random provides the random-number plugin.
//
// The plugin registers a single task, "random", whose action draws one
// uniformly-distributed float64 in [0, 1) from the configured provider and
// prints it as a RANDOM: line.
package random

import (
	"context"
	"fmt"
	"strconv"

	"taskmill.dev/cli/internal/core/plugin"
	"taskmill.dev/cli/internal/core/rng"
	"taskmill.dev/cli/internal/core/task"
)

const (
	// PluginName identifies the plugin in configuration.
	PluginName = "random-number"

	// TaskName is the name the plugin registers its task under.
	TaskName = "random"

	pluginVersion = "1.0.0"
)

// ProviderSource resolves the provider the random task draws from. The
// lookup happens at execution time, not at registration time: a
// misconfigured algorithm only fails when the task actually runs.
type ProviderSource func() (rng.Provider, error)

// Plugin registers the random task into a project
type Plugin struct {
	source ProviderSource
}

var _ plugin.Plugin = (*Plugin)(nil)

// New creates the random-number plugin backed by the given provider source
func New(source ProviderSource) *Plugin {
	return &Plugin{source: source}
}

// Name returns the plugin identifier
func (p *Plugin) Name() string {
	return PluginName
}

// Version returns the plugin version
func (p *Plugin) Version() string {
	return pluginVersion
}

// Description returns the plugin summary
func (p *Plugin) Description() string {
	return "Registers the random task, which prints one uniform value in [0,1)"
}

// Apply registers the random task. Conflicts with an existing task of the
// same name are the registry's to report.
func (p *Plugin) Apply(registry plugin.TaskRegistry) error {
	return registry.RegisterTask(task.NewFunc(
		task.MustName(TaskName),
		"Print one uniformly-distributed random value in [0,1)",
		p.runRandom,
	))
}

// runRandom is the task action: obtain a provider, draw one value, emit one
// line. If no provider can be resolved the action fails before producing
// any output.
func (p *Plugin) runRandom(ctx context.Context, streams task.IO) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	provider, err := p.source()
	if err != nil {
		return fmt.Errorf("resolving random provider: %w", err)
	}

	value := provider.Float64()
	_, err = fmt.Fprintf(streams.Stdout, "RANDOM: %s\n", FormatValue(value))
	return err
}

// FormatValue renders a drawn value as a locale-independent decimal
// literal. The 'f' format never switches to exponent notation, so every
// value in (0, 1) prints as "0." followed by digits.
func FormatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
