package plugin

import (
	"taskmill.dev/cli/internal/core/task"
)

// TaskRegistry is the mutable handle a plugin registers tasks into.
// The project satisfies it; plugins never see more of the project than this.
type TaskRegistry interface {
	RegisterTask(t task.Task) error
}

// Plugin is a unit of extension that, when applied to a project, registers
// tasks into it.
//
// Apply mutates the registry and nothing else. A plugin performs no
// validation of its own: name conflicts and any other registration failure
// are reported by the registry.
type Plugin interface {
	// Name returns the plugin's identifier, as referenced in configuration.
	Name() string

	// Version returns the plugin's semantic version.
	Version() string

	// Description returns a one-line human-readable summary.
	Description() string

	// Apply registers the plugin's tasks into the given registry.
	Apply(registry TaskRegistry) error
}

// Info contains metadata about an applied or discoverable plugin
type Info struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}
