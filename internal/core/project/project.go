package project

import (
	"fmt"
	"sort"
	"sync"

	"taskmill.dev/cli/internal/core/plugin"
	"taskmill.dev/cli/internal/core/task"
)

// ErrDuplicateTask is returned when a task is registered under a name the
// project already holds. Registration conflicts are the registry's to
// report; plugins never check for them.
var ErrDuplicateTask = fmt.Errorf("task already registered")

// ErrUnknownTask is returned when a task is looked up under a name the
// project does not hold.
var ErrUnknownTask = fmt.Errorf("unknown task")

// Project is the mutable registry plugins apply themselves to.
//
// It records which plugins were applied and which tasks they registered.
// Applying the same plugin twice is not deduplicated: the second Apply runs
// like the first, and any duplicate task registration surfaces as
// ErrDuplicateTask from the registry.
type Project struct {
	mu      sync.RWMutex
	tasks   map[string]task.Task
	applied []plugin.Info
}

var _ plugin.TaskRegistry = (*Project)(nil)

// New creates an empty Project
func New() *Project {
	return &Project{
		tasks: make(map[string]task.Task),
	}
}

// RegisterTask adds a task to the project's registry
func (p *Project) RegisterTask(t task.Task) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	name := t.Name().Value()
	if _, exists := p.tasks[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTask, name)
	}
	p.tasks[name] = t
	return nil
}

// Task looks up a registered task by name
func (p *Project) Task(name string) (task.Task, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	t, ok := p.tasks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTask, name)
	}
	return t, nil
}

// TaskNames returns the names of all registered tasks in sorted order
func (p *Project) TaskNames() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	names := make([]string, 0, len(p.tasks))
	for name := range p.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tasks returns all registered tasks, ordered by name
func (p *Project) Tasks() []task.Task {
	p.mu.RLock()
	defer p.mu.RUnlock()

	names := make([]string, 0, len(p.tasks))
	for name := range p.tasks {
		names = append(names, name)
	}
	sort.Strings(names)

	tasks := make([]task.Task, 0, len(names))
	for _, name := range names {
		tasks = append(tasks, p.tasks[name])
	}
	return tasks
}

// TaskCount returns the number of registered tasks
func (p *Project) TaskCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.tasks)
}

// ApplyPlugin runs a plugin's registration callback against this project
// and records it as applied
func (p *Project) ApplyPlugin(pl plugin.Plugin) error {
	if err := pl.Apply(p); err != nil {
		return fmt.Errorf("applying plugin %s: %w", pl.Name(), err)
	}

	p.mu.Lock()
	p.applied = append(p.applied, plugin.Info{
		Name:        pl.Name(),
		Version:     pl.Version(),
		Description: pl.Description(),
	})
	p.mu.Unlock()
	return nil
}

// AppliedPlugins returns the plugins applied to this project, in
// application order
func (p *Project) AppliedPlugins() []plugin.Info {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]plugin.Info, len(p.applied))
	copy(out, p.applied)
	return out
}
