package project

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmill.dev/cli/internal/core/plugin"
	"taskmill.dev/cli/internal/core/task"
)

func newTestTask(name string) task.Task {
	return task.NewFunc(task.MustName(name), "test task", func(ctx context.Context, streams task.IO) error {
		return nil
	})
}

// testPlugin registers a fixed set of task names
type testPlugin struct {
	name  string
	tasks []string
}

func (p *testPlugin) Name() string        { return p.name }
func (p *testPlugin) Version() string     { return "0.0.1" }
func (p *testPlugin) Description() string { return "test plugin" }

func (p *testPlugin) Apply(registry plugin.TaskRegistry) error {
	for _, name := range p.tasks {
		if err := registry.RegisterTask(newTestTask(name)); err != nil {
			return err
		}
	}
	return nil
}

// TestProject_RegisterTask_RejectsDuplicates tests duplicate registration
func TestProject_RegisterTask_RejectsDuplicates(t *testing.T) {
	proj := New()

	require.NoError(t, proj.RegisterTask(newTestTask("build")))
	err := proj.RegisterTask(newTestTask("build"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateTask)
	assert.Equal(t, 1, proj.TaskCount())
}

// TestProject_Task_LooksUpByName tests task lookup
func TestProject_Task_LooksUpByName(t *testing.T) {
	proj := New()
	require.NoError(t, proj.RegisterTask(newTestTask("build")))

	t.Run("KnownTask_ShouldSucceed", func(t *testing.T) {
		tsk, err := proj.Task("build")
		require.NoError(t, err)
		assert.Equal(t, "build", tsk.Name().Value())
	})

	t.Run("UnknownTask_ShouldFail", func(t *testing.T) {
		_, err := proj.Task("deploy")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownTask)
	})
}

// TestProject_TaskNames_ReturnsSortedNames tests listing order
func TestProject_TaskNames_ReturnsSortedNames(t *testing.T) {
	proj := New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, proj.RegisterTask(newTestTask(name)))
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, proj.TaskNames())

	tasks := proj.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, "alpha", tasks[0].Name().Value())
}

// TestProject_ApplyPlugin_RegistersAndRecords tests plugin application
func TestProject_ApplyPlugin_RegistersAndRecords(t *testing.T) {
	proj := New()
	pl := &testPlugin{name: "greetings", tasks: []string{"hello", "goodbye"}}

	require.NoError(t, proj.ApplyPlugin(pl))

	assert.Equal(t, 2, proj.TaskCount())
	applied := proj.AppliedPlugins()
	require.Len(t, applied, 1)
	assert.Equal(t, "greetings", applied[0].Name)
	assert.Equal(t, "0.0.1", applied[0].Version)
}

// TestProject_ApplyPlugin_TwiceSurfacesRegistryError verifies that
// re-applying a plugin is not deduplicated: the duplicate task registration
// is reported by the registry
func TestProject_ApplyPlugin_TwiceSurfacesRegistryError(t *testing.T) {
	proj := New()
	pl := &testPlugin{name: "greetings", tasks: []string{"hello"}}

	require.NoError(t, proj.ApplyPlugin(pl))
	err := proj.ApplyPlugin(pl)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateTask)
	// The failed second application is not recorded.
	assert.Len(t, proj.AppliedPlugins(), 1)
}

// TestProject_ApplyPlugin_PropagatesPluginFailure tests a failing Apply
func TestProject_ApplyPlugin_PropagatesPluginFailure(t *testing.T) {
	proj := New()
	err := proj.ApplyPlugin(&failingPlugin{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Empty(t, proj.AppliedPlugins())
}

type failingPlugin struct{}

func (p *failingPlugin) Name() string        { return "broken" }
func (p *failingPlugin) Version() string     { return "0.0.1" }
func (p *failingPlugin) Description() string { return "always fails" }

func (p *failingPlugin) Apply(registry plugin.TaskRegistry) error {
	return fmt.Errorf("broken plugin cannot register")
}
