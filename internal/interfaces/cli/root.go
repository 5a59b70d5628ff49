package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"taskmill.dev/cli/internal/interfaces/di"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// App carries the dependency container across commands. The container is
// built in the root command's PersistentPreRunE, after flag parsing, so
// flag overrides land before any service is constructed.
type App struct {
	container *di.Container
}

// Container returns the dependency container built for this invocation
func (a *App) Container() *di.Container {
	return a.container
}

// NewRootCommand builds the tm command tree
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tm",
		Short: "Taskmill - plugin-driven task runner",
		Long: `Taskmill (tm) is a small task runner whose tasks are contributed by
plugins. Applying a plugin to a project registers named tasks into the
project's task registry; tm then executes them by name.

The builtin random-number plugin registers the "random" task, which prints
one uniformly-distributed value in [0,1) drawn from a configurable RNG
provider.`,
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := overridesFromFlags(cmd)
			if err != nil {
				return err
			}
			container, err := di.NewContainer(overrides)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			app.container = container
			return nil
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default is $HOME/.taskmill/config.json)")
	rootCmd.PersistentFlags().String("rng", "", "RNG algorithm for the random provider (pcg, chacha8, crypto)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Fixed RNG seed (0 = time-derived)")
	rootCmd.PersistentFlags().StringSlice("plugin", nil, "Plugins to apply (overrides configuration)")

	rootCmd.AddCommand(NewRunCommand(app))
	rootCmd.AddCommand(NewTasksCommand(app))
	rootCmd.AddCommand(NewPluginsCommand(app))
	rootCmd.AddCommand(NewSampleCommand(app))

	return rootCmd
}

// overridesFromFlags collects the flag values that were explicitly set
func overridesFromFlags(cmd *cobra.Command) (di.Overrides, error) {
	var overrides di.Overrides

	flags := cmd.Flags()
	if flags.Changed("config") {
		path, err := flags.GetString("config")
		if err != nil {
			return overrides, err
		}
		overrides.ConfigPath = path
	}
	if flags.Changed("debug") {
		debugFlag, err := flags.GetBool("debug")
		if err != nil {
			return overrides, err
		}
		overrides.Debug = &debugFlag
	}
	if flags.Changed("rng") {
		algorithm, err := flags.GetString("rng")
		if err != nil {
			return overrides, err
		}
		overrides.Algorithm = &algorithm
	}
	if flags.Changed("seed") {
		seed, err := flags.GetUint64("seed")
		if err != nil {
			return overrides, err
		}
		overrides.Seed = &seed
	}
	if flags.Changed("plugin") {
		pluginsFlag, err := flags.GetStringSlice("plugin")
		if err != nil {
			return overrides, err
		}
		overrides.Plugins = pluginsFlag
	}

	return overrides, nil
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute runs the command tree and maps failure to a non-zero exit
func Execute(ctx context.Context) {
	app := &App{}
	rootCmd := NewRootCommand(app)

	err := rootCmd.ExecuteContext(ctx)
	if app.container != nil {
		app.container.Shutdown()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
