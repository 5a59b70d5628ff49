package cli

import (
	"github.com/spf13/cobra"

	"taskmill.dev/cli/internal/core/task"
)

// NewRunCommand creates the run command
func NewRunCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run <task>",
		Short: "Run a registered task by name",
		Long: `Apply the configured plugins to a fresh project and execute the named
task. The task's output goes to stdout; a failing task aborts the command
with a non-zero exit status.

Examples:
  tm run random                # print one uniform value in [0,1)
  tm run random --rng chacha8  # draw from the chacha8 provider
  tm run random --seed 42      # reproducible draw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Container().RunTask(cmd.Context(), args[0], task.IO{
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
		},
	}
}
