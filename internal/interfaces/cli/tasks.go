package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	taskNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true).
			Width(16)

	taskDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)
)

// NewTasksCommand creates the tasks command
func NewTasksCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the tasks the configured plugins register",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := app.Container().BuildProject()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerStyle.Render("Registered tasks"))
			for _, t := range proj.Tasks() {
				fmt.Fprintf(out, "  %s %s\n",
					taskNameStyle.Render(t.Name().Value()),
					taskDescStyle.Render(t.Description()),
				)
			}
			fmt.Fprintf(out, "\n%d task(s) from %d plugin(s)\n",
				proj.TaskCount(), len(proj.AppliedPlugins()))
			return nil
		},
	}
}
