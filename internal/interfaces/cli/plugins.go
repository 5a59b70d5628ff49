package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"taskmill.dev/cli/internal/core/plugin"
)

// NewPluginsCommand creates the plugins command
func NewPluginsCommand(app *App) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "List builtin, installed, and remote plugins",
		Long: `Show the plugins available to this installation: the builtin catalog,
manifests discovered in the plugin directories, and (with --remote) the
remote registry's index.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container := app.Container()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, headerStyle.Render("Builtin plugins"))
			proj, err := container.BuildProject()
			if err != nil {
				return err
			}
			printPluginInfos(out, proj.AppliedPlugins())

			discovered, err := container.DiscoverPlugins(cmd.Context())
			if err != nil {
				return err
			}
			if len(discovered) > 0 {
				fmt.Fprintln(out, headerStyle.Render("\nInstalled plugin manifests"))
				printPluginInfos(out, discovered)
			}

			if remote {
				infos, err := container.RemotePlugins(cmd.Context())
				if err != nil {
					return fmt.Errorf("listing remote plugins: %w", err)
				}
				fmt.Fprintln(out, headerStyle.Render("\nRemote registry"))
				printPluginInfos(out, infos)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Also list the remote registry index")
	return cmd
}

func printPluginInfos(out io.Writer, infos []plugin.Info) {
	for _, info := range infos {
		fmt.Fprintf(out, "  %s %s\n",
			taskNameStyle.Render(info.Name),
			taskDescStyle.Render(fmt.Sprintf("v%s  %s", info.Version, info.Description)),
		)
	}
}
