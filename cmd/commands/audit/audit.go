package audit

import "github.com/spf13/cobra"

// NewCommand returns the "audit" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "View and manage the history of dashboard and tag runs",
		Long: "Every init, update, download and tag run is recorded locally with its\n" +
			"outcome, the dashboard or clusters it touched and how many series it added.\n\n" +
			"History is stored in autodash.db under the user config directory.",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}
