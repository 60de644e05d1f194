package dashboard

import (
	"github.com/dataTrevor/automatic-create-dashboard/cmd/commands/runenv"
	"github.com/dataTrevor/automatic-create-dashboard/internal/runconfig"
	dashsvc "github.com/dataTrevor/automatic-create-dashboard/internal/services/dashboard"

	"github.com/spf13/cobra"
)

// DownloadCommand returns the "download" command.
func DownloadCommand() *cobra.Command {
	var flags runconfig.Flags

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Save the widgets of a dashboard to a template file",
		Long: `Save the widgets of an existing dashboard to a local file that init
can use as a template. Files ending in .yaml or .yml are written as YAML.

Examples:
  autodash download -n aurora-ops
  autodash download -n aurora-ops -f templates/aurora.yaml`,
		Annotations: runenv.Audited(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, runconfig.ModeDownload, flags, func(svc *dashsvc.Service, cmd *cobra.Command, cfg runconfig.Config) (*dashsvc.Result, error) {
				return svc.Download(cmd.Context(), cfg)
			})
		},
		SilenceUsage: true,
	}

	flags.Bind(cmd.Flags(), runconfig.ModeDownload)
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}
