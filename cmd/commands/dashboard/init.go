package dashboard

import (
	"github.com/dataTrevor/automatic-create-dashboard/cmd/commands/runenv"
	"github.com/dataTrevor/automatic-create-dashboard/internal/runconfig"
	dashsvc "github.com/dataTrevor/automatic-create-dashboard/internal/services/dashboard"

	"github.com/spf13/cobra"
)

// InitCommand returns the "init" command.
func InitCommand() *cobra.Command {
	var flags runconfig.Flags

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a dashboard from a local template",
		Long: `Create a CloudWatch dashboard from a local widget template.

Every widget that plots a metric from the namespace is rebuilt with one
series per instance of the given clusters. If a dashboard with the same
name already exists, nothing is written.

Examples:
  # One cluster, default template Aurora_monitor_DashboardBody.json
  autodash init -c aurora-uat -n aurora-uat -r ap-northeast-1

  # Several clusters and a YAML template
  autodash init -c aurora-a,aurora-b -n aurora-ops -t templates/aurora.yaml

  # Show what would be created
  autodash init -c aurora-uat -n aurora-uat --dry-run`,
		Annotations: runenv.Audited(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, runconfig.ModeInit, flags, func(svc *dashsvc.Service, cmd *cobra.Command, cfg runconfig.Config) (*dashsvc.Result, error) {
				return svc.Init(cmd.Context(), cfg)
			})
		},
		SilenceUsage: true,
	}

	flags.Bind(cmd.Flags(), runconfig.ModeInit)
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}
