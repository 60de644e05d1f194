package dashboard

import (
	"github.com/dataTrevor/automatic-create-dashboard/cmd/commands/runenv"
	"github.com/dataTrevor/automatic-create-dashboard/internal/runconfig"
	dashsvc "github.com/dataTrevor/automatic-create-dashboard/internal/services/dashboard"

	"github.com/spf13/cobra"
)

// UpdateCommand returns the "update" command.
func UpdateCommand() *cobra.Command {
	var flags runconfig.Flags

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Add cluster instances to an existing dashboard",
		Long: `Add one series per cluster instance to every widget of an existing
dashboard that plots a metric from the namespace. Series already on the
dashboard are kept and never duplicated, so running update twice is safe.

Instances come from --cluster-id, or from every cluster carrying --tag
when no identifier is given.

Examples:
  autodash update -c aurora-uat -n aurora-ops
  autodash update --tag RG:UAT -n aurora-ops
  autodash update --tag RG:UAT -n aurora-ops --dry-run

  # Save the current widgets as a template and stop
  autodash update -c aurora-uat -n aurora-ops --download board.json`,
		Annotations: runenv.Audited(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, runconfig.ModeUpdate, flags, func(svc *dashsvc.Service, cmd *cobra.Command, cfg runconfig.Config) (*dashsvc.Result, error) {
				return svc.Update(cmd.Context(), cfg)
			})
		},
		SilenceUsage: true,
	}

	flags.Bind(cmd.Flags(), runconfig.ModeUpdate)
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}
