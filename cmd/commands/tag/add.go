package tag

import (
	"fmt"

	"github.com/dataTrevor/automatic-create-dashboard/cmd/commands/runenv"
	"github.com/dataTrevor/automatic-create-dashboard/internal/runconfig"
	"github.com/dataTrevor/automatic-create-dashboard/internal/services/tagging"

	"github.com/spf13/cobra"
)

// AddCommand returns the "tag add" command.
func AddCommand() *cobra.Command {
	var flags runconfig.Flags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a tag to DB clusters",
		Long: `Add a key:value tag to every given DB cluster. All clusters are
looked up first, so an unknown identifier changes nothing.

Examples:
  autodash tag add -c aurora-a,aurora-b --tag RG:UAT -r ap-northeast-1`,
		Annotations: runenv.Audited(),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := runenv.Setup(cmd, runconfig.ModeAddTag, flags)
			if err != nil {
				return err
			}

			svc := tagging.New(env.Provider, env.Log)
			n, err := svc.AddTag(cmd.Context(), env.Config.ClusterIDs, *env.Config.Tag)
			recordChanged(cmd, n)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Tag %s added to %d cluster(s).\n", env.Config.Tag, n)
			return nil
		},
		SilenceUsage: true,
	}

	flags.Bind(cmd.Flags(), runconfig.ModeAddTag)

	return cmd
}
