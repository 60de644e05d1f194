package tag

import (
	"fmt"

	"github.com/dataTrevor/automatic-create-dashboard/cmd/commands/runenv"
	"github.com/dataTrevor/automatic-create-dashboard/internal/auditlog"
	"github.com/dataTrevor/automatic-create-dashboard/internal/runconfig"
	"github.com/dataTrevor/automatic-create-dashboard/internal/services/tagging"

	"github.com/spf13/cobra"
)

// RemoveCommand returns the "tag remove" command.
func RemoveCommand() *cobra.Command {
	var flags runconfig.Flags

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm"},
		Short:   "Remove a tag from DB clusters",
		Long: `Remove a tag key from every given DB cluster. The value part of
--tag is required for symmetry with add but is not matched.

Examples:
  autodash tag remove -c aurora-a --tag RG:UAT`,
		Annotations: runenv.Audited(),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := runenv.Setup(cmd, runconfig.ModeRemoveTag, flags)
			if err != nil {
				return err
			}

			svc := tagging.New(env.Provider, env.Log)
			n, err := svc.RemoveTag(cmd.Context(), env.Config.ClusterIDs, *env.Config.Tag)
			recordChanged(cmd, n)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Tag key %s removed from %d cluster(s).\n", env.Config.Tag.Key, n)
			return nil
		},
		SilenceUsage: true,
	}

	flags.Bind(cmd.Flags(), runconfig.ModeRemoveTag)

	return cmd
}

// recordChanged notes how many clusters were changed in the audit record.
func recordChanged(cmd *cobra.Command, n int) {
	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Detail: fmt.Sprintf("%d cluster(s) changed", n),
	}))
}
