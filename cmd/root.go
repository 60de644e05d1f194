package cmd

import (
	"os"
	"time"

	"github.com/dataTrevor/automatic-create-dashboard/cmd/commands/audit"
	cfgcmd "github.com/dataTrevor/automatic-create-dashboard/cmd/commands/config"
	"github.com/dataTrevor/automatic-create-dashboard/cmd/commands/dashboard"
	"github.com/dataTrevor/automatic-create-dashboard/cmd/commands/runenv"
	"github.com/dataTrevor/automatic-create-dashboard/cmd/commands/tag"
	"github.com/dataTrevor/automatic-create-dashboard/internal/auditlog"
	"github.com/dataTrevor/automatic-create-dashboard/internal/providers"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "autodash",
		Short: "Build CloudWatch dashboards for Aurora clusters",
		Long: `autodash creates and maintains CloudWatch dashboards that plot one
series per instance of your Aurora DB clusters.

Quick start:
  autodash config set default-region ap-northeast-1
  autodash init -c aurora-uat -n aurora-uat        # Create from a template
  autodash tag add -c aurora-uat --tag RG:UAT      # Group clusters by tag
  autodash update --tag RG:UAT -n aurora-uat       # Add tagged clusters
  autodash audit list                              # Show recorded runs`,
	}

	runenv.AddPersistentFlags(cmd.PersistentFlags())

	cmd.AddCommand(dashboard.InitCommand())
	cmd.AddCommand(dashboard.UpdateCommand())
	cmd.AddCommand(dashboard.DownloadCommand())
	cmd.AddCommand(tag.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(audit.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	providers.RegisterAWS()

	if err := execute(rootCmd(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// execute runs root with args and records the run of any audited command.
func execute(root *cobra.Command, args []string) error {
	start := time.Now()
	root.SetArgs(args)

	executed, err := root.ExecuteC()
	if executed != nil {
		recordRun(executed, args, err, start)
	}
	return err
}

// recordRun writes a best-effort audit entry for an audited command.
// Failures opening or writing the history are ignored.
func recordRun(cmd *cobra.Command, args []string, err error, start time.Time) {
	if cmd.Annotations[runenv.AuditAnnotation] == "" {
		return
	}

	repo, openErr := auditlog.Open()
	if openErr != nil {
		return
	}
	defer repo.Close()

	meta := auditlog.MetadataFromContext(cmd.Context())
	_ = repo.Save(auditlog.NewEntry(cmd.CommandPath(), args, meta, err, start))
}
