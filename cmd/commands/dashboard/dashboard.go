// Package dashboard holds the init, update and download commands.
package dashboard

import (
	"fmt"

	"github.com/dataTrevor/automatic-create-dashboard/cmd/commands/runenv"
	"github.com/dataTrevor/automatic-create-dashboard/internal/auditlog"
	"github.com/dataTrevor/automatic-create-dashboard/internal/runconfig"
	dashsvc "github.com/dataTrevor/automatic-create-dashboard/internal/services/dashboard"

	"github.com/spf13/cobra"
)

// runFunc is one of the dashboard service workflows.
type runFunc func(svc *dashsvc.Service, cmd *cobra.Command, cfg runconfig.Config) (*dashsvc.Result, error)

// run prepares the environment, executes fn and prints its result.
func run(cmd *cobra.Command, mode runconfig.Mode, flags runconfig.Flags, fn runFunc) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	env, err := runenv.Setup(cmd, mode, flags)
	if err != nil {
		return err
	}

	svc := dashsvc.New(env.Provider, dashsvc.WithLogger(env.Log))
	res, err := fn(svc, cmd, env.Config)
	if err != nil {
		return err
	}

	meta := auditlog.Metadata{Inserted: res.Report.Inserted()}
	switch {
	case res.WriteErr != nil:
		meta.Detail = "dashboard write failed: " + res.WriteErr.Error()
	case res.Exists:
		meta.Detail = "dashboard already exists"
	case res.Downloaded != "":
		meta.Detail = "downloaded to " + res.Downloaded
	}
	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), meta))

	if output == "json" {
		printResultJSON(cmd, res)
	} else {
		printResult(cmd, env.Config, res)
	}
	if res.WriteErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: failed to write dashboard %s: %v\n", res.Dashboard, res.WriteErr)
	}
	return nil
}
