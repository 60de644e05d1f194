package audit

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dataTrevor/automatic-create-dashboard/internal/auditlog"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		Long: `List recent runs recorded locally, newest first.

Examples:
  autodash audit list
  autodash audit list --limit 50
  autodash audit list --command "autodash update"
  autodash audit list --resource aurora-uat
  autodash audit list -o json`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 25, "Number of entries to display")
	cmd.Flags().String("command", "", "Filter by exact command path")
	cmd.Flags().String("resource", "", "Filter by dashboard name or cluster list")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	command, _ := cmd.Flags().GetString("command")
	resource, _ := cmd.Flags().GetString("resource")
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	repo, err := auditlog.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	entries, err := repo.List(auditlog.Filter{Command: command, Resource: resource, Limit: limit})
	if err != nil {
		return err
	}

	if output == "json" {
		if entries == nil {
			entries = []auditlog.AuditEntry{}
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tCOMMAND\tOUTCOME\tREGION\tRESOURCE\tINSERTED\tDURATION\tDETAIL")
	fmt.Fprintln(w, "----\t-------\t-------\t------\t--------\t--------\t--------\t------")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			entry.Timestamp.Local().Format("2006-01-02 15:04:05"),
			entry.Command,
			entry.Outcome,
			orDash(entry.Region),
			formatResource(entry),
			formatInserted(entry),
			formatDuration(entry.DurationMs),
			orDash(entry.Detail),
		)
	}
	w.Flush()
	return nil
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}

func formatResource(entry auditlog.AuditEntry) string {
	switch {
	case entry.Resource == "":
		return "-"
	case entry.ResourceType == "":
		return entry.Resource
	default:
		return entry.ResourceType + ":" + entry.Resource
	}
}

// formatInserted marks dry runs, whose series were never written.
func formatInserted(entry auditlog.AuditEntry) string {
	if entry.ResourceType != auditlog.ResourceDashboard {
		return "-"
	}
	n := strconv.Itoa(entry.Inserted)
	if entry.DryRun {
		n += " (dry run)"
	}
	return n
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
