package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dataTrevor/automatic-create-dashboard/internal/domain"
	"github.com/dataTrevor/automatic-create-dashboard/internal/runconfig"
	dashsvc "github.com/dataTrevor/automatic-create-dashboard/internal/services/dashboard"
	"github.com/dataTrevor/automatic-create-dashboard/internal/widget"

	"github.com/spf13/cobra"
)

// printResultJSON encodes a run result as indented JSON to stdout.
func printResultJSON(cmd *cobra.Command, res *dashsvc.Result) {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.Encode(res)
}

// printResult prints a human-readable account of a run.
func printResult(cmd *cobra.Command, cfg runconfig.Config, res *dashsvc.Result) {
	out := cmd.OutOrStdout()

	if len(res.Instances) > 0 {
		fmt.Fprintf(out, "Found %d instance(s) in %d cluster(s).\n", len(res.Instances), countClusters(res.Instances))
	}

	switch {
	case res.Exists:
		fmt.Fprintf(out, "Dashboard %s already exists in %s; nothing created. Use update to add clusters.\n", res.Dashboard, cfg.Region)
		return
	case res.Downloaded != "":
		fmt.Fprintf(out, "Widgets of dashboard %s written to %s.\n", res.Dashboard, res.Downloaded)
		return
	}

	if len(res.Report.Metrics) > 0 {
		fmt.Fprintln(out)
		printSummary(cmd, res.Report)
		fmt.Fprintln(out)
	}

	switch {
	case res.Patch != nil:
		fmt.Fprintf(out, "Dry run: dashboard %s not written. Merge patch:\n", res.Dashboard)
		printPatch(cmd, res.Patch)
	case res.Written && cfg.Mode == runconfig.ModeInit:
		fmt.Fprintf(out, "Dashboard %s created in %s.\n", res.Dashboard, cfg.Region)
	case res.Written:
		fmt.Fprintf(out, "Dashboard %s updated: %d series added.\n", res.Dashboard, res.Report.Inserted())
	}

	for _, m := range res.Messages {
		if m.DataPath != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s: %s\n", m.DataPath, m.Message)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", m.Message)
		}
	}
}

// printSummary prints one row per metric name of a merge.
func printSummary(cmd *cobra.Command, report widget.Report) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tWIDGET\tINSERTED\tSKIPPED")
	fmt.Fprintln(w, "------\t------\t--------\t-------")
	for _, m := range report.Metrics {
		if !m.Found {
			fmt.Fprintf(w, "%s\t(no widget)\t-\t-\n", m.Metric)
			continue
		}
		title := m.Title
		if title == "" {
			title = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Metric, title, strconv.Itoa(m.Stats.Inserted), strconv.Itoa(m.Stats.Skipped))
	}
	w.Flush()
}

func printPatch(cmd *cobra.Command, patch []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, patch, "", "  "); err != nil {
		cmd.OutOrStdout().Write(patch)
		fmt.Fprintln(cmd.OutOrStdout())
		return
	}
	buf.WriteByte('\n')
	buf.WriteTo(cmd.OutOrStdout())
}

func countClusters(instances []domain.Instance) int {
	seen := make(map[string]struct{})
	for _, inst := range instances {
		seen[inst.ClusterID] = struct{}{}
	}
	return len(seen)
}
