package audit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dataTrevor/automatic-create-dashboard/internal/auditlog"

	"github.com/spf13/cobra"
)

func PruneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete recorded runs older than a duration",
		Long: `Delete recorded runs older than a duration.

Durations accept Go syntax (72h, 90m) plus day and week suffixes.

Examples:
  autodash audit prune --older-than 30d
  autodash audit prune --older-than 2w
  autodash audit prune --older-than 72h`,
		RunE:         runPrune,
		SilenceUsage: true,
	}

	cmd.Flags().String("older-than", "", "Remove runs older than this duration (e.g. 30d, 2w, 72h)")

	return cmd
}

func runPrune(cmd *cobra.Command, args []string) error {
	olderThanRaw, _ := cmd.Flags().GetString("older-than")
	olderThanRaw = strings.TrimSpace(olderThanRaw)
	if olderThanRaw == "" {
		return fmt.Errorf("--older-than is required")
	}

	olderThan, err := parseDuration(olderThanRaw)
	if err != nil {
		return err
	}

	repo, err := auditlog.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	removed, err := repo.Prune(olderThan)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d recorded run(s).\n", removed)
	return nil
}

var unitSuffixes = []struct {
	suffix string
	unit   time.Duration
}{
	{"d", 24 * time.Hour},
	{"w", 7 * 24 * time.Hour},
}

func parseDuration(input string) (time.Duration, error) {
	for _, u := range unitSuffixes {
		num, ok := strings.CutSuffix(input, u.suffix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", input)
		}
		if n < 0 {
			return 0, fmt.Errorf("duration must be positive")
		}
		return time.Duration(n) * u.unit, nil
	}

	d, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", input)
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return d, nil
}
