// Package tag holds the commands that add or remove a cluster tag.
package tag

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "tag" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Add or remove a tag on DB clusters",
		Long: `Add or remove a key:value tag on one or more DB clusters.

Tagged clusters can later be added to a dashboard with update --tag.`,
	}

	cmd.AddCommand(AddCommand())
	cmd.AddCommand(RemoveCommand())

	return cmd
}
