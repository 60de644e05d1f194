package config

import (
	"github.com/dataTrevor/automatic-create-dashboard/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage autodash defaults",
		Long: "View and modify persistent autodash defaults. Command-line flags\n" +
			"always take precedence over these values.\n\n" +
			"Configuration is stored at ~/.config/autodash/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
