package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dataTrevor/automatic-create-dashboard/internal/config"
	"github.com/dataTrevor/automatic-create-dashboard/internal/util"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  autodash config set default-region ap-northeast-1\n" +
			"  autodash config set template ./templates/aurora.yaml",
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

// validators maps key names to optional pre-save validation functions.
// Keys not present in this map have no extra validation.
var validators = map[string]func(value string) error{
	"default-region": util.ValidateRegion,
	"namespace":      util.ValidateNamespace,
	"template":       validateTemplatePath,
}

func runSet(cmd *cobra.Command, args []string) error {
	spec := config.Lookup(args[0])
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	value := strings.TrimSpace(args[1])
	if !spec.CaseSensitive {
		value = util.NormalizeKey(value)
	}

	if validate, ok := validators[spec.Name]; ok {
		if err := validate(value); err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	spec.Set(cfg, value)
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, value)
	return nil
}

// validateTemplatePath accepts the file types the template loader reads.
func validateTemplatePath(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return nil
	default:
		return fmt.Errorf("template %q must be a .json, .yaml or .yml file", path)
	}
}
