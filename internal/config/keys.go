package config

import (
	"fmt"
	"strings"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "default-region").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// CaseSensitive keeps the value as typed instead of lowercasing it.
	CaseSensitive bool
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "default-region",
		Description: "AWS region used when --region is not specified",
		Get:         func(cfg *Config) string { return cfg.DefaultRegion },
		Set:         func(cfg *Config, v string) { cfg.DefaultRegion = v },
	},
	{
		Name:          "template",
		Description:   "Dashboard template file used by init when --template is not specified",
		Get:           func(cfg *Config) string { return cfg.Template },
		Set:           func(cfg *Config, v string) { cfg.Template = v },
		CaseSensitive: true,
	},
	{
		Name:          "namespace",
		Description:   "Metric namespace merged when --namespace is not specified",
		Get:           func(cfg *Config) string { return cfg.Namespace },
		Set:           func(cfg *Config, v string) { cfg.Namespace = v },
		CaseSensitive: true,
	},
	{
		Name:          "profile",
		Description:   "Shared AWS config profile used when --profile is not specified",
		Get:           func(cfg *Config) string { return cfg.Profile },
		Set:           func(cfg *Config, v string) { cfg.Profile = v },
		CaseSensitive: true,
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
