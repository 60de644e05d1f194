// Package runenv prepares what a dashboard or tag command needs before it
// touches AWS: validated settings, a logger and a provider.
package runenv

import (
	"github.com/dataTrevor/automatic-create-dashboard/internal/auditlog"
	"github.com/dataTrevor/automatic-create-dashboard/internal/config"
	"github.com/dataTrevor/automatic-create-dashboard/internal/domain"
	"github.com/dataTrevor/automatic-create-dashboard/internal/logging"
	"github.com/dataTrevor/automatic-create-dashboard/internal/providers"
	"github.com/dataTrevor/automatic-create-dashboard/internal/runconfig"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	FlagProvider = "provider"
	FlagLogLevel = "log-level"

	// AuditAnnotation marks commands whose runs are recorded in the
	// audit history.
	AuditAnnotation = "autodash/audit"
)

// Audited is the Annotations value for recorded commands.
func Audited() map[string]string {
	return map[string]string{AuditAnnotation: "true"}
}

// AddPersistentFlags registers the flags every command inherits.
func AddPersistentFlags(fs *pflag.FlagSet) {
	fs.String(FlagProvider, providers.AWSName, "Cloud provider backend")
	fs.String(FlagLogLevel, logging.DefaultLevel, "Log level: trace, debug, info, warn, error")
	_ = fs.MarkHidden(FlagProvider)
}

// Env is the prepared state of one run.
type Env struct {
	Config   runconfig.Config
	Log      *logrus.Logger
	Provider domain.Provider
}

// Setup validates flags against persisted defaults, then builds the logger
// and provider. Validation errors are returned before any provider is
// constructed. The command context is annotated for the audit record.
func Setup(cmd *cobra.Command, mode runconfig.Mode, flags runconfig.Flags) (*Env, error) {
	defaults, err := config.Load()
	if err != nil {
		return nil, err
	}

	cfg, err := runconfig.Build(mode, flags, defaults)
	if err != nil {
		return nil, err
	}

	resourceType := auditlog.ResourceDashboard
	if mode == runconfig.ModeAddTag || mode == runconfig.ModeRemoveTag {
		resourceType = auditlog.ResourceClusters
	}
	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Region:       cfg.Region,
		ResourceType: resourceType,
		Resource:     cfg.Resource(),
		DryRun:       cfg.DryRun,
	}))

	log, err := logging.New(cmd.ErrOrStderr(), flagValue(cmd, FlagLogLevel, logging.DefaultLevel))
	if err != nil {
		return nil, err
	}

	provider, err := providers.Get(cmd.Context(), flagValue(cmd, FlagProvider, providers.AWSName), providers.Options{
		Region:  cfg.Region,
		Profile: cfg.Profile,
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"mode":     string(mode),
		"region":   cfg.Region,
		"provider": provider.GetDisplayName(),
	}).Debug("run configured")

	return &Env{Config: cfg, Log: log, Provider: provider}, nil
}

// flagValue reads an inherited flag, falling back when the command runs
// without the root command (as in package tests).
func flagValue(cmd *cobra.Command, name, fallback string) string {
	if f := cmd.Flag(name); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return fallback
}
