// Package runconfig assembles the validated per-invocation settings of a
// dashboard or tagging run from command-line flags and persisted defaults.
package runconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dataTrevor/automatic-create-dashboard/internal/config"
	"github.com/dataTrevor/automatic-create-dashboard/internal/domain"
	"github.com/dataTrevor/automatic-create-dashboard/internal/templatefile"
	"github.com/dataTrevor/automatic-create-dashboard/internal/util"

	"github.com/spf13/pflag"
)

// Mode selects which operation a run performs.
type Mode string

const (
	ModeInit      Mode = "init"
	ModeUpdate    Mode = "update"
	ModeDownload  Mode = "download"
	ModeAddTag    Mode = "add-tag"
	ModeRemoveTag Mode = "remove-tag"
)

// DefaultNamespace is the metric namespace of Aurora and RDS series.
const DefaultNamespace = "AWS/RDS"

// Flags holds raw flag values as typed by the user.
type Flags struct {
	ClusterIDs string
	Tag        string
	Region     string
	Profile    string
	Dashboard  string
	Template   string
	Namespace  string
	Download   string
	DryRun     bool
}

// Bind registers the flags relevant to mode on fs.
func (f *Flags) Bind(fs *pflag.FlagSet, mode Mode) {
	fs.StringVarP(&f.Region, "region", "r", "", "Region of the clusters and dashboard (default: config default-region)")
	fs.StringVar(&f.Profile, "profile", "", "Shared AWS config profile (default: config profile)")

	switch mode {
	case ModeInit:
		fs.StringVarP(&f.ClusterIDs, "cluster-id", "c", "", "Cluster identifier(s), comma-separated")
		fs.StringVarP(&f.Dashboard, "dashboard", "n", "", "Dashboard name")
		fs.StringVarP(&f.Template, "template", "t", "", "Template file (default "+templatefile.DefaultPath+")")
		fs.StringVar(&f.Namespace, "namespace", "", "Metric namespace (default "+DefaultNamespace+")")
		fs.BoolVar(&f.DryRun, "dry-run", false, "Print the merge patch instead of writing the dashboard")
	case ModeUpdate:
		fs.StringVarP(&f.ClusterIDs, "cluster-id", "c", "", "Cluster identifier(s), comma-separated")
		fs.StringVar(&f.Tag, "tag", "", "Select clusters carrying this key:value tag")
		fs.StringVarP(&f.Dashboard, "dashboard", "n", "", "Dashboard name")
		fs.StringVar(&f.Namespace, "namespace", "", "Metric namespace (default "+DefaultNamespace+")")
		fs.StringVarP(&f.Download, "download", "d", "", "Write the current widgets to this file and stop")
		fs.BoolVar(&f.DryRun, "dry-run", false, "Print the merge patch instead of writing the dashboard")
	case ModeDownload:
		fs.StringVarP(&f.Dashboard, "dashboard", "n", "", "Dashboard name")
		fs.StringVarP(&f.Download, "file", "f", "", "Destination file (default: the template path)")
	case ModeAddTag, ModeRemoveTag:
		fs.StringVarP(&f.ClusterIDs, "cluster-id", "c", "", "Cluster identifier(s), comma-separated")
		fs.StringVar(&f.Tag, "tag", "", "Tag as key:value")
	}
}

// Config is the validated configuration of a single run.
type Config struct {
	Mode       Mode
	ClusterIDs []string
	// Tag is nil when no --tag was given.
	Tag       *domain.Tag
	Region    string
	Profile   string
	Dashboard string
	Template  string
	Namespace string
	// Download is the destination file of a download, empty otherwise.
	Download string
	DryRun   bool
}

// Build validates flags for mode and fills unset values from defaults.
// It never performs I/O; defaults may be nil.
func Build(mode Mode, f Flags, defaults *config.Config) (Config, error) {
	if defaults == nil {
		defaults = &config.Config{}
	}

	cfg := Config{
		Mode:       mode,
		ClusterIDs: util.SplitList(f.ClusterIDs),
		Region:     firstNonEmpty(f.Region, defaults.DefaultRegion),
		Profile:    firstNonEmpty(f.Profile, defaults.Profile),
		Dashboard:  f.Dashboard,
		Template:   firstNonEmpty(f.Template, defaults.Template, templatefile.DefaultPath),
		Namespace:  firstNonEmpty(f.Namespace, defaults.Namespace, DefaultNamespace),
		Download:   f.Download,
		DryRun:     f.DryRun,
	}

	switch mode {
	case ModeInit, ModeAddTag, ModeRemoveTag:
		if len(cfg.ClusterIDs) == 0 {
			return Config{}, fmt.Errorf("--cluster-id is required in %s mode", mode)
		}
		if mode != ModeInit && f.Tag == "" {
			return Config{}, fmt.Errorf("--tag is required in %s mode", mode)
		}
	case ModeUpdate:
		if len(cfg.ClusterIDs) == 0 && f.Tag == "" {
			return Config{}, fmt.Errorf("either --cluster-id or --tag is required in %s mode", mode)
		}
	case ModeDownload:
		if cfg.Download == "" {
			cfg.Download = cfg.Template
		}
	default:
		return Config{}, fmt.Errorf("unknown mode %q", mode)
	}

	switch mode {
	case ModeInit, ModeUpdate, ModeDownload:
		if cfg.Dashboard == "" {
			return Config{}, fmt.Errorf("--dashboard is required in %s mode", mode)
		}
		if err := util.ValidateDashboardName(cfg.Dashboard); err != nil {
			return Config{}, err
		}
	}

	if f.Tag != "" {
		tag, err := domain.ParseTag(f.Tag)
		if err != nil {
			return Config{}, err
		}
		cfg.Tag = &tag
	}

	if cfg.Region == "" {
		return Config{}, errors.New("--region is required (or set a default with: autodash config set default-region <region>)")
	}
	if err := util.ValidateRegion(cfg.Region); err != nil {
		return Config{}, err
	}
	if err := util.ValidateNamespace(cfg.Namespace); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// SelectsByTag reports whether instances are resolved by tag scan rather
// than by cluster identifiers. Identifiers win when both are given.
func (c Config) SelectsByTag() bool {
	return len(c.ClusterIDs) == 0 && c.Tag != nil
}

// Resource names the object a run acts on, for audit records.
func (c Config) Resource() string {
	switch c.Mode {
	case ModeAddTag, ModeRemoveTag:
		return strings.Join(c.ClusterIDs, ",")
	default:
		return c.Dashboard
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
