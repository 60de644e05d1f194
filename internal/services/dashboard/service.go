// Package dashboard runs the init, update and download workflows: it
// resolves cluster instances, merges their series into a dashboard body and
// writes the result to CloudWatch or a local file.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dataTrevor/automatic-create-dashboard/internal/domain"
	"github.com/dataTrevor/automatic-create-dashboard/internal/logging"
	"github.com/dataTrevor/automatic-create-dashboard/internal/runconfig"
	"github.com/dataTrevor/automatic-create-dashboard/internal/templatefile"
	"github.com/dataTrevor/automatic-create-dashboard/internal/widget"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/sirupsen/logrus"
)

// Service encapsulates the dashboard workflows over a provider.
type Service struct {
	provider domain.Provider
	log      logrus.FieldLogger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for run diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// New creates a dashboard service. Without WithLogger, diagnostics are
// discarded.
func New(provider domain.Provider, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result describes the outcome of a run.
type Result struct {
	Dashboard string            `json:"dashboard"`
	Instances []domain.Instance `json:"instances,omitempty"`
	Report    widget.Report     `json:"report"`

	// Exists is set when init found a dashboard of the same name and
	// stopped without writing.
	Exists bool `json:"exists,omitempty"`

	// Patch holds the JSON merge patch from the original body to the
	// merged one on a dry run.
	Patch json.RawMessage `json:"patch,omitempty"`

	Written  bool                       `json:"written"`
	Messages []domain.ValidationMessage `json:"messages,omitempty"`

	// WriteErr is the dashboard write failure, if any. The run itself
	// still counts as successful.
	WriteErr error `json:"-"`

	// Downloaded is the file the widgets were written to.
	Downloaded string `json:"downloaded,omitempty"`
}

// ResolveInstances expands cluster identifiers, or a tag when no
// identifiers are given, into the member instances to plot. Every cluster
// carrying the tag contributes its members. An empty result is an error
// wrapping domain.ErrNoInstances.
func (s *Service) ResolveInstances(ctx context.Context, ids []string, tag *domain.Tag) ([]domain.Instance, error) {
	var instances []domain.Instance

	switch {
	case len(ids) > 0:
		for _, id := range ids {
			cluster, err := s.provider.DescribeCluster(ctx, id)
			if err != nil {
				return nil, err
			}
			instances = append(instances, cluster.Instances()...)
		}
	case tag != nil:
		clusters, err := s.provider.ListClusters(ctx)
		if err != nil {
			return nil, err
		}
		for i := range clusters {
			if clusters[i].HasTag(*tag) {
				instances = append(instances, clusters[i].Instances()...)
			}
		}
	default:
		return nil, errors.New("no cluster identifier or tag given")
	}

	if len(instances) == 0 {
		selector := strings.Join(ids, ",")
		if selector == "" {
			selector = "tag " + tag.String()
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrNoInstances, selector)
	}

	s.log.WithField("instances", len(instances)).Info("resolved cluster instances")
	for _, inst := range instances {
		s.log.WithFields(logrus.Fields{
			"cluster":  inst.ClusterID,
			"instance": inst.InstanceID,
			"role":     inst.Role,
		}).Debug("instance")
	}

	return instances, nil
}

// Init creates a dashboard from the local template. When a dashboard with
// the same name already exists, nothing is written and Result.Exists is set.
func (s *Service) Init(ctx context.Context, cfg runconfig.Config) (*Result, error) {
	instances, err := s.ResolveInstances(ctx, cfg.ClusterIDs, cfg.Tag)
	if err != nil {
		return nil, err
	}
	res := &Result{Dashboard: cfg.Dashboard, Instances: instances}

	names, err := s.provider.ListDashboards(ctx, cfg.Dashboard)
	if err != nil {
		return nil, fmt.Errorf("list dashboards: %w", err)
	}
	for _, name := range names {
		if name == cfg.Dashboard {
			s.log.WithField("dashboard", cfg.Dashboard).Warn("dashboard already exists, not created")
			res.Exists = true
			return res, nil
		}
	}

	body, err := templatefile.Load(cfg.Template)
	if err != nil {
		return nil, err
	}

	original, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}

	res.Report = widget.ApplyBatch(body, widget.Batch{
		Namespace:    cfg.Namespace,
		Region:       cfg.Region,
		Instances:    instances,
		Reinitialize: true,
	}, s.log)

	if err := s.finish(ctx, cfg, original, body, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Update merges the instances into an existing dashboard. With
// cfg.Download set, the current widgets are written to that file instead
// and no merge happens.
func (s *Service) Update(ctx context.Context, cfg runconfig.Config) (*Result, error) {
	instances, err := s.ResolveInstances(ctx, cfg.ClusterIDs, cfg.Tag)
	if err != nil {
		return nil, err
	}
	res := &Result{Dashboard: cfg.Dashboard, Instances: instances}

	body, err := s.fetch(ctx, cfg.Dashboard)
	if err != nil {
		return nil, err
	}

	if cfg.Download != "" {
		if err := templatefile.Save(cfg.Download, body); err != nil {
			return nil, err
		}
		res.Downloaded = cfg.Download
		return res, nil
	}

	original, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode dashboard: %w", err)
	}

	res.Report = widget.ApplyBatch(body, widget.Batch{
		Namespace: cfg.Namespace,
		Region:    cfg.Region,
		Instances: instances,
	}, s.log)

	if err := s.finish(ctx, cfg, original, body, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Download writes the widgets of a dashboard to cfg.Download.
func (s *Service) Download(ctx context.Context, cfg runconfig.Config) (*Result, error) {
	body, err := s.fetch(ctx, cfg.Dashboard)
	if err != nil {
		return nil, err
	}
	if err := templatefile.Save(cfg.Download, body); err != nil {
		return nil, err
	}
	return &Result{Dashboard: cfg.Dashboard, Downloaded: cfg.Download}, nil
}

func (s *Service) fetch(ctx context.Context, name string) (*widget.Body, error) {
	raw, err := s.provider.GetDashboard(ctx, name)
	if err != nil {
		return nil, err
	}
	body, err := widget.ParseBody([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("dashboard %s: %w", name, err)
	}
	return body, nil
}

// finish either computes the dry-run patch or writes the merged body.
// A failed write is recorded on res rather than returned.
func (s *Service) finish(ctx context.Context, cfg runconfig.Config, original []byte, body *widget.Body, res *Result) error {
	merged, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode dashboard: %w", err)
	}

	if cfg.DryRun {
		patch, err := jsonpatch.CreateMergePatch(original, merged)
		if err != nil {
			return fmt.Errorf("compute merge patch: %w", err)
		}
		res.Patch = patch
		return nil
	}

	msgs, err := s.provider.PutDashboard(ctx, cfg.Dashboard, string(merged))
	if err != nil {
		s.log.WithError(err).WithField("dashboard", cfg.Dashboard).Error("dashboard write failed")
		res.WriteErr = err
		return nil
	}
	for _, m := range msgs {
		s.log.WithField("path", m.DataPath).Warn(m.Message)
	}

	res.Written = true
	res.Messages = msgs
	return nil
}
