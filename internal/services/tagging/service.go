// Package tagging adds or removes a tag on a list of clusters.
package tagging

import (
	"context"

	"github.com/dataTrevor/automatic-create-dashboard/internal/domain"
	"github.com/dataTrevor/automatic-create-dashboard/internal/logging"

	"github.com/sirupsen/logrus"
)

// Provider is what tagging needs from a backend.
type Provider interface {
	domain.ClusterProvider
	domain.Tagger
}

// Service applies tag changes to clusters.
type Service struct {
	provider Provider
	log      logrus.FieldLogger
}

// New creates a tagging service. A nil logger discards diagnostics.
func New(provider Provider, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logging.Discard()
	}
	return &Service{provider: provider, log: log}
}

// AddTag tags every cluster in ids and returns how many were tagged.
// All clusters are looked up before any is changed, so an unknown id
// leaves every cluster untouched.
func (s *Service) AddTag(ctx context.Context, ids []string, tag domain.Tag) (int, error) {
	clusters, err := s.lookup(ctx, ids)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, c := range clusters {
		if err := s.provider.AddTag(ctx, c.ARN, tag); err != nil {
			return n, err
		}
		s.log.WithFields(logrus.Fields{"cluster": c.ID, "tag": tag.String()}).Info("tag added")
		n++
	}
	return n, nil
}

// RemoveTag removes the tag key from every cluster in ids and returns how
// many clusters were changed. The tag value is ignored.
func (s *Service) RemoveTag(ctx context.Context, ids []string, tag domain.Tag) (int, error) {
	clusters, err := s.lookup(ctx, ids)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, c := range clusters {
		if err := s.provider.RemoveTag(ctx, c.ARN, tag.Key); err != nil {
			return n, err
		}
		s.log.WithFields(logrus.Fields{"cluster": c.ID, "key": tag.Key}).Info("tag removed")
		n++
	}
	return n, nil
}

func (s *Service) lookup(ctx context.Context, ids []string) ([]*domain.Cluster, error) {
	clusters := make([]*domain.Cluster, 0, len(ids))
	for _, id := range ids {
		c, err := s.provider.DescribeCluster(ctx, id)
		if err != nil {
			return nil, err
		}
		clusters = append(clusters, c)
	}
	s.log.WithField("clusters", len(clusters)).Debug("clusters to change")
	return clusters, nil
}
