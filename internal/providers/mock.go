package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/dataTrevor/automatic-create-dashboard/internal/domain"
)

// MockProvider is an in-memory domain.Provider for testing.
type MockProvider struct {
	Clusters   []domain.Cluster
	Dashboards map[string]string
	Messages   []domain.ValidationMessage

	// Errors returned by the matching calls when set.
	DescribeErr error
	ListErr     error
	GetErr      error
	PutErr      error
	ListDashErr error
	TagErr      error

	// Puts records every dashboard name written, in order.
	Puts []string
	// TagCalls records tag changes as "add <arn> <key:value>" or
	// "remove <arn> <key>".
	TagCalls []string
}

// NewMockProvider returns a MockProvider holding the given clusters.
func NewMockProvider(clusters ...domain.Cluster) *MockProvider {
	return &MockProvider{
		Clusters:   clusters,
		Dashboards: make(map[string]string),
	}
}

func (m *MockProvider) GetDisplayName() string { return "Mock" }

func (m *MockProvider) DescribeCluster(_ context.Context, id string) (*domain.Cluster, error) {
	if m.DescribeErr != nil {
		return nil, m.DescribeErr
	}
	for i := range m.Clusters {
		if m.Clusters[i].ID == id {
			c := m.Clusters[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("failed to describe cluster %s: %w", id, domain.ErrNotFound)
}

func (m *MockProvider) ListClusters(_ context.Context) ([]domain.Cluster, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Clusters, nil
}

func (m *MockProvider) AddTag(_ context.Context, arn string, tag domain.Tag) error {
	if m.TagErr != nil {
		return m.TagErr
	}
	m.TagCalls = append(m.TagCalls, "add "+arn+" "+tag.String())
	return nil
}

func (m *MockProvider) RemoveTag(_ context.Context, arn string, key string) error {
	if m.TagErr != nil {
		return m.TagErr
	}
	m.TagCalls = append(m.TagCalls, "remove "+arn+" "+key)
	return nil
}

func (m *MockProvider) GetDashboard(_ context.Context, name string) (string, error) {
	if m.GetErr != nil {
		return "", m.GetErr
	}
	body, ok := m.Dashboards[name]
	if !ok {
		return "", fmt.Errorf("failed to get dashboard %s: %w", name, domain.ErrNotFound)
	}
	return body, nil
}

func (m *MockProvider) PutDashboard(_ context.Context, name string, body string) ([]domain.ValidationMessage, error) {
	if m.PutErr != nil {
		return nil, m.PutErr
	}
	if m.Dashboards == nil {
		m.Dashboards = make(map[string]string)
	}
	m.Dashboards[name] = body
	m.Puts = append(m.Puts, name)
	return m.Messages, nil
}

func (m *MockProvider) ListDashboards(_ context.Context, prefix string) ([]string, error) {
	if m.ListDashErr != nil {
		return nil, m.ListDashErr
	}
	var names []string
	for name := range m.Dashboards {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names, nil
}
