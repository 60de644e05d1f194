package domain

import "context"

// ClusterProvider answers cluster membership queries.
type ClusterProvider interface {
	// DescribeCluster returns a single cluster by identifier. A missing
	// cluster is reported as an error wrapping ErrNotFound.
	DescribeCluster(ctx context.Context, id string) (*Cluster, error)

	// ListClusters returns every cluster visible in the region.
	ListClusters(ctx context.Context) ([]Cluster, error)
}

// Tagger adds and removes tags on cluster resources.
type Tagger interface {
	AddTag(ctx context.Context, arn string, tag Tag) error
	RemoveTag(ctx context.Context, arn string, key string) error
}

// ValidationMessage is a non-fatal remark returned by the dashboard store
// when it accepts a body, e.g. an unknown metric reference.
type ValidationMessage struct {
	DataPath string `json:"data_path,omitempty"`
	Message  string `json:"message"`
}

// DashboardStore reads and writes dashboard bodies as raw JSON text.
type DashboardStore interface {
	GetDashboard(ctx context.Context, name string) (string, error)
	PutDashboard(ctx context.Context, name string, body string) ([]ValidationMessage, error)
	ListDashboards(ctx context.Context, prefix string) ([]string, error)
}

// Provider is the full set of operations a cloud backend supplies.
type Provider interface {
	// GetDisplayName returns the human-readable provider name (e.g. "AWS").
	GetDisplayName() string

	ClusterProvider
	Tagger
	DashboardStore
}
