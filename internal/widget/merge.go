package widget

import (
	"github.com/dataTrevor/automatic-create-dashboard/internal/domain"
)

// DefaultPeriod is the period, in seconds, given to new series when the
// widget does not configure one.
const DefaultPeriod = 300

// Dimension names written into new series.
const (
	dimRole    = "Role"
	dimCluster = "DBClusterIdentifier"
)

// IdentityKey identifies a series for an instance: region, metric, instance
// and role. The cluster identifier is deliberately not part of it.
func IdentityKey(region, metricName string, inst domain.Instance) string {
	return region + "-" + metricName + "-" + inst.InstanceID + "-" + string(inst.Role)
}

// MergeInput describes one metric's merge.
type MergeInput struct {
	Namespace  string
	MetricName string
	Region     string
	Instances  []domain.Instance

	// Reinitialize discards the widget's existing series before adding
	// instances. Used when building a dashboard from a template whose
	// entries are placeholders.
	Reinitialize bool
}

// MergeStats counts what a merge did.
type MergeStats struct {
	Considered int `json:"considered"`
	Inserted   int `json:"inserted"`
	Skipped    int `json:"skipped"`
}

// MergeInstances returns a copy of w whose metric list gains one series per
// instance not already in seen. The input widget is not modified; every
// property other than "metrics" is carried over as-is.
//
// seen is consulted but never extended, so duplicate instances within one
// batch are all inserted.
func MergeInstances(w Widget, in MergeInput, seen DedupSet) (Widget, MergeStats) {
	var metrics []any
	if in.Reinitialize {
		metrics = make([]any, 0, len(in.Instances))
	} else {
		old := w.Metrics()
		metrics = make([]any, 0, len(old)+len(in.Instances))
		metrics = append(metrics, old...)
	}

	period := w.Period()
	if period == nil {
		period = DefaultPeriod
	}

	stats := MergeStats{Considered: len(in.Instances)}
	for _, inst := range in.Instances {
		if seen.Has(IdentityKey(in.Region, in.MetricName, inst)) {
			stats.Skipped++
			continue
		}
		metrics = append(metrics, []any{
			in.Namespace,
			in.MetricName,
			dimRole, string(inst.Role),
			dimCluster, inst.ClusterID,
			map[string]any{
				regionKey: in.Region,
				periodKey: period,
				labelKey:  inst.Label(),
			},
		})
		stats.Inserted++
	}

	props := make(map[string]any, len(w.Properties())+1)
	for k, v := range w.Properties() {
		props[k] = v
	}
	props[metricsKey] = metrics

	updated := make(Widget, len(w))
	for k, v := range w {
		updated[k] = v
	}
	updated[propertiesKey] = props

	return updated, stats
}
