package widget

import (
	"github.com/dataTrevor/automatic-create-dashboard/internal/domain"

	"github.com/sirupsen/logrus"
)

// Batch is one merge run over a dashboard body.
type Batch struct {
	Namespace    string
	Region       string
	Instances    []domain.Instance
	Reinitialize bool
}

// MetricResult records what happened to a single metric name.
type MetricResult struct {
	Metric     string     `json:"metric"`
	Found      bool       `json:"found"`
	Title      string     `json:"title,omitempty"`
	Backfilled int        `json:"backfilled"`
	Stats      MergeStats `json:"stats"`
}

// Report summarises a batch.
type Report struct {
	Metrics []MetricResult `json:"metrics"`
}

// Inserted returns the total number of series added across all metrics.
func (r Report) Inserted() int {
	n := 0
	for _, m := range r.Metrics {
		n += m.Stats.Inserted
	}
	return n
}

// Missing returns the metric names that had no matching widget.
func (r Report) Missing() []string {
	var names []string
	for _, m := range r.Metrics {
		if !m.Found {
			names = append(names, m.Metric)
		}
	}
	return names
}

// ApplyBatch merges the batch's instances into every widget of body that
// plots a metric from the batch namespace. Each updated widget is moved to
// the end of the widget sequence; untouched widgets keep their relative
// order. A metric without a widget is logged and skipped.
func ApplyBatch(body *Body, batch Batch, log logrus.FieldLogger) Report {
	var report Report

	for _, name := range MetricNames(body.Widgets, batch.Namespace) {
		entry := log.WithFields(logrus.Fields{
			"namespace": batch.Namespace,
			"metric":    name,
		})

		idx, found := FindWidget(body.Widgets, batch.Namespace, name)
		if !found {
			entry.Warn("widget not found for metric, skipping")
			report.Metrics = append(report.Metrics, MetricResult{Metric: name})
			continue
		}

		old := body.Widgets[idx]
		seen, backfilled := BuildDedupSet(old, name)
		updated, stats := MergeInstances(old, MergeInput{
			Namespace:    batch.Namespace,
			MetricName:   name,
			Region:       batch.Region,
			Instances:    batch.Instances,
			Reinitialize: batch.Reinitialize,
		}, seen)

		body.Widgets = append(body.Widgets[:idx], body.Widgets[idx+1:]...)
		body.Widgets = append(body.Widgets, updated)

		entry.WithFields(logrus.Fields{
			"considered": stats.Considered,
			"inserted":   stats.Inserted,
			"skipped":    stats.Skipped,
		}).Infof("%d instance(s) considered, %d not added because already present", stats.Considered, stats.Skipped)

		report.Metrics = append(report.Metrics, MetricResult{
			Metric:     name,
			Found:      true,
			Title:      updated.Title(),
			Backfilled: backfilled,
			Stats:      stats,
		})
	}

	return report
}
