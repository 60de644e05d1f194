package widget

import "regexp"

const (
	propertiesKey = "properties"
	metricsKey    = "metrics"
	periodKey     = "period"
	regionKey     = "region"
	labelKey      = "label"
	titleKey      = "title"
)

// leadingLetter guards against metric entries whose namespace or metric
// name slot holds a placeholder ("...", ".", numbers, expression objects).
var leadingLetter = regexp.MustCompile(`^[a-zA-Z]`)

// Widget is a single dashboard panel as a JSON object.
type Widget map[string]any

// Properties returns the widget's "properties" object, or nil.
func (w Widget) Properties() map[string]any {
	props, _ := w[propertiesKey].(map[string]any)
	return props
}

// Metrics returns the raw "properties.metrics" list, or nil.
func (w Widget) Metrics() []any {
	metrics, _ := w.Properties()[metricsKey].([]any)
	return metrics
}

// Entries returns the metric list elements that are arrays, in order.
// The returned entries share storage with the widget.
func (w Widget) Entries() []Entry {
	metrics := w.Metrics()
	entries := make([]Entry, 0, len(metrics))
	for _, raw := range metrics {
		if e, ok := raw.([]any); ok {
			entries = append(entries, Entry(e))
		}
	}
	return entries
}

// Region returns "properties.region" when it is a string.
func (w Widget) Region() string {
	region, _ := w.Properties()[regionKey].(string)
	return region
}

// Period returns "properties.period" as stored, or nil when unset.
func (w Widget) Period() any {
	return w.Properties()[periodKey]
}

// Title returns "properties.title", or "" when unset.
func (w Widget) Title() string {
	title, _ := w.Properties()[titleKey].(string)
	return title
}

// Entry is one metric series tuple:
//
//	[namespace, metricName, dimKey1, dimValue1, ..., options]
type Entry []any

// Namespace returns the first element when it is a string.
func (e Entry) Namespace() (string, bool) {
	if len(e) == 0 {
		return "", false
	}
	ns, ok := e[0].(string)
	return ns, ok
}

// MetricName returns the second element when it is a string.
func (e Entry) MetricName() (string, bool) {
	if len(e) < 2 {
		return "", false
	}
	name, ok := e[1].(string)
	return name, ok
}

// Options returns the trailing options object, if the entry has one.
func (e Entry) Options() (map[string]any, bool) {
	if len(e) == 0 {
		return nil, false
	}
	opts, ok := e[len(e)-1].(map[string]any)
	return opts, ok
}

// matches reports whether the entry plots metricName from namespace.
func (e Entry) matches(namespace, metricName string) bool {
	ns, ok := e.Namespace()
	if !ok || !leadingLetter.MatchString(ns) || ns != namespace {
		return false
	}
	name, ok := e.MetricName()
	return ok && name == metricName
}
