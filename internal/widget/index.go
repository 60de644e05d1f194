package widget

// FindWidget returns the index of the first widget that plots metricName
// from namespace. The boolean is false when no widget matches.
func FindWidget(widgets []Widget, namespace, metricName string) (int, bool) {
	for i, w := range widgets {
		for _, e := range w.Entries() {
			if e.matches(namespace, metricName) {
				return i, true
			}
		}
	}
	return -1, false
}

// MetricNames lists the distinct metric names plotted from namespace across
// all widgets, in the order they are first seen.
func MetricNames(widgets []Widget, namespace string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, w := range widgets {
		for _, e := range w.Entries() {
			ns, ok := e.Namespace()
			if !ok || ns != namespace || !leadingLetter.MatchString(ns) {
				continue
			}
			name, ok := e.MetricName()
			if !ok || !leadingLetter.MatchString(name) || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
