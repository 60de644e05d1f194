package widget

import "fmt"

// placeholderLabel stands in for entries that carry no label, as the
// console's default template entries do.
const placeholderLabel = "sample"

// DedupSet holds the keys of series already present on a widget.
type DedupSet map[string]struct{}

// Has reports whether key is in the set.
func (s DedupSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of distinct keys.
func (s DedupSet) Len() int { return len(s) }

// BuildDedupSet derives "<region>-<metric>-<label>" keys from every entry of
// the widget.
//
// Entries whose options lack a region are backfilled in place with the
// widget's region (when it has one); later reads of those entries see the
// backfilled value. Entries without an options object are keyed with the
// placeholder label and the widget region.
// The number of backfilled entries is returned alongside the set.
//
// The key uses the entry label, while new instances are tested with
// IdentityKey ("<region>-<metric>-<instance>-<role>"). The two agree for
// entries this tool wrote (label "<instance>-<role>") but not necessarily
// for hand-authored ones.
func BuildDedupSet(w Widget, metricName string) (DedupSet, int) {
	set := make(DedupSet)
	backfilled := 0
	widgetRegion := w.Region()

	for _, e := range w.Entries() {
		label := placeholderLabel
		region := widgetRegion

		opts, ok := e.Options()
		if ok {
			if v, present := opts[labelKey]; present {
				label = stringify(v)
			}
			if v, present := opts[regionKey]; present {
				region = stringify(v)
			} else if widgetRegion != "" {
				opts[regionKey] = widgetRegion
				backfilled++
			}
		}

		set[dedupKey(region, metricName, label)] = struct{}{}
	}
	return set, backfilled
}

func dedupKey(region, metricName, label string) string {
	return region + "-" + metricName + "-" + label
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}
