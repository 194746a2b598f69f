package comparison

import (
	"github.com/goliatone/go-formcompare/pkg/metrics"
)

// Metrics scores the given paths across the two pane snapshots. Overlay rules
// apply on top of the base scoring: a rule color overrides the palette color
// and excluded fields drop out of the result entirely. Pane level
// ExcludeFields do not affect scoring; they only hide fields from one column.
func (c *Comparison) Metrics(left, right map[string]any, paths []string) metrics.Dict {
	dict := metrics.Compare(left, right, paths, c.metricsOpts...)
	for path, entry := range dict {
		rule, ok := c.Rule(path)
		if !ok {
			continue
		}
		if rule.Exclude {
			delete(dict, path)
			continue
		}
		if rule.Color != "" {
			entry.Color = rule.Color
			dict[path] = entry
		}
	}
	return dict
}
