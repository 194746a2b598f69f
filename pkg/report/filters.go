package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/flosch/pongo2/v6"
)

const metricBarSegments = 10

// Filters register globally in pongo2, so guard against double registration
// when multiple renderers construct engines.
func registerReportFilters() {
	if !pongo2.FilterExists("metricbar") {
		_ = pongo2.RegisterFilter("metricbar", filterMetricBar)
	}
	if !pongo2.FilterExists("percent") {
		_ = pongo2.RegisterFilter("percent", filterPercent)
	}
}

// filterMetricBar renders a metric in [0, 1] as a fixed width ASCII gauge,
// e.g. 0.5 becomes "#####-----".
func filterMetricBar(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	filled := int(math.Round(clampMetric(in.Float()) * metricBarSegments))
	bar := strings.Repeat("#", filled) + strings.Repeat("-", metricBarSegments-filled)
	return pongo2.AsValue(bar), nil
}

// filterPercent renders a metric in [0, 1] as a whole percentage.
func filterPercent(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(fmt.Sprintf("%.0f%%", clampMetric(in.Float())*100)), nil
}

func clampMetric(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
