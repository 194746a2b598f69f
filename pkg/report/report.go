package report

import (
	"sort"

	"github.com/goliatone/go-formcompare/internal/humanize"
	"github.com/goliatone/go-formcompare/pkg/comparison"
	"github.com/goliatone/go-formcompare/pkg/copyop"
	"github.com/goliatone/go-formcompare/pkg/fieldpath"
	"github.com/goliatone/go-formcompare/pkg/metrics"
)

// Row is one control path in the report: its resolved copy behavior plus the
// metric entry scored for it, when one exists.
type Row struct {
	Path     string  `json:"path"`
	Label    string  `json:"label"`
	Kind     string  `json:"kind"`
	Behavior string  `json:"behavior"`
	Metric   float64 `json:"metric"`
	Color    string  `json:"color,omitempty"`
	Comment  string  `json:"comment,omitempty"`
	Badge    string  `json:"badge,omitempty"`
}

// Data is the renderer input: comparison identity, resolved labels and one
// row per path, sorted by path for stable output.
type Data struct {
	Name       string `json:"name"`
	LeftLabel  string `json:"leftLabel"`
	RightLabel string `json:"rightLabel"`
	Legend     string `json:"legend,omitempty"`
	Rows       []Row  `json:"rows"`
}

// BuildData flattens a comparison into renderer input. Every decision
// contributes a row, as does every scored path the decisions missed; paths the
// overlay excludes are dropped. Metric entries attach by exact path first,
// then by the index-free form, matching how overlay rules resolve. A dict
// entry consumed as a decision's fallback does not emit a second row of its
// own.
func BuildData(c *comparison.Comparison, dict metrics.Dict, decisions []copyop.Decision) Data {
	data := Data{
		Name:       c.Name(),
		LeftLabel:  c.Left().Label,
		RightLabel: c.Right().Label,
		Legend:     c.Legend(),
		Rows:       make([]Row, 0, len(decisions)+len(dict)),
	}

	seen := make(map[string]bool, len(decisions)+len(dict))
	add := func(decision copyop.Decision) {
		if seen[decision.Path] {
			return
		}
		seen[decision.Path] = true

		entry, key, scored := lookupEntry(dict, decision.Path)
		if scored {
			seen[key] = true
		}

		rule, hasRule := c.Rule(decision.Path)
		if hasRule && rule.Exclude {
			return
		}

		row := Row{
			Path:     decision.Path,
			Label:    humanize.Label(decision.Path),
			Kind:     string(decision.Parsed.Kind),
			Behavior: string(decision.Behavior),
		}
		if hasRule {
			row.Badge = rule.Badge
		}
		if scored {
			row.Metric = entry.Metric
			row.Color = entry.Color
			row.Comment = entry.Comment
		}
		data.Rows = append(data.Rows, row)
	}

	for _, decision := range decisions {
		add(decision)
	}
	for path := range dict {
		if seen[path] {
			continue
		}
		add(copyop.Decide(path))
	}

	sort.Slice(data.Rows, func(i, j int) bool { return data.Rows[i].Path < data.Rows[j].Path })
	return data
}

// lookupEntry resolves the metric entry for a path, falling back to the
// index-free form and reporting which dict key matched.
func lookupEntry(dict metrics.Dict, path string) (metrics.Entry, string, bool) {
	if entry, ok := dict[path]; ok {
		return entry, path, true
	}
	normalized := fieldpath.Normalize(path)
	if entry, ok := dict[normalized]; ok {
		return entry, normalized, true
	}
	return metrics.Entry{}, "", false
}
