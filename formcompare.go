package formcompare

import (
	"context"

	"github.com/goliatone/go-formcompare/pkg/comparison"
	"github.com/goliatone/go-formcompare/pkg/copyop"
	"github.com/goliatone/go-formcompare/pkg/fieldpath"
	"github.com/goliatone/go-formcompare/pkg/metrics"
	"github.com/goliatone/go-formcompare/pkg/overlay"
	"github.com/goliatone/go-formcompare/pkg/report"
)

// Kind sorts a field path into its addressing category; alias exported via
// the root package for convenience.
type Kind = fieldpath.Kind

// ParsedPath is the decomposed view of one field path.
type ParsedPath = fieldpath.ParsedPath

// Behavior names the copy semantics resolved for a trigger path.
type Behavior = copyop.Behavior

// Decision bundles a trigger path with its parsed view and behavior.
type Decision = copyop.Decision

// Plan expands a copy trigger into per-control operations.
type Plan = copyop.Plan

// Comparison pairs two panes over a shared schema with a copy policy.
type Comparison = comparison.Comparison

// Pane describes one column of a comparison.
type Pane = comparison.Pane

// Side names one of the two panes.
type Side = comparison.Side

// Re-exported constants so quick-start callers never import the subpackages.
const (
	KindPlain    = fieldpath.KindPlain
	KindFullItem = fieldpath.KindFullItem
	KindSubfield = fieldpath.KindSubfield

	BehaviorStandardCopy           = copyop.BehaviorStandardCopy
	BehaviorAddNewItem             = copyop.BehaviorAddNewItem
	BehaviorUpdateExistingSubfield = copyop.BehaviorUpdateExistingSubfield

	SideLeft  = comparison.SideLeft
	SideRight = comparison.SideRight
)

// Classify maps a path to its Kind.
func Classify(path string) Kind {
	return fieldpath.Classify(path)
}

// Parse decomposes a path into base, index and remainder in one pass.
func Parse(path string) ParsedPath {
	return fieldpath.Parse(path)
}

// Decide resolves the copy behavior for one trigger path.
func Decide(path string) Decision {
	return copyop.Decide(path)
}

// NewComparison exposes the comparison constructor from the top-level module.
func NewComparison(name string, left, right Pane, options ...comparison.Option) (*Comparison, error) {
	return comparison.New(name, left, right, options...)
}

// RenderReport scores the two snapshots, resolves copy behavior for every
// control path, and renders the summary using the named renderer. It is the
// simplest entry point for callers that just want report output.
func RenderReport(ctx context.Context, c *Comparison, left, right map[string]any, controls []string, rendererName string) ([]byte, error) {
	registry, err := report.DefaultRegistry()
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}

	decisions := make([]Decision, 0, len(controls))
	for _, path := range controls {
		decisions = append(decisions, copyop.Decide(path))
	}
	data := report.BuildData(c, c.Metrics(left, right, controls), decisions)
	return renderer.Render(ctx, data)
}

// WithOverlay attaches an overlay profile store that can be passed to
// NewComparison alongside other options.
func WithOverlay(store *overlay.Store) comparison.Option {
	return comparison.WithOverlay(store)
}

// WithCopyToLeft enables copying values into the left pane.
func WithCopyToLeft() comparison.Option {
	return comparison.WithCopyToLeft()
}

// WithCopyToRight enables copying values into the right pane.
func WithCopyToRight() comparison.Option {
	return comparison.WithCopyToRight()
}

// WithMetricsOptions forwards scorer and palette options to every Metrics
// call on the comparison.
func WithMetricsOptions(opts ...metrics.Option) comparison.Option {
	return comparison.WithMetricsOptions(opts...)
}
