package comparison

import (
	"github.com/goliatone/go-formcompare/pkg/metrics"
	"github.com/goliatone/go-formcompare/pkg/overlay"
)

// Option configures a Comparison during New.
type Option func(*Comparison)

// WithLeftLabel overrides the left column label.
func WithLeftLabel(label string) Option {
	return func(c *Comparison) {
		c.left.Label = label
	}
}

// WithRightLabel overrides the right column label.
func WithRightLabel(label string) Option {
	return func(c *Comparison) {
		c.right.Label = label
	}
}

// WithCopyToLeft enables copying values into the left pane. Copy arrows are
// off by default on both sides.
func WithCopyToLeft() Option {
	return func(c *Comparison) {
		c.copyToLeft = true
	}
}

// WithCopyToRight enables copying values into the right pane.
func WithCopyToRight() Option {
	return func(c *Comparison) {
		c.copyToRight = true
	}
}

// WithOverlay attaches a profile store. The profile matching the comparison
// name contributes labels, a legend and per field rules.
func WithOverlay(store *overlay.Store) Option {
	return func(c *Comparison) {
		c.overlay = store
	}
}

// WithMetricsOptions forwards options to every Metrics call, for example a
// custom scorer or a theme derived palette.
func WithMetricsOptions(opts ...metrics.Option) Option {
	return func(c *Comparison) {
		c.metricsOpts = append(c.metricsOpts, opts...)
	}
}
