package comparison

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formcompare/pkg/metrics"
	"github.com/goliatone/go-formcompare/pkg/overlay"
)

// Side names one of the two panes.
type Side string

const (
	// SideLeft is the reference pane.
	SideLeft Side = "left"
	// SideRight is the pane under review.
	SideRight Side = "right"
)

// Default column labels, matching the upstream comparison view.
const (
	DefaultLeftLabel  = "Reference"
	DefaultRightLabel = "Generated"
)

// Pane describes one column of the comparison. Schema is the logical model
// identity both panes must share. Prefix, when set, is the dotted namespace
// the rendering layer mounts the pane's controls under. ExcludeFields lists
// top level fields hidden from this pane.
type Pane struct {
	Name          string
	Schema        string
	Prefix        string
	Label         string
	Disabled      bool
	ExcludeFields []string
}

// excludes reports whether the pane hides the top level field the path
// addresses.
func (p Pane) excludes(path string) bool {
	head := path
	if i := strings.IndexAny(head, ".["); i >= 0 {
		head = head[:i]
	}
	for _, name := range p.ExcludeFields {
		if name == head {
			return true
		}
	}
	return false
}

// Comparison pairs two panes and the copy policy between them.
type Comparison struct {
	name        string
	left, right Pane
	legend      string
	copyToLeft  bool
	copyToRight bool
	overlay     *overlay.Store
	metricsOpts []metrics.Option
}

// New builds a named comparison over two panes. The panes must agree on
// Schema; empty pane names default to the side names and empty labels resolve
// through the overlay profile, then the package defaults.
func New(name string, left, right Pane, opts ...Option) (*Comparison, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("comparison: name is required")
	}
	if left.Schema == "" || right.Schema == "" {
		return nil, errors.New("comparison: both panes need a schema")
	}
	if left.Schema != right.Schema {
		return nil, fmt.Errorf("comparison: panes must share a schema, got %q and %q", left.Schema, right.Schema)
	}

	c := &Comparison{name: name, left: left, right: right}
	if c.left.Name == "" {
		c.left.Name = string(SideLeft)
	}
	if c.right.Name == "" {
		c.right.Name = string(SideRight)
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.overlay != nil {
		if profile, ok := c.overlay.Profile(name); ok {
			if c.left.Label == "" {
				c.left.Label = profile.LeftLabel
			}
			if c.right.Label == "" {
				c.right.Label = profile.RightLabel
			}
			c.legend = profile.Legend
		}
	}
	if c.left.Label == "" {
		c.left.Label = DefaultLeftLabel
	}
	if c.right.Label == "" {
		c.right.Label = DefaultRightLabel
	}

	return c, nil
}

// Name returns the comparison's identifier, which doubles as its overlay
// profile key.
func (c *Comparison) Name() string { return c.name }

// Left returns the left pane with its resolved label.
func (c *Comparison) Left() Pane { return c.left }

// Right returns the right pane with its resolved label.
func (c *Comparison) Right() Pane { return c.right }

// Legend returns the sanitized legend markup from the overlay profile, or ""
// when none applies.
func (c *Comparison) Legend() string { return c.legend }

// Rule returns the overlay rule governing a path, when one is loaded.
func (c *Comparison) Rule(path string) (overlay.FieldRule, bool) {
	if c.overlay == nil {
		return overlay.FieldRule{}, false
	}
	return c.overlay.Rule(c.name, path)
}

// pane resolves a side to its pane. The side value is the only input that can
// make comparison operations fail.
func (c *Comparison) pane(side Side) (Pane, error) {
	switch side {
	case SideLeft:
		return c.left, nil
	case SideRight:
		return c.right, nil
	default:
		return Pane{}, fmt.Errorf("comparison: unknown side %q", side)
	}
}

// other returns the pane opposite the given target side.
func (c *Comparison) other(target Side) Pane {
	if target == SideLeft {
		return c.right
	}
	return c.left
}

func (c *Comparison) copyEnabled(target Side) bool {
	if target == SideLeft {
		return c.copyToLeft
	}
	return c.copyToRight
}
