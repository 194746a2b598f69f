package copyop

import "github.com/goliatone/go-formcompare/pkg/fieldpath"

// Op is one concrete write the mutation layer performs for a copy trigger:
// read the value addressed by Source in the source pane, write it to Target
// in the target pane.
type Op struct {
	Source   string
	Target   string
	Behavior Behavior
}

// Plan expands a single copy trigger into the per-control operations it
// implies. Ops keep the order of the source controls they were selected from.
type Plan struct {
	Trigger Decision
	Ops     []Op
}

// PlanOption adjusts how BuildPlan pairs source controls with target
// addresses.
type PlanOption func(*planConfig)

type planConfig struct {
	targetIndex    string
	hasTargetIndex bool
}

// WithTargetIndex rebases planned targets onto the item identity the target
// pane assigned. An add-new-item copy gives the target element its own index
// or placeholder id, so source controls under reviews[0] must land under
// reviews[new_123] on the other side.
func WithTargetIndex(index string) PlanOption {
	return func(cfg *planConfig) {
		cfg.targetIndex = index
		cfg.hasTargetIndex = true
	}
}

// BuildPlan selects the source controls addressed by the trigger prefix and
// pairs each with the target address it writes. Without options the target
// mirrors the source path; WithTargetIndex remaps the trigger's index on
// every target. Controls outside the trigger prefix are ignored, so callers
// can pass the whole pane's control universe.
func BuildPlan(trigger string, sourceControls []string, opts ...PlanOption) Plan {
	var cfg planConfig
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	plan := Plan{Trigger: Decide(trigger)}
	for _, control := range sourceControls {
		if !fieldpath.MatchesPrefix(control, trigger) {
			continue
		}
		target := control
		if cfg.hasTargetIndex && plan.Trigger.Parsed.HasIndex {
			target = fieldpath.Remap(control, plan.Trigger.Parsed.Index.Token(), cfg.targetIndex)
		}
		plan.Ops = append(plan.Ops, Op{
			Source:   control,
			Target:   target,
			Behavior: Resolve(target),
		})
	}
	return plan
}

// RemapOps rewrites queued op targets from one item identity to another.
// Subfield writes queued against a copied item must be remapped before
// dispatch once the target pane assigns the item its own index, or they
// address a wrong or missing element. Ops not carrying the source index come
// back unchanged.
func RemapOps(ops []Op, sourceIndex, targetIndex string) []Op {
	if len(ops) == 0 {
		return nil
	}
	out := make([]Op, len(ops))
	for i, op := range ops {
		op.Target = fieldpath.Remap(op.Target, sourceIndex, targetIndex)
		out[i] = op
	}
	return out
}
