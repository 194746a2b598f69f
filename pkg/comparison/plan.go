package comparison

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formcompare/pkg/copyop"
	"github.com/goliatone/go-formcompare/pkg/fieldpath"
)

// PlanCopy resolves the trigger against the target side and expands it into a
// copy plan. The trigger and source controls may be bare comparison paths or
// control names qualified with the source pane's prefix; either way the
// returned ops carry the source pane prefix on Source and the target pane
// prefix on Target. Panes without prefixes plan entirely in bare paths, which
// is the shape the formdata patch bridge expects.
func (c *Comparison) PlanCopy(trigger string, target Side, sourceControls []string, opts ...copyop.PlanOption) (copyop.Plan, error) {
	targetPane, err := c.pane(target)
	if err != nil {
		return copyop.Plan{}, err
	}
	sourcePane := c.other(target)

	bareTrigger := stripPrefix(trigger, sourcePane.Prefix)
	res, err := c.ResolveCopy(bareTrigger, target)
	if err != nil {
		return copyop.Plan{}, err
	}
	if !res.Allowed {
		return copyop.Plan{}, fmt.Errorf("comparison: copy %q to %s: %s", bareTrigger, target, res.Reason)
	}

	bare := make([]string, len(sourceControls))
	for i, control := range sourceControls {
		bare[i] = stripPrefix(control, sourcePane.Prefix)
	}

	plan := copyop.BuildPlan(bareTrigger, bare, opts...)
	for i := range plan.Ops {
		plan.Ops[i].Source = fieldpath.Join(sourcePane.Prefix, plan.Ops[i].Source)
		plan.Ops[i].Target = fieldpath.Join(targetPane.Prefix, plan.Ops[i].Target)
	}
	return plan, nil
}

// stripPrefix removes a pane prefix from a qualified control name. Bare names
// and names under other prefixes pass through unchanged.
func stripPrefix(path, prefix string) string {
	if prefix == "" {
		return path
	}
	if path == prefix {
		return ""
	}
	if rest, ok := strings.CutPrefix(path, prefix+"."); ok {
		return rest
	}
	return path
}
