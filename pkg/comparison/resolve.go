package comparison

import (
	"fmt"

	"github.com/goliatone/go-formcompare/pkg/copyop"
	"github.com/goliatone/go-formcompare/pkg/overlay"
)

// Resolution is the answer to "may this control be copied to that side, and
// what kind of copy is it". Denials carry a human readable reason; the
// decision itself is always present, so callers can still classify the path.
type Resolution struct {
	Path     string
	Decision copyop.Decision
	Allowed  bool
	Reason   string
}

// CopyAllowed reports whether the target side accepts copies at all: the copy
// feature must be enabled for that side and the target pane must not be
// disabled. Unknown sides report false.
func (c *Comparison) CopyAllowed(target Side) bool {
	pane, err := c.pane(target)
	if err != nil {
		return false
	}
	return c.copyEnabled(target) && !pane.Disabled
}

// ResolveCopy classifies the path and applies the copy policy for the target
// side. Path content never causes an error; only an unknown side does.
func (c *Comparison) ResolveCopy(path string, target Side) (Resolution, error) {
	pane, err := c.pane(target)
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{Path: path, Decision: copyop.Decide(path)}
	rule, hasRule := c.Rule(path)

	switch {
	case !c.copyEnabled(target):
		res.Reason = fmt.Sprintf("copy to %s is not enabled", target)
	case pane.Disabled:
		res.Reason = fmt.Sprintf("pane %q is disabled", pane.Name)
	case pane.excludes(path):
		res.Reason = fmt.Sprintf("pane %q excludes this field", pane.Name)
	case hasRule && rule.Exclude:
		res.Reason = fmt.Sprintf("overlay excludes %q from the comparison", path)
	case hasRule && rule.Copy == overlay.CopyDeny:
		res.Reason = fmt.Sprintf("overlay denies copying %q", path)
	default:
		res.Allowed = true
	}

	return res, nil
}
