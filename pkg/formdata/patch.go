package formdata

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/goliatone/go-formcompare/pkg/copyop"
)

// patchOp is one RFC 6902 operation. Value stays un-omitted so an explicit
// null still round-trips as a valid replace.
type patchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// PlanPatch translates a resolved copy plan into an RFC 6902 patch against
// the target snapshot. Standard copies replace the addressed value wholesale,
// add-new-item copies append the whole source element to the target list, and
// subfield updates replace one field per planned op. Ops whose source value
// or target slot is absent are skipped rather than failed; snapshots and the
// rendered control set drift while the user edits, and a partial patch is the
// safe outcome. Placeholder indices on the target side are an error: they
// have no position in a persisted document.
func PlanPatch(plan copyop.Plan, source, target map[string]any) ([]byte, error) {
	ops := make([]patchOp, 0, len(plan.Ops)+1)

	switch plan.Trigger.Behavior {
	case copyop.BehaviorAddNewItem:
		item, ok := Get(source, plan.Trigger.Path)
		if !ok {
			break
		}
		base := plan.Trigger.Parsed.Base
		if _, ok := Get(target, base); !ok {
			break
		}
		pointer, err := Pointer(base)
		if err != nil {
			return nil, err
		}
		ops = append(ops, patchOp{Op: "add", Path: pointer + "/-", Value: item})

	case copyop.BehaviorUpdateExistingSubfield:
		planned := plan.Ops
		if len(planned) == 0 {
			planned = []copyop.Op{{Source: plan.Trigger.Path, Target: plan.Trigger.Path, Behavior: plan.Trigger.Behavior}}
		}
		for _, op := range planned {
			value, ok := Get(source, op.Source)
			if !ok {
				continue
			}
			// Pointer translation runs before the existence check so a
			// placeholder target surfaces as an error instead of being
			// mistaken for a missing slot.
			pointer, err := Pointer(op.Target)
			if err != nil {
				return nil, err
			}
			if _, ok := Get(target, op.Target); !ok {
				continue
			}
			ops = append(ops, patchOp{Op: "replace", Path: pointer, Value: value})
		}

	default:
		value, ok := Get(source, plan.Trigger.Path)
		if !ok {
			break
		}
		if _, ok := Get(target, plan.Trigger.Path); !ok {
			break
		}
		pointer, err := Pointer(plan.Trigger.Path)
		if err != nil {
			return nil, err
		}
		ops = append(ops, patchOp{Op: "replace", Path: pointer, Value: value})
	}

	payload, err := json.Marshal(ops)
	if err != nil {
		return nil, fmt.Errorf("formdata: marshal patch: %w", err)
	}
	return payload, nil
}

// ApplyPatch decodes an RFC 6902 patch and applies it to a JSON document.
func ApplyPatch(doc, patch []byte) ([]byte, error) {
	decoded, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("formdata: decode patch: %w", err)
	}
	out, err := decoded.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("formdata: apply patch: %w", err)
	}
	return out, nil
}
