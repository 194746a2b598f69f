package copyop

import "github.com/goliatone/go-formcompare/pkg/fieldpath"

// Behavior names the copy semantics the mutation layer applies for a trigger.
type Behavior string

const (
	// BehaviorStandardCopy overwrites the target value wholesale, scalar or
	// whole list alike.
	BehaviorStandardCopy Behavior = "standardCopy"
	// BehaviorAddNewItem appends the addressed element to the target list.
	// The new element's identity is assigned by the mutation layer, never
	// here.
	BehaviorAddNewItem Behavior = "addNewItem"
	// BehaviorUpdateExistingSubfield overwrites one field inside the
	// matching target list element, leaving sibling fields and other
	// elements untouched.
	BehaviorUpdateExistingSubfield Behavior = "updateExistingSubfield"
)

// Resolve maps a path to its copy behavior. Unrecognized path shapes degrade
// to a standard copy, the least destructive outcome.
func Resolve(path string) Behavior {
	return behaviorFor(fieldpath.Classify(path))
}

func behaviorFor(kind fieldpath.Kind) Behavior {
	switch kind {
	case fieldpath.KindFullItem:
		return BehaviorAddNewItem
	case fieldpath.KindSubfield:
		return BehaviorUpdateExistingSubfield
	default:
		return BehaviorStandardCopy
	}
}

// Decision bundles a trigger path with its parsed view and resolved behavior.
type Decision struct {
	Path     string
	Parsed   fieldpath.ParsedPath
	Behavior Behavior
}

// Decide resolves one copy trigger.
func Decide(path string) Decision {
	parsed := fieldpath.Parse(path)
	return Decision{Path: path, Parsed: parsed, Behavior: behaviorFor(parsed.Kind)}
}
