package fieldpath

import "regexp"

// Kind sorts a path into exactly one addressing category. Classification is
// total: every string, well formed or not, maps to one kind.
type Kind string

const (
	// KindPlain addresses a scalar field or an entire list. Strings without
	// a recognized bracketed index land here.
	KindPlain Kind = "plain"
	// KindFullItem addresses one whole list element; the bracketed index is
	// the final construct in the path.
	KindFullItem Kind = "fullItem"
	// KindSubfield addresses a field nested inside a list element; the
	// bracketed index is followed by more path.
	KindSubfield Kind = "subfield"
)

// An index token is either a persisted list position (digits) or a
// client-side placeholder id ("new_" + digits) for an item that has not been
// saved yet. Any other bracket content is not an index.
var (
	indexPattern    = regexp.MustCompile(`\[(\d+|new_\d+)\]`)
	fullItemPattern = regexp.MustCompile(`\[(\d+|new_\d+)\]$`)
	subfieldPattern = regexp.MustCompile(`\[(\d+|new_\d+)\]\.`)
	basePattern     = regexp.MustCompile(`\[(\d+|new_\d+)\].*$`)
)

// IsFullItem reports whether the path ends at a bracketed index.
func IsFullItem(path string) bool {
	return fullItemPattern.MatchString(path)
}

// IsSubfield reports whether a bracketed index inside the path is followed by
// a dot, addressing a field of the indexed element.
func IsSubfield(path string) bool {
	return subfieldPattern.MatchString(path)
}

// Classify maps a path to its Kind. Full items are tested before subfields;
// the end-of-string anchor keeps the two indexed kinds mutually exclusive.
func Classify(path string) Kind {
	switch {
	case IsFullItem(path):
		return KindFullItem
	case IsSubfield(path):
		return KindSubfield
	default:
		return KindPlain
	}
}
