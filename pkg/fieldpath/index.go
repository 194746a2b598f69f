package fieldpath

import (
	"strconv"
	"strings"
)

// IndexKind distinguishes persisted list positions from client-side
// placeholder ids.
type IndexKind string

const (
	// IndexNumeric marks an index that is a real list position.
	IndexNumeric IndexKind = "numeric"
	// IndexPlaceholder marks a client-assigned id for an unsaved item.
	IndexPlaceholder IndexKind = "placeholder"
)

// placeholderPrefix is the shape client code gives ids of list items added
// during editing, before they are persisted.
const placeholderPrefix = "new_"

// Index is the tagged value carried between brackets in a path segment.
// Numeric indexes expose Position; placeholders keep their id verbatim,
// "new_" prefix included, so callers cannot mistake one for a list position
// or do arithmetic on it.
type Index struct {
	Kind     IndexKind
	Position int
	ID       string
}

// Numeric builds a persisted positional index.
func Numeric(position int) Index {
	return Index{Kind: IndexNumeric, Position: position}
}

// Placeholder wraps a client-assigned id, kept verbatim.
func Placeholder(id string) Index {
	return Index{Kind: IndexPlaceholder, ID: id}
}

// Token renders the index the way it appears between brackets.
func (ix Index) Token() string {
	if ix.Kind == IndexPlaceholder {
		return ix.ID
	}
	return strconv.Itoa(ix.Position)
}

// ParseIndexToken interprets raw bracket content. It recognizes digits and
// "new_" + digits; anything else reports false.
func ParseIndexToken(token string) (Index, bool) {
	if isDigits(token) {
		n, err := strconv.Atoi(token)
		if err != nil {
			return Index{}, false
		}
		return Numeric(n), true
	}
	if rest, ok := strings.CutPrefix(token, placeholderPrefix); ok && isDigits(rest) {
		return Placeholder(token), true
	}
	return Index{}, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
