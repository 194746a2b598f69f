package fieldpath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Join concatenates two path fragments with a dot, tolerating empty parts so
// callers can fold over optional prefixes.
func Join(parent, child string) string {
	switch {
	case parent == "":
		return child
	case child == "":
		return parent
	default:
		return parent + "." + child
	}
}

// Indexed appends a bracketed index to a base path.
func Indexed(base string, ix Index) string {
	return fmt.Sprintf("%s[%s]", base, ix.Token())
}

// SegmentKind says whether a traversal segment names a field or indexes a
// list.
type SegmentKind string

const (
	// SegmentField steps into a map by key.
	SegmentField SegmentKind = "field"
	// SegmentIndex steps into a list by position.
	SegmentIndex SegmentKind = "index"
)

// Segment is one step of a data traversal.
type Segment struct {
	Kind     SegmentKind
	Name     string
	Position int
}

var segmentPattern = regexp.MustCompile(`^(.+?)\[(\d+)\]$`)

// Split decomposes a dotted path into traversal segments. A numeric index
// becomes its own segment after the field it subscripts. Placeholder ids are
// not data positions, so segments carrying them stay plain field text, as
// does anything else the segment pattern does not recognize.
func Split(path string) []Segment {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, ".")
	out := make([]Segment, 0, len(parts))
	for _, part := range parts {
		if m := segmentPattern.FindStringSubmatch(part); m != nil {
			if pos, err := strconv.Atoi(m[2]); err == nil {
				out = append(out,
					Segment{Kind: SegmentField, Name: m[1]},
					Segment{Kind: SegmentIndex, Position: pos},
				)
				continue
			}
		}
		out = append(out, Segment{Kind: SegmentField, Name: part})
	}
	return out
}
