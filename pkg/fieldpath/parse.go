package fieldpath

import "strings"

// ParsedPath is a derived view over one path string: the base field path with
// index and remainder stripped, the index when one was recognized, and the
// trailing remainder, which is empty or starts with a dot.
type ParsedPath struct {
	Base      string
	Index     Index
	HasIndex  bool
	Remainder string
	Kind      Kind
}

// BasePath strips the first recognized bracketed index and everything after
// it. Paths without an index come back unchanged, which makes the operation
// idempotent. The base never contains bracket characters for well formed
// input; index information lives only in the index token.
func BasePath(path string) string {
	return basePattern.ReplaceAllString(path, "")
}

// IndexOf extracts the first recognized bracketed index. The second return is
// false when the path carries none.
func IndexOf(path string) (Index, bool) {
	m := indexPattern.FindStringSubmatch(path)
	if m == nil {
		return Index{}, false
	}
	return ParseIndexToken(m[1])
}

// Indexes returns every recognized bracketed index in the path, in order of
// appearance. Paths without one yield nil.
func Indexes(path string) []Index {
	var out []Index
	for _, m := range indexPattern.FindAllStringSubmatch(path, -1) {
		if ix, ok := ParseIndexToken(m[1]); ok {
			out = append(out, ix)
		}
	}
	return out
}

// Parse decomposes a path in one pass. Base, Index and Remainder agree with
// BasePath, IndexOf and RelativePath over the same input, so classification
// and extraction never diverge.
func Parse(path string) ParsedPath {
	parsed := ParsedPath{Base: path, Kind: Classify(path)}
	loc := indexPattern.FindStringSubmatchIndex(path)
	if loc == nil {
		return parsed
	}
	ix, ok := ParseIndexToken(path[loc[2]:loc[3]])
	if !ok {
		return parsed
	}
	parsed.Base = path[:loc[0]]
	parsed.Index = ix
	parsed.HasIndex = true
	parsed.Remainder = path[loc[1]:]
	return parsed
}

// RelativePath returns the portion of fullPath after base plus its bracketed
// index, both anchored at the start. A full-item path yields "". When base
// does not prefix fullPath that way the input comes back unchanged;
// speculative lookups against an unrelated base are a no-op, not an error.
func RelativePath(fullPath, base string) string {
	rest, ok := strings.CutPrefix(fullPath, base+"[")
	if !ok {
		return fullPath
	}
	end := strings.Index(rest, "]")
	if end < 0 {
		return fullPath
	}
	if _, ok := ParseIndexToken(rest[:end]); !ok {
		return fullPath
	}
	return rest[end+1:]
}

// Normalize strips every recognized bracketed index from the path, mapping
// any addressed occurrence of a field back to its schema position. Both
// "reviews[0].rating" and "reviews[new_88].rating" normalize to
// "reviews.rating".
func Normalize(path string) string {
	return indexPattern.ReplaceAllString(path, "")
}
