package fieldpath

import "strings"

// Remap substitutes the first occurrence of the literal bracketed source
// index with the target index. Paths that do not carry the source index come
// back unchanged; nothing to remap is not an error. Remapping is how queued
// subfield writes follow an item whose identity changed, for example when a
// copied element receives a fresh placeholder id in the target pane.
func Remap(path, sourceIndex, targetIndex string) string {
	return strings.Replace(path, "["+sourceIndex+"]", "["+targetIndex+"]", 1)
}

// MatchesPrefix reports whether path addresses prefix itself or anything
// nested under it. The continuation must be a dot or a bracket so that
// sibling fields sharing leading characters, like "ship" and
// "shipping_address", never match each other.
func MatchesPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+".") || strings.HasPrefix(path, prefix+"[")
}

// Rebase rewrites path from one prefix onto another using the same matching
// rule as MatchesPrefix. Unrelated paths come back unchanged.
func Rebase(path, fromPrefix, toPrefix string) string {
	if path == fromPrefix {
		return toPrefix
	}
	if strings.HasPrefix(path, fromPrefix+".") || strings.HasPrefix(path, fromPrefix+"[") {
		return toPrefix + path[len(fromPrefix):]
	}
	return path
}
