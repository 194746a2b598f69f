// Package humanize turns field paths into display labels.
package humanize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-formcompare/pkg/fieldpath"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// Label converts the last segment of a field path into a human friendly
// label. Field names split on underscores, dashes and camelCase boundaries;
// a trailing index renders as a 1-based position, or as "(new)" for unsaved
// placeholder items.
func Label(path string) string {
	segment := path
	if i := strings.LastIndex(path, "."); i >= 0 {
		segment = path[i+1:]
	}

	parsed := fieldpath.Parse(segment)
	if !parsed.HasIndex {
		return humanizeWord(segment)
	}

	base := humanizeWord(parsed.Base)
	if parsed.Index.Kind == fieldpath.IndexNumeric {
		return fmt.Sprintf("%s %d", base, parsed.Index.Position+1)
	}
	return base + " (new)"
}

// humanizeWord splits a raw field name and title-cases each word.
func humanizeWord(name string) string {
	if name == "" {
		return ""
	}

	words := splitWordsPattern.Split(name, -1)
	var segments []string
	for _, word := range words {
		if word == "" {
			continue
		}
		segments = append(segments, titleCase(splitCamel(word)))
	}
	return strings.TrimSpace(strings.Join(segments, " "))
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(input, i, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(input string, index int, r rune) bool {
	prev := rune(input[index-1])
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
