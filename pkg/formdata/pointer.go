package formdata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formcompare/pkg/fieldpath"
)

// Pointer converts a numeric field path into its RFC 6901 JSON pointer.
// Placeholder indices identify items that exist only client side and have no
// persisted position, so paths carrying one error.
func Pointer(path string) (string, error) {
	if path == "" {
		return "", errors.New("formdata: path is required")
	}
	for _, ix := range fieldpath.Indexes(path) {
		if ix.Kind == fieldpath.IndexPlaceholder {
			return "", fmt.Errorf("formdata: placeholder index %q has no persisted position", ix.ID)
		}
	}

	var b strings.Builder
	for _, seg := range fieldpath.Split(path) {
		b.WriteByte('/')
		if seg.Kind == fieldpath.SegmentIndex {
			b.WriteString(strconv.Itoa(seg.Position))
			continue
		}
		b.WriteString(escapePointerToken(seg.Name))
	}
	return b.String(), nil
}

func escapePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}
