package formdata

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formcompare/pkg/fieldpath"
)

// Get resolves a path against a decoded snapshot, descending through maps by
// field name and through slices by numeric index. The returned value is a
// deep clone, so callers can never mutate the snapshot through it. The bool
// reports whether the full path existed.
func Get(data map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	var cur any = data
	for _, seg := range fieldpath.Split(path) {
		switch seg.Kind {
		case fieldpath.SegmentIndex:
			list, ok := cur.([]any)
			if !ok || seg.Position >= len(list) {
				return nil, false
			}
			cur = list[seg.Position]
		default:
			obj, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			value, ok := obj[seg.Name]
			if !ok {
				return nil, false
			}
			cur = value
		}
	}
	return Clone(cur), true
}

// Set writes a deep clone of value at path, creating intermediate containers
// along the way: missing map keys become maps or slices depending on the next
// segment, and slices are padded with nils up to a written index. Writing
// through a parent of the wrong shape is an error; the snapshot keeps its
// structure rather than silently replacing populated containers.
func Set(data map[string]any, path string, value any) error {
	if data == nil {
		return errors.New("formdata: data is required")
	}
	segments := fieldpath.Split(path)
	if len(segments) == 0 {
		return errors.New("formdata: path is required")
	}
	_, err := setSegments(data, segments, value)
	return err
}

func setSegments(cur any, segments []fieldpath.Segment, value any) (any, error) {
	seg := segments[0]
	last := len(segments) == 1

	switch seg.Kind {
	case fieldpath.SegmentIndex:
		list, ok := cur.([]any)
		if !ok {
			return nil, fmt.Errorf("formdata: cannot set index %d on non-list parent", seg.Position)
		}
		if last {
			for len(list) <= seg.Position {
				list = append(list, nil)
			}
			list[seg.Position] = Clone(value)
			return list, nil
		}
		for len(list) <= seg.Position {
			list = append(list, emptyContainer(segments[1]))
		}
		if !isContainer(list[seg.Position]) {
			list[seg.Position] = emptyContainer(segments[1])
		}
		child, err := setSegments(list[seg.Position], segments[1:], value)
		if err != nil {
			return nil, err
		}
		list[seg.Position] = child
		return list, nil

	default:
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("formdata: cannot set field %q on non-object parent", seg.Name)
		}
		if last {
			obj[seg.Name] = Clone(value)
			return obj, nil
		}
		if existing, ok := obj[seg.Name]; !ok || !isContainer(existing) {
			obj[seg.Name] = emptyContainer(segments[1])
		}
		child, err := setSegments(obj[seg.Name], segments[1:], value)
		if err != nil {
			return nil, err
		}
		obj[seg.Name] = child
		return obj, nil
	}
}

// Clone deep-copies a decoded JSON value. Maps and slices are rebuilt;
// scalars are returned as is.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Clone(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Clone(val)
		}
		return out
	default:
		return v
	}
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

func emptyContainer(next fieldpath.Segment) any {
	if next.Kind == fieldpath.SegmentIndex {
		return []any{}
	}
	return map[string]any{}
}
