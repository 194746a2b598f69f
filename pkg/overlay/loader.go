package overlay

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formcompare/pkg/fieldpath"
)

// LoadFS walks the provided filesystem and merges every JSON/YAML overlay
// document it finds. JSON documents apply first, then YAML, each group in
// walk order; within a profile, later documents win per field. When fsys is
// nil or holds no overlay files the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{profiles: make(map[string]Profile)}
	if fsys == nil {
		return store, nil
	}

	var jsonFiles, yamlFiles []string
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			jsonFiles = append(jsonFiles, path)
		case ".yaml", ".yml":
			yamlFiles = append(yamlFiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, path := range append(jsonFiles, yamlFiles...) {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("overlay: read %s: %w", path, err)
		}
		if err := store.apply(data, path); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// Load merges overlay documents supplied directly as bytes, in argument
// order.
func Load(docs ...[]byte) (*Store, error) {
	store := &Store{profiles: make(map[string]Profile)}
	for idx, data := range docs {
		if err := store.apply(data, fmt.Sprintf("doc[%d]", idx)); err != nil {
			return nil, err
		}
	}
	return store, nil
}

type documentFile struct {
	Comparisons map[string]profileFile `json:"comparisons" yaml:"comparisons"`
}

type profileFile struct {
	LeftLabel  string               `json:"leftLabel,omitempty" yaml:"leftLabel,omitempty"`
	RightLabel string               `json:"rightLabel,omitempty" yaml:"rightLabel,omitempty"`
	Legend     string               `json:"legend,omitempty" yaml:"legend,omitempty"`
	Fields     map[string]FieldRule `json:"fields,omitempty" yaml:"fields,omitempty"`
}

func (s *Store) apply(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}
	for name, raw := range doc.Comparisons {
		if err := s.merge(name, raw, source); err != nil {
			return err
		}
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("overlay: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("overlay: parse %s: invalid JSON or YAML", source)
}

func (s *Store) merge(name string, raw profileFile, source string) error {
	id := strings.TrimSpace(name)
	if id == "" {
		return fmt.Errorf("overlay: file %s defines an empty comparison name", source)
	}

	profile, ok := s.profiles[id]
	if !ok {
		profile = Profile{Comparison: id, Fields: make(map[string]FieldRule)}
	}
	profile.Source = source
	if raw.LeftLabel != "" {
		profile.LeftLabel = raw.LeftLabel
	}
	if raw.RightLabel != "" {
		profile.RightLabel = raw.RightLabel
	}
	if raw.Legend != "" {
		profile.Legend = sanitizeMarkup(raw.Legend)
	}

	for key, rule := range raw.Fields {
		normalized := fieldpath.Normalize(strings.TrimSpace(key))
		if normalized == "" {
			return fmt.Errorf("overlay: comparison %q (file %s) field key %q normalizes to an empty path", id, source, key)
		}
		if err := validateCopy(rule.Copy); err != nil {
			return fmt.Errorf("overlay: comparison %q (file %s) field %q: %w", id, source, key, err)
		}
		rule.Badge = sanitizeMarkup(rule.Badge)
		rule.OriginalPath = key
		profile.Fields[normalized] = rule
	}

	s.profiles[id] = profile
	return nil
}

func validateCopy(value string) error {
	switch value {
	case "", CopyAllow, CopyDeny:
		return nil
	default:
		return fmt.Errorf("copy must be %q or %q, got %q", CopyAllow, CopyDeny, value)
	}
}
