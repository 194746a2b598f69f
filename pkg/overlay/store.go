package overlay

import (
	"sort"

	"github.com/goliatone/go-formcompare/pkg/fieldpath"
)

// Profile returns the overrides for the named comparison.
func (s *Store) Profile(name string) (Profile, bool) {
	if s == nil {
		return Profile{}, false
	}
	profile, ok := s.profiles[name]
	return profile, ok
}

// Rule resolves the rule governing a control path within the named
// comparison. Lookup walks the exact path, its normalized form, and finally
// the normalized base path, so subfield controls inherit a rule written for
// their list field.
func (s *Store) Rule(name, path string) (FieldRule, bool) {
	profile, ok := s.Profile(name)
	if !ok {
		return FieldRule{}, false
	}
	if rule, ok := profile.Fields[path]; ok {
		return rule, true
	}
	if rule, ok := profile.Fields[fieldpath.Normalize(path)]; ok {
		return rule, true
	}
	if rule, ok := profile.Fields[fieldpath.Normalize(fieldpath.BasePath(path))]; ok {
		return rule, true
	}
	return FieldRule{}, false
}

// Names returns the loaded profile names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any profiles.
func (s *Store) Empty() bool {
	return s == nil || len(s.profiles) == 0
}
