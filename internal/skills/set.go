// Package skills extracts technical and soft skill keywords from resume and job text.
package skills

import (
	"encoding/json"
	"sort"
)

// Set is a deduplicated collection of lowercase skill strings. Entries are compared
// by exact string, so "ml" and "machine learning" are distinct.
type Set map[string]struct{}

// NewSet creates a Set holding items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts a skill. Empty strings are ignored.
func (s Set) Add(skill string) {
	if skill == "" {
		return
	}
	s[skill] = struct{}{}
}

// Has reports whether skill is present.
func (s Set) Has(skill string) bool {
	_, ok := s[skill]
	return ok
}

// Len returns the number of skills.
func (s Set) Len() int {
	return len(s)
}

// Union returns a new Set with the skills of both sets.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for k := range s {
		out[k] = struct{}{}
	}
	for k := range other {
		out[k] = struct{}{}
	}
	return out
}

// Intersect returns a new Set with the skills present in both sets.
func (s Set) Intersect(other Set) Set {
	out := make(Set)
	for k := range s {
		if other.Has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

// Difference returns a new Set with the skills of s that are absent from other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for k := range s {
		if !other.Has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

// Sorted returns the skills in ascending order. It never returns nil.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted array.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of skills.
func (s *Set) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewSet(items...)
	return nil
}
