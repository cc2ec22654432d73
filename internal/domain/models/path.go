package models

import (
	"fmt"
	"strings"
)

// PathSeparator splits a field path into nested map keys: "address.city"
// names the city key of the address map.
const PathSeparator = "."

// ValidateFieldName checks a single field name as stored in a document.
// Names must be non-empty and contain no path separator, and must not start
// with '$'.
func ValidateFieldName(name string) error {
	if name == "" {
		return fmt.Errorf("field name is empty")
	}
	if strings.Contains(name, PathSeparator) {
		return fmt.Errorf("field name %q contains %q", name, PathSeparator)
	}
	if strings.HasPrefix(name, "$") {
		return fmt.Errorf("field name %q starts with '$'", name)
	}
	return nil
}

// ValidateFieldPath checks a dotted field path. Every segment must be a
// valid field name.
func ValidateFieldPath(path string) error {
	if path == "" {
		return fmt.Errorf("field path is empty")
	}
	for _, seg := range strings.Split(path, PathSeparator) {
		if seg == "" {
			return fmt.Errorf("field path %q has an empty segment", path)
		}
		if err := ValidateFieldName(seg); err != nil {
			return fmt.Errorf("field path %q: %w", path, err)
		}
	}
	return nil
}

// Validate checks every key of f and of the maps nested in its values.
func (f Fields) Validate() error {
	for k, v := range f {
		if err := ValidateFieldName(k); err != nil {
			return err
		}
		if err := v.Validate(); err != nil {
			return fmt.Errorf("field %q: %w", k, err)
		}
	}
	return nil
}

// Validate checks the keys of every map nested in v.
func (v Value) Validate() error {
	switch v.kind {
	case KindMap:
		return v.m.Validate()
	case KindArray:
		for i, e := range v.a {
			if err := e.Validate(); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
	}
	return nil
}

// Lookup returns the value at the dotted path. The second result is false
// when any segment is missing or an intermediate value is not a map.
func (f Fields) Lookup(path string) (Value, bool) {
	segments := strings.Split(path, PathSeparator)
	cur := f
	for _, seg := range segments[:len(segments)-1] {
		next, ok := cur[seg].AsMap()
		if !ok {
			return Value{}, false
		}
		cur = next
	}
	v, ok := cur[segments[len(segments)-1]]
	return v, ok
}

// parentOf walks to the map holding the last segment of path and returns it
// with that segment. With create set, missing intermediate maps are added
// and a non-map intermediate is an error; otherwise an unresolved path
// yields a nil map.
func parentOf(fields Fields, path string, create bool) (Fields, string, error) {
	segments := strings.Split(path, PathSeparator)
	cur := fields
	for i, seg := range segments[:len(segments)-1] {
		v, ok := cur[seg]
		if !ok {
			if !create {
				return nil, "", nil
			}
			next := Fields{}
			cur[seg] = Map(next)
			cur = next
			continue
		}
		next, isMap := v.AsMap()
		if !isMap {
			if !create {
				return nil, "", nil
			}
			return nil, "", fmt.Errorf("cannot create field %q: %q holds %s, not map",
				path, strings.Join(segments[:i+1], PathSeparator), v.Kind())
		}
		cur = next
	}
	return cur, segments[len(segments)-1], nil
}
