package dispatchers

import (
	"maps"
	"reflect"
	"slices"
)

// Reserved stored-object names.
const (
	LastResultName = "_"
	ScopeName      = "@"
)

// StoredObjects is the named value table addressable as $name, plus the last
// result and the scope object. It is not safe for concurrent use.
type StoredObjects struct {
	values        map[string]any
	lastResult    any
	scope         any
	previousScope any
}

// NewStoredObjects creates an empty table.
func NewStoredObjects() *StoredObjects {
	return &StoredObjects{values: make(map[string]any)}
}

// Get returns the value stored under name. "_" is the last result and "@" is
// the scope.
func (s *StoredObjects) Get(name string) (any, bool) {
	switch name {
	case LastResultName:
		return s.lastResult, s.lastResult != nil
	case ScopeName:
		return s.scope, s.scope != nil
	}
	v, ok := s.values[name]
	return v, ok
}

// Lookup adapts Get to parser.Lookup.
func (s *StoredObjects) Lookup(name string) (any, bool) {
	return s.Get(name)
}

// Set stores v under name. The reserved names set the last result or scope.
func (s *StoredObjects) Set(name string, v any) {
	switch name {
	case LastResultName:
		s.lastResult = v
	case ScopeName:
		s.SetScope(v)
	default:
		s.values[name] = v
	}
}

// Delete removes name and reports whether it was present.
func (s *StoredObjects) Delete(name string) bool {
	if _, ok := s.values[name]; !ok {
		return false
	}
	delete(s.values, name)
	return true
}

// Clear removes every named value. The last result and scopes are kept.
func (s *StoredObjects) Clear() {
	clear(s.values)
}

// Names returns the stored names, sorted.
func (s *StoredObjects) Names() []string {
	return slices.Sorted(maps.Keys(s.values))
}

func (s *StoredObjects) LastResult() any { return s.lastResult }

func (s *StoredObjects) SetLastResult(v any) { s.lastResult = v }

func (s *StoredObjects) Scope() any { return s.scope }

// SetScope makes v the scope, remembering the old one for Rescope.
func (s *StoredObjects) SetScope(v any) {
	if sameValue(v, s.scope) {
		return
	}
	s.previousScope = s.scope
	s.scope = v
}

// Rescope swaps the scope and the previous scope.
func (s *StoredObjects) Rescope() {
	s.scope, s.previousScope = s.previousScope, s.scope
}

func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || va.Kind() != reflect.Pointer {
		return false
	}
	return va.Pointer() == vb.Pointer()
}
