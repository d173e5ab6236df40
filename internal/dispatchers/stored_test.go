package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoredObjects(t *testing.T) {
	s := NewStoredObjects()

	_, ok := s.Get("x")
	require.False(t, ok)

	s.Set("x", 42)
	s.Set("a", "text")
	v, ok := s.Get("x")
	require.True(t, ok)
	require.Equal(t, 42, v)
	require.Equal(t, []string{"a", "x"}, s.Names())

	require.True(t, s.Delete("a"))
	require.False(t, s.Delete("a"))
	require.Equal(t, []string{"x"}, s.Names())
}

func TestStoredObjects_ReservedNames(t *testing.T) {
	s := NewStoredObjects()

	_, ok := s.Get(LastResultName)
	require.False(t, ok)

	s.Set(LastResultName, 7)
	v, ok := s.Get(LastResultName)
	require.True(t, ok)
	require.Equal(t, 7, v)

	p := &player{Name: "bob"}
	s.Set(ScopeName, p)
	v, ok = s.Get(ScopeName)
	require.True(t, ok)
	require.Same(t, p, v)

	// Reserved names never land in the named table.
	require.Empty(t, s.Names())

	s.Set("x", 1)
	s.Clear()
	require.Empty(t, s.Names())
	require.Equal(t, 7, s.LastResult())
	require.Same(t, p, s.Scope())
}

func TestStoredObjects_Rescope(t *testing.T) {
	s := NewStoredObjects()
	a := &player{Name: "a"}
	b := &player{Name: "b"}

	s.SetScope(a)
	s.SetScope(b)
	require.Same(t, b, s.Scope())

	s.Rescope()
	require.Same(t, a, s.Scope())
	s.Rescope()
	require.Same(t, b, s.Scope())

	// Setting the same object again keeps the previous scope intact.
	s.SetScope(b)
	s.Rescope()
	require.Same(t, a, s.Scope())

	// Non-comparable values must not panic.
	s.SetScope([]int{1})
	s.SetScope(map[string]int{"a": 1})
	s.Rescope()
	require.Equal(t, []int{1}, s.Scope())
}
