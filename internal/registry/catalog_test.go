package registry

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCatalog_AddSetsOwner(t *testing.T) {
	r := New(nil)
	c := r.NewCatalog("demo")
	require.NotEqual(t, uuid.Nil, c.ID)

	it := c.Add("demo/ping", button())
	require.Equal(t, c.ID, it.Owner)
	require.Equal(t, []string{"demo/ping"}, c.Paths())

	c.Add("demo/ping", button())
	require.Equal(t, []string{"demo/ping"}, c.Paths())
}

func TestCatalog_RemoveOnlyOwned(t *testing.T) {
	r := New(nil)
	mine := r.NewCatalog("mine")
	theirs := r.NewCatalog("theirs")

	mine.Add("shared/a", button())
	// Another producer replaces the item at the same path.
	theirs.Add("shared/a", button())

	require.False(t, mine.Remove("shared/a"))
	require.NotNil(t, r.Find("shared/a"))

	require.False(t, r.RemoveOwned("shared/a", mine.ID))
	require.True(t, r.RemoveOwned("shared/a", theirs.ID))
	require.Nil(t, r.Find("shared/a"))
}

func TestCatalog_RemoveAll(t *testing.T) {
	r := New(nil)
	c := r.NewCatalog("bulk")
	other := r.NewCatalog("other")

	c.Add("x/one", button())
	c.Add("x/two", button())
	c.Add("y/deep/three", button())
	other.Add("x/keep", button())
	r.Add("loose", button())

	require.Equal(t, 3, c.RemoveAll())
	require.Empty(t, c.Paths())
	require.Nil(t, r.FindGroup("y"))
	require.NotNil(t, r.Find("x/keep"))
	require.NotNil(t, r.Find("loose"))

	require.Equal(t, 0, c.RemoveAll())
}

func TestCatalog_RemoveForgetsPath(t *testing.T) {
	r := New(nil)
	c := r.NewCatalog("c")
	c.Add("p/q", button())
	c.Add("p/r", button())

	require.True(t, c.Remove(" p / q "))
	require.Equal(t, []string{"p/r"}, c.Paths())
}
