package registry

import (
	"maps"
	"slices"

	"github.com/footprint-tools/cmdcon/internal/items"
)

// Group is one segment of the command namespace.
type Group struct {
	name     string
	path     string
	parent   *Group
	children map[string]*Group
	items    []*items.Item
	version  uint64
}

func newGroup(name string, parent *Group) *Group {
	path := name
	if parent != nil && parent.path != "" {
		path = parent.path + "/" + name
	}
	return &Group{
		name:     name,
		path:     path,
		parent:   parent,
		children: make(map[string]*Group),
	}
}

// Name returns the segment name; empty for the root.
func (g *Group) Name() string { return g.name }

// Path returns the full slash-joined path; empty for the root.
func (g *Group) Path() string { return g.path }

// Version is bumped on every structural change at or beneath g.
func (g *Group) Version() uint64 { return g.version }

// Children returns child groups sorted by name.
func (g *Group) Children() []*Group {
	names := slices.Sorted(maps.Keys(g.children))
	out := make([]*Group, len(names))
	for i, n := range names {
		out[i] = g.children[n]
	}
	return out
}

// Child returns the child group with exactly name, or nil.
func (g *Group) Child(name string) *Group {
	return g.children[name]
}

// Items returns the group's items in registration order.
func (g *Group) Items() []*items.Item {
	return slices.Clone(g.items)
}

// Item returns the item with exactly name, or nil.
func (g *Group) Item(name string) *items.Item {
	if i := g.indexOf(name); i >= 0 {
		return g.items[i]
	}
	return nil
}

// Walk calls fn for every item at or beneath g, depth first, children in
// name order after the group's own items.
func (g *Group) Walk(fn func(*items.Item)) {
	for _, it := range g.items {
		fn(it)
	}
	for _, child := range g.Children() {
		child.Walk(fn)
	}
}

func (g *Group) indexOf(name string) int {
	return slices.IndexFunc(g.items, func(it *items.Item) bool {
		return it.Name == name
	})
}

func (g *Group) empty() bool {
	return len(g.children) == 0 && len(g.items) == 0
}
