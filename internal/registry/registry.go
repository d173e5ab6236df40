// Package registry stores command items in a trie of named groups keyed by
// slash-delimited paths.
package registry

import (
	"slices"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/items"
	"github.com/footprint-tools/cmdcon/internal/log"
	"github.com/google/uuid"
)

// Registry owns every item reachable from its root group. It is not safe for
// concurrent use; hosts serialize registration and interpretation.
type Registry struct {
	root   *Group
	logger domain.Logger
}

// New creates an empty registry. logger may be nil.
func New(logger domain.Logger) *Registry {
	return &Registry{
		root:   newGroup("", nil),
		logger: log.Component(logger, "registry"),
	}
}

// Root returns the root group.
func (r *Registry) Root() *Group {
	return r.root
}

// Version returns the root change counter; it moves on any mutation anywhere
// in the registry.
func (r *Registry) Version() uint64 {
	return r.root.version
}

// Split breaks a path into trimmed, non-empty segments.
func Split(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s = strings.TrimSpace(s); s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// Add registers item under path, creating intermediate groups. An item with
// the same name already in the terminal group is evicted first and its
// OnRemove hook runs. Add returns item, or nil if path has no segments.
func (r *Registry) Add(path string, item *items.Item) *items.Item {
	segments := Split(path)
	if len(segments) == 0 || item == nil {
		return nil
	}

	g := r.root
	g.version++
	for _, name := range segments[:len(segments)-1] {
		child, ok := g.children[name]
		if !ok {
			child = newGroup(name, g)
			g.children[name] = child
		}
		g = child
		g.version++
	}

	name := segments[len(segments)-1]
	if i := g.indexOf(name); i >= 0 {
		old := g.items[i]
		g.items = slices.Delete(g.items, i, i+1)
		r.logger.Debug("evict %s", old.Path)
		fireRemove(old)
	}

	item.Name = name
	item.Path = strings.Join(segments, "/")
	g.items = append(g.items, item)

	r.logger.Debug("add %s (%s)", item.Path, item.Kind())
	return item
}

// Remove deletes the item at path regardless of owner.
func (r *Registry) Remove(path string) bool {
	return r.remove(path, uuid.Nil, false)
}

// RemoveOwned deletes the item at path only if it was registered by owner.
func (r *Registry) RemoveOwned(path string, owner uuid.UUID) bool {
	return r.remove(path, owner, true)
}

func (r *Registry) remove(path string, owner uuid.UUID, checkOwner bool) bool {
	segments := Split(path)
	if len(segments) == 0 {
		return false
	}

	g := r.root
	for _, name := range segments[:len(segments)-1] {
		child, ok := g.children[name]
		if !ok {
			return false
		}
		g = child
	}

	i := g.indexOf(segments[len(segments)-1])
	if i < 0 {
		return false
	}
	it := g.items[i]
	if checkOwner && it.Owner != owner {
		return false
	}

	g.items = slices.Delete(g.items, i, i+1)
	r.logger.Debug("remove %s", it.Path)
	fireRemove(it)

	for n := g; n != nil; n = n.parent {
		n.version++
	}
	r.prune(g)
	return true
}

// prune detaches g and each ancestor left with no children and no items.
// The root is never detached.
func (r *Registry) prune(g *Group) {
	for g.parent != nil && g.empty() {
		parent := g.parent
		delete(parent.children, g.name)
		g.parent = nil
		r.logger.Debug("prune %s", g.path)
		g = parent
	}
}

// RemoveAll deletes every item registered by owner and returns the count.
func (r *Registry) RemoveAll(owner uuid.UUID) int {
	var paths []string
	r.root.Walk(func(it *items.Item) {
		if it.Owner == owner {
			paths = append(paths, it.Path)
		}
	})

	removed := 0
	for _, p := range paths {
		if r.RemoveOwned(p, owner) {
			removed++
		}
	}
	return removed
}

// Find returns the item at path, or nil. Segments match exactly.
func (r *Registry) Find(path string) *items.Item {
	segments := Split(path)
	if len(segments) == 0 {
		return nil
	}
	g := r.descend(segments[:len(segments)-1])
	if g == nil {
		return nil
	}
	return g.Item(segments[len(segments)-1])
}

// FindGroup returns the group at path, or nil.
func (r *Registry) FindGroup(path string) *Group {
	segments := Split(path)
	if len(segments) == 0 {
		return nil
	}
	return r.descend(segments)
}

func (r *Registry) descend(segments []string) *Group {
	g := r.root
	for _, name := range segments {
		child, ok := g.children[name]
		if !ok {
			return nil
		}
		g = child
	}
	return g
}

func fireRemove(it *items.Item) {
	if it.OnRemove != nil {
		it.OnRemove()
	}
}
