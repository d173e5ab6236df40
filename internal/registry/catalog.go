package registry

import (
	"slices"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/items"
	"github.com/google/uuid"
)

// Catalog is a named, non-owning view over the items one producer
// registered. Removing through a catalog only touches items it still owns.
type Catalog struct {
	ID   uuid.UUID
	Name string

	reg   *Registry
	paths []string
}

// NewCatalog creates an empty catalog bound to r.
func (r *Registry) NewCatalog(name string) *Catalog {
	return &Catalog{
		ID:   uuid.New(),
		Name: name,
		reg:  r,
	}
}

// Add registers item under path, owned by c.
func (c *Catalog) Add(path string, item *items.Item) *items.Item {
	if item == nil {
		return nil
	}
	item.Owner = c.ID
	added := c.reg.Add(path, item)
	if added != nil && !slices.Contains(c.paths, added.Path) {
		c.paths = append(c.paths, added.Path)
	}
	return added
}

// Remove deletes the item at path if c still owns it.
func (c *Catalog) Remove(path string) bool {
	removed := c.reg.RemoveOwned(path, c.ID)
	if removed {
		c.forget(path)
	}
	return removed
}

// RemoveAll deletes every item c still owns.
func (c *Catalog) RemoveAll() int {
	n := c.reg.RemoveAll(c.ID)
	c.paths = nil
	return n
}

// Paths returns the paths c registered, in registration order.
func (c *Catalog) Paths() []string {
	return slices.Clone(c.paths)
}

func (c *Catalog) forget(path string) {
	joined := strings.Join(Split(path), "/")
	c.paths = slices.DeleteFunc(c.paths, func(p string) bool { return p == joined })
}
