package tile

import (
	"errors"
	"fmt"
)

var (
	ErrCatalogMismatch = errors.New("tile: corner and asset lists differ in length")
	ErrEmptyCatalog    = errors.New("tile: catalog has no templates")
	ErrInvalidCorners  = errors.New("tile: invalid corner tags")
)

// Catalog is the ordered, read-only set of templates a generation session uses.
type Catalog struct {
	templates []*Template
}

// LoadCatalog builds a catalog from parallel corner-tag and asset lists.
// An empty asset means the template has no mesh.
func LoadCatalog(tags []string, assets []string) (*Catalog, error) {
	if len(tags) != len(assets) {
		return nil, fmt.Errorf("%w: %d corner strings, %d assets", ErrCatalogMismatch, len(tags), len(assets))
	}
	if len(tags) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{templates: make([]*Template, 0, len(tags))}
	for i, tag := range tags {
		corners, err := ParseCorners(tag)
		if err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		c.templates = append(c.templates, &Template{
			Corners: corners,
			Asset:   assets[i],
			Index:   i,
		})
	}
	return c, nil
}

// Len returns the number of templates
func (c *Catalog) Len() int {
	return len(c.templates)
}

// At returns the template at index i
func (c *Catalog) At(i int) *Template {
	return c.templates[i]
}

// Templates returns a copy of the template list in catalog order.
func (c *Catalog) Templates() []*Template {
	out := make([]*Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Filter returns the templates matching pred, in catalog order.
func (c *Catalog) Filter(pred func(*Template) bool) []*Template {
	var out []*Template
	for _, t := range c.templates {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// Find returns the first template with the given corners, or nil.
func (c *Catalog) Find(corners Corners) *Template {
	for _, t := range c.templates {
		if t.Corners == corners {
			return t
		}
	}
	return nil
}
