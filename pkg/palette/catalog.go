// Package palette provides the catalog of named base palettes that theme
// definitions copy from and that override references point into.
//
// Catalog files are JSON objects mapping a palette name to an object of
// role -> value pairs:
//
//	{
//	  "cupcake": {"primary": "#65c3c8", "secondary": "#ef9fbc"},
//	  "sunset":  {"primary": "#FF865B", "accent": "#B387FA"}
//	}
//
// Role order is preserved as written.
package palette

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"themeconf/pkg/domain"
	"themeconf/pkg/serrors"
)

// Source looks up base palettes by name.
type Source interface {
	// Palette returns the named palette, or an error of kind serrors.ErrNotFound.
	Palette(name string) (domain.Palette, error)
	// Names returns the palette names in catalog order.
	Names() []string
}

// Named pairs a palette with its catalog name.
type Named struct {
	Name    string
	Palette domain.Palette
}

// Catalog is an immutable, ordered set of named palettes.
type Catalog struct {
	order    []string
	palettes map[string]domain.Palette
}

// Ensure Catalog implements Source.
var _ Source = (*Catalog)(nil)

// New builds a catalog from palettes in order. A name given twice keeps its
// first position and its last palette.
func New(palettes ...Named) *Catalog {
	c := &Catalog{palettes: make(map[string]domain.Palette, len(palettes))}
	for _, p := range palettes {
		if _, ok := c.palettes[p.Name]; !ok {
			c.order = append(c.order, p.Name)
		}
		c.palettes[p.Name] = p.Palette
	}

	return c
}

// Load reads every *.json file in dir of fsys, in file name order, and
// returns the combined catalog. A palette defined by a later file replaces
// an earlier one with the same name.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("could not list palette files: %w", err)
	}
	sort.Strings(files)

	var all []Named
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("could not read palette file %s: %w", file, err)
		}
		named, err := Decode(data)
		if err != nil {
			return nil, fmt.Errorf("could not decode palette file %s: %w", file, err)
		}
		all = append(all, named...)
	}

	return New(all...), nil
}

// LoadFile reads a single catalog file from the local filesystem.
func LoadFile(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read palette file %s: %w", filename, err)
	}
	named, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("could not decode palette file %s: %w", filename, err)
	}

	return New(named...), nil
}

// Merge returns a catalog holding c's palettes replaced or extended by
// other's. Neither input is modified.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	if other == nil {
		return c
	}
	all := make([]Named, 0, c.Len()+other.Len())
	for _, name := range c.order {
		all = append(all, Named{Name: name, Palette: c.palettes[name]})
	}
	for _, name := range other.order {
		all = append(all, Named{Name: name, Palette: other.palettes[name]})
	}

	return New(all...)
}

// Palette returns the named palette.
func (c *Catalog) Palette(name string) (domain.Palette, error) {
	p, ok := c.palettes[name]
	if !ok {
		return domain.Palette{}, serrors.With(serrors.ErrNotFound, "palette %q not found", name)
	}

	return p, nil
}

// Names returns the palette names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// Len returns the number of palettes in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.order)
}
