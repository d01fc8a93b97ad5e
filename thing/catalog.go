package thing

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Catalog is the database of every kind known to a world.
type Catalog struct {
	defs  map[string]*Def
	names []string
}

type catalogFile struct {
	Defs []*Def `yaml:"defs"`
}

// NewCatalog creates a catalog holding the given defs.
func NewCatalog(defs ...*Def) (*Catalog, error) {
	c := &Catalog{defs: make(map[string]*Def)}

	for _, d := range defs {
		if err := c.Add(d); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// LoadCatalog reads a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseCatalog(raw)
}

// ParseCatalog parses a YAML catalog document.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	return NewCatalog(f.Defs...)
}

// Add registers a def. Names must be unique.
func (c *Catalog) Add(d *Def) error {
	if d == nil {
		return fmt.Errorf("catalog: nil def")
	}

	d.Name = normalizeName(d.Name)
	if d.Name == "" {
		return fmt.Errorf("catalog: def without name")
	}

	if _, exists := c.defs[d.Name]; exists {
		return fmt.Errorf("catalog: def %q already registered", d.Name)
	}

	if d.Category == "" {
		d.Category = CategoryItem
	}

	if d.Label == "" {
		d.Label = d.Name
	}

	if d.StackLimit <= 0 {
		d.StackLimit = 1
	}

	if d.Rottable != nil && d.Rottable.TicksToRotStart <= 0 {
		return fmt.Errorf("catalog: def %q rots with a non-positive threshold", d.Name)
	}

	c.defs[d.Name] = d
	c.names = append(c.names, d.Name)
	sort.Strings(c.names)

	return nil
}

// Named returns the def with the given name.
func (c *Catalog) Named(name string) (*Def, bool) {
	d, ok := c.defs[normalizeName(name)]
	return d, ok
}

// MustNamed returns the def with the given name and panics if it is unknown.
func (c *Catalog) MustNamed(name string) *Def {
	d, ok := c.Named(name)
	if !ok {
		panic(fmt.Sprintf("def %q not found", name))
	}

	return d
}

// All returns every def, sorted by name.
func (c *Catalog) All() []*Def {
	out := make([]*Def, 0, len(c.names))
	for _, n := range c.names {
		out = append(out, c.defs[n])
	}

	return out
}

// ResourceDefs returns the defs that are counted as colony resources.
func (c *Catalog) ResourceDefs() []*Def {
	out := make([]*Def, 0)
	for _, d := range c.All() {
		if d.CountAsResource {
			out = append(out, d)
		}
	}

	return out
}
