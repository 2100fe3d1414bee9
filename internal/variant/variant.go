// Package variant describes the build variants an image is produced for and
// which of them a given release line supports.
package variant

import (
	"slices"
	"sort"
)

// Variant is a named build target: an OS base image, optionally with a
// hardware acceleration profile.
type Variant struct {
	// Name identifies the target, e.g. "ubuntu2204".
	Name string `yaml:"name" json:"name"`

	// Parent groups variants that share a CI stage and a base image layer.
	Parent string `yaml:"parent" json:"parent"`
}

// Catalog is the ordered list of known variants.
type Catalog []Variant

// DefaultCatalog returns the stock variant list.
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: "ubuntu2204", Parent: "ubuntu"},
		{Name: "alpine313", Parent: "alpine"},
		{Name: "scratch313", Parent: "scratch"},
		{Name: "vaapi2204", Parent: "vaapi"},
		{Name: "nvidia2204", Parent: "nvidia"},
	}
}

// Names returns the variant names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, v := range c {
		names = append(names, v.Name)
	}

	return names
}

// Parents returns the distinct parent groups, sorted.
func (c Catalog) Parents() []string {
	seen := make(map[string]bool, len(c))
	var parents []string

	for _, v := range c {
		if !seen[v.Parent] {
			seen[v.Parent] = true
			parents = append(parents, v.Parent)
		}
	}

	sort.Strings(parents)

	return parents
}

// Find looks up a variant by name.
func (c Catalog) Find(name string) (Variant, bool) {
	for _, v := range c {
		if v.Name == name {
			return v, true
		}
	}

	return Variant{}, false
}

// Contains reports whether a variant with the given name is in the catalog.
func (c Catalog) Contains(name string) bool {
	_, ok := c.Find(name)

	return ok
}

// IsLayerParent reports whether v supplies the shared base layer for its
// parent group: the lexicographically last name among the siblings in c.
func (c Catalog) IsLayerParent(v Variant) bool {
	var siblings []string

	for _, s := range c {
		if s.Parent == v.Parent {
			siblings = append(siblings, s.Name)
		}
	}

	if len(siblings) == 0 {
		return false
	}

	return slices.Max(siblings) == v.Name
}
