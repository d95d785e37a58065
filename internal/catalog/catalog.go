// Package catalog provides the read-only portfolio of model-specification
// templates, grouped by methodological family in a fixed, human-meaningful
// order. Lookups use exact keys; the UI only ever offers listed keys, so an
// unknown key is a programming error and panics.
package catalog

import "fmt"

// Example is one named model-specification template.
type Example struct {
	Name   string
	Syntax string
}

// Category groups examples by methodological family.
type Category struct {
	Name     string
	Examples []Example
}

// Catalog is an ordered, read-only collection of template categories.
type Catalog struct {
	categories []Category
}

// New builds a catalog from ordered categories.
func New(categories []Category) *Catalog {
	return &Catalog{categories: categories}
}

// Categories returns category names in catalog order.
func (c *Catalog) Categories() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Examples returns example names for a category, in catalog order.
func (c *Catalog) Examples(category string) []string {
	cat := c.mustCategory(category)
	names := make([]string, len(cat.Examples))
	for i, ex := range cat.Examples {
		names[i] = ex.Name
	}
	return names
}

// Syntax returns the specification text for an exact (category, example) key.
func (c *Catalog) Syntax(category, example string) string {
	cat := c.mustCategory(category)
	for _, ex := range cat.Examples {
		if ex.Name == example {
			return ex.Syntax
		}
	}
	panic(fmt.Sprintf("catalog: unknown example %q in category %q", example, category))
}

// Has reports whether the exact (category, example) key exists. Intended for
// inputs that do not originate from the catalog listing itself.
func (c *Catalog) Has(category, example string) bool {
	for _, cat := range c.categories {
		if cat.Name != category {
			continue
		}
		for _, ex := range cat.Examples {
			if ex.Name == example {
				return true
			}
		}
	}
	return false
}

// WithCategory returns a new catalog with the category appended. Used to
// merge user-defined templates under a trailing category.
func (c *Catalog) WithCategory(cat Category) *Catalog {
	merged := make([]Category, 0, len(c.categories)+1)
	merged = append(merged, c.categories...)
	merged = append(merged, cat)
	return &Catalog{categories: merged}
}

func (c *Catalog) mustCategory(name string) *Category {
	for i := range c.categories {
		if c.categories[i].Name == name {
			return &c.categories[i]
		}
	}
	panic(fmt.Sprintf("catalog: unknown category %q", name))
}
