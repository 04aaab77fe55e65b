package catalog

import (
	"fmt"

	pkgcatalog "github.com/HerbHall/apidex/pkg/catalog"
)

// SlugEntry pairs a category label with its slug.
type SlugEntry struct {
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

// SlugRegistry is the category/slug table for one catalog. Building it fails
// when two distinct labels derive the same slug, so every slug it knows maps
// back to exactly one label.
type SlugRegistry struct {
	entries []SlugEntry
	bySlug  map[string]int
	byLabel map[string]int
}

// NewSlugRegistry indexes the categories of records in first-seen order.
func NewSlugRegistry(records []pkgcatalog.APIRecord) (*SlugRegistry, error) {
	reg := &SlugRegistry{
		bySlug:  make(map[string]int),
		byLabel: make(map[string]int),
	}
	for i := range records {
		label := records[i].Category
		if _, ok := reg.byLabel[label]; ok {
			continue
		}
		slug := Slug(label)
		if j, clash := reg.bySlug[slug]; clash {
			return nil, fmt.Errorf("%w: %q and %q both map to %q",
				pkgcatalog.ErrAmbiguousSlug, reg.entries[j].Label, label, slug)
		}
		reg.bySlug[slug] = len(reg.entries)
		reg.byLabel[label] = len(reg.entries)
		reg.entries = append(reg.entries, SlugEntry{Label: label, Slug: slug})
	}
	return reg, nil
}

// Label returns the category label registered for slug.
func (r *SlugRegistry) Label(slug string) (string, bool) {
	i, ok := r.bySlug[slug]
	if !ok {
		return "", false
	}
	return r.entries[i].Label, true
}

// Slug returns the registered slug for label.
func (r *SlugRegistry) Slug(label string) (string, bool) {
	i, ok := r.byLabel[label]
	if !ok {
		return "", false
	}
	return r.entries[i].Slug, true
}

// Entries returns every label/slug pair in first-seen order.
func (r *SlugRegistry) Entries() []SlugEntry {
	out := make([]SlugEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of distinct categories.
func (r *SlugRegistry) Len() int {
	return len(r.entries)
}
