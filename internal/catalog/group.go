package catalog

import (
	pkgcatalog "github.com/HerbHall/apidex/pkg/catalog"
)

// Group is one category bucket.
type Group struct {
	Category string                 `json:"category"`
	Slug     string                 `json:"slug"`
	Records  []pkgcatalog.APIRecord `json:"apis"`
}

// Groups is an ordered partition of records by category.
type Groups []Group

// GroupByCategory partitions records by exact category label. Groups appear
// in the order their first member appears; members keep source order.
func GroupByCategory(records []pkgcatalog.APIRecord) Groups {
	var groups Groups
	index := make(map[string]int)
	for i := range records {
		label := records[i].Category
		gi, ok := index[label]
		if !ok {
			gi = len(groups)
			index[label] = gi
			groups = append(groups, Group{Category: label, Slug: Slug(label)})
		}
		groups[gi].Records = append(groups[gi].Records, records[i].Clone())
	}
	return groups
}

// Get returns the group for an exact category label.
func (g Groups) Get(label string) (Group, bool) {
	for i := range g {
		if g[i].Category == label {
			return g[i], true
		}
	}
	return Group{}, false
}

// Map returns the groups keyed by label. Ordering is lost; range over g
// itself when order matters.
func (g Groups) Map() map[string][]pkgcatalog.APIRecord {
	m := make(map[string][]pkgcatalog.APIRecord, len(g))
	for i := range g {
		m[g[i].Category] = g[i].Records
	}
	return m
}

// Categories returns the labels in group order.
func (g Groups) Categories() []string {
	out := make([]string, len(g))
	for i := range g {
		out[i] = g[i].Category
	}
	return out
}
