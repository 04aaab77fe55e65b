package catalog

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	pkgcatalog "github.com/HerbHall/apidex/pkg/catalog"
)

// All is the filter value that disables the category or auth filter.
const All = "all"

// SortKey selects the field results are ordered by.
type SortKey string

// Supported sort keys.
const (
	SortByName     SortKey = "name"
	SortByCategory SortKey = "category"
)

// ParseSortKey validates a sort key from user input. Empty means SortByName.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "", SortByName:
		return SortByName, nil
	case SortByCategory:
		return SortByCategory, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", pkgcatalog.ErrInvalidSortKey, s, SortByName, SortByCategory)
	}
}

// Query holds the filter and sort state owned by the caller.
type Query struct {
	Search   string  `json:"search"`
	Category string  `json:"category"`
	AuthType string  `json:"authType"`
	Sort     SortKey `json:"sort"`
}

// Normalize fills in the defaults: All for empty filters and SortByName for
// an empty sort key.
func (q Query) Normalize() Query {
	if q.Category == "" {
		q.Category = All
	}
	if q.AuthType == "" {
		q.AuthType = All
	}
	if q.Sort == "" {
		q.Sort = SortByName
	}
	return q
}

// Matches reports whether rec passes every filter in q.
func (q Query) Matches(rec *pkgcatalog.APIRecord) bool {
	return q.matches(rec, strings.ToLower(q.Search))
}

func (q Query) matches(rec *pkgcatalog.APIRecord, needle string) bool {
	return matchesSearch(rec, needle) &&
		matchesExact(rec.Category, q.Category) &&
		matchesExact(rec.AuthType, q.AuthType)
}

func matchesSearch(rec *pkgcatalog.APIRecord, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rec.Name), needle) ||
		strings.Contains(strings.ToLower(rec.Description), needle)
}

func matchesExact(value, filter string) bool {
	return filter == "" || filter == All || value == filter
}

// Filter returns the records matching q, stably sorted by q.Sort using the
// collation rules of locale. The input slice is not modified.
func Filter(records []pkgcatalog.APIRecord, q Query, locale language.Tag) []pkgcatalog.APIRecord {
	q = q.Normalize()
	needle := strings.ToLower(q.Search)

	result := make([]pkgcatalog.APIRecord, 0, len(records))
	for i := range records {
		if q.matches(&records[i], needle) {
			result = append(result, records[i].Clone())
		}
	}

	SortRecords(result, q.Sort, locale)
	return result
}

// SortRecords stably sorts records in place by key. Unknown keys leave the
// order unchanged.
func SortRecords(records []pkgcatalog.APIRecord, key SortKey, locale language.Tag) {
	var field func(*pkgcatalog.APIRecord) string
	switch key {
	case SortByName:
		field = func(r *pkgcatalog.APIRecord) string { return r.Name }
	case SortByCategory:
		field = func(r *pkgcatalog.APIRecord) string { return r.Category }
	default:
		return
	}

	// Collators keep scratch buffers, so each sort gets its own.
	col := collate.New(locale)
	slices.SortStableFunc(records, func(a, b pkgcatalog.APIRecord) int {
		return col.CompareString(field(&a), field(&b))
	})
}
