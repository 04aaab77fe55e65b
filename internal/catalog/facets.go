package catalog

import (
	pkgcatalog "github.com/HerbHall/apidex/pkg/catalog"
)

// Facets lists the filter choices discovered in the data, each led by All.
type Facets struct {
	Categories []string `json:"categories"`
	AuthTypes  []string `json:"authTypes"`
}

// ComputeFacets collects distinct categories and auth types in first-seen
// order.
func ComputeFacets(records []pkgcatalog.APIRecord) Facets {
	f := Facets{
		Categories: []string{All},
		AuthTypes:  []string{All},
	}
	seenCat := make(map[string]struct{})
	seenAuth := make(map[string]struct{})
	for i := range records {
		if _, ok := seenCat[records[i].Category]; !ok {
			seenCat[records[i].Category] = struct{}{}
			f.Categories = append(f.Categories, records[i].Category)
		}
		if _, ok := seenAuth[records[i].AuthType]; !ok {
			seenAuth[records[i].AuthType] = struct{}{}
			f.AuthTypes = append(f.AuthTypes, records[i].AuthType)
		}
	}
	return f
}

// CategorySummary is the card shown for one category on the overview page.
type CategorySummary struct {
	Category  string                 `json:"category"`
	Slug      string                 `json:"slug"`
	Count     int                    `json:"count"`
	Preview   []pkgcatalog.APIRecord `json:"preview"`
	Remaining int                    `json:"remaining"`
}

// Summaries turns groups into overview cards with the first previewLimit
// members and a count of the rest.
func Summaries(groups Groups, previewLimit int) []CategorySummary {
	out := make([]CategorySummary, 0, len(groups))
	for i := range groups {
		n := min(max(previewLimit, 0), len(groups[i].Records))
		out = append(out, CategorySummary{
			Category:  groups[i].Category,
			Slug:      groups[i].Slug,
			Count:     len(groups[i].Records),
			Preview:   pkgcatalog.CloneRecords(groups[i].Records[:n]),
			Remaining: len(groups[i].Records) - n,
		})
	}
	return out
}

// Featured returns the first n records in source order.
func Featured(records []pkgcatalog.APIRecord, n int) []pkgcatalog.APIRecord {
	n = min(max(n, 0), len(records))
	return pkgcatalog.CloneRecords(records[:n])
}

// Stats summarizes the catalog for the landing page.
type Stats struct {
	TotalAPIs   int `json:"totalApis"`
	Categories  int `json:"categories"`
	FreeAPIs    int `json:"freeApis"`
	AuthMethods int `json:"authMethods"`
}

// ComputeStats counts records, distinct categories, records whose pricing
// mentions "free" and distinct auth types.
func ComputeStats(records []pkgcatalog.APIRecord) Stats {
	f := ComputeFacets(records)
	s := Stats{
		TotalAPIs:   len(records),
		Categories:  len(f.Categories) - 1,
		AuthMethods: len(f.AuthTypes) - 1,
	}
	for i := range records {
		if records[i].IsFree() {
			s.FreeAPIs++
		}
	}
	return s
}
