package catalog

import (
	pkgcatalog "github.com/HerbHall/apidex/pkg/catalog"
)

// DefaultRelatedLimit is how many related APIs a detail view shows.
const DefaultRelatedLimit = 3

// Related returns up to limit records that share focal's category, skipping
// focal itself, in source order. The first matches win; there is no ranking.
func Related(records []pkgcatalog.APIRecord, focal *pkgcatalog.APIRecord, limit int) []pkgcatalog.APIRecord {
	result := make([]pkgcatalog.APIRecord, 0, max(0, min(limit, len(records))))
	if limit <= 0 {
		return result
	}
	for i := range records {
		if records[i].Category != focal.Category || records[i].ID == focal.ID {
			continue
		}
		result = append(result, records[i].Clone())
		if len(result) == limit {
			break
		}
	}
	return result
}
