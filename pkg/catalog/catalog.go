package catalog

import "fmt"

// Catalog is the read-only record store. It is safe for concurrent use
// because nothing mutates it after construction.
type Catalog struct {
	records     []APIRecord
	byID        map[string]int
	quarantined []Rejection
}

func newCatalog(records []APIRecord, quarantined []Rejection) *Catalog {
	byID := make(map[string]int, len(records))
	for i := range records {
		byID[records[i].ID] = i
	}
	return &Catalog{records: records, byID: byID, quarantined: quarantined}
}

// New builds a catalog from already-decoded records, validating them the
// same way Load does. The records are copied.
func New(records []APIRecord, opts ...LoadOption) (*Catalog, error) {
	return build(records, newLoadOptions(opts))
}

// All returns a copy of every record in load order.
func (c *Catalog) All() []APIRecord {
	return CloneRecords(c.records)
}

// ByID returns the record with the given id. Unknown ids yield an error
// wrapping ErrNotFound.
func (c *Catalog) ByID(id string) (APIRecord, error) {
	i, ok := c.byID[id]
	if !ok {
		return APIRecord{}, fmt.Errorf("api %q: %w", id, ErrNotFound)
	}
	return c.records[i].Clone(), nil
}

// Len returns the number of loaded records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Quarantined returns the entries rejected during load.
func (c *Catalog) Quarantined() []Rejection {
	out := make([]Rejection, len(c.quarantined))
	copy(out, c.quarantined)
	return out
}
