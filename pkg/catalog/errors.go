package catalog

import "errors"

// Sentinel errors returned by the catalog and the query engine built on it.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRecord  = errors.New("invalid record")
	ErrAmbiguousSlug  = errors.New("ambiguous category slug")
	ErrInvalidSortKey = errors.New("invalid sort key")
)
