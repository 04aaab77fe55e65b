// Package catalog provides the query engine over the API directory: search
// and filtering, sorting, grouping by category, category slugs and related
// APIs, plus the HTTP and MCP surfaces that expose it.
package catalog

import (
	"fmt"

	"golang.org/x/text/language"

	pkgcatalog "github.com/HerbHall/apidex/pkg/catalog"
)

// ErrCategoryNotFound is returned when a slug names no category. It wraps
// pkgcatalog.ErrNotFound.
var ErrCategoryNotFound = fmt.Errorf("category %w", pkgcatalog.ErrNotFound)

// Engine binds the pure query functions to one catalog. It holds no view
// state and is safe for concurrent use.
type Engine struct {
	cat          *pkgcatalog.Catalog
	records      []pkgcatalog.APIRecord
	slugs        *SlugRegistry
	locale       language.Tag
	relatedLimit int
	featured     int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocale sets the collation used for sorting.
func WithLocale(tag language.Tag) Option {
	return func(e *Engine) { e.locale = tag }
}

// WithRelatedLimit overrides DefaultRelatedLimit.
func WithRelatedLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.relatedLimit = n
		}
	}
}

// WithFeatured sets how many records Featured returns.
func WithFeatured(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.featured = n
		}
	}
}

// NewEngine creates an engine backed by the given catalog. It fails with
// ErrAmbiguousSlug when two categories share a slug.
func NewEngine(cat *pkgcatalog.Catalog, opts ...Option) (*Engine, error) {
	e := &Engine{
		cat:          cat,
		records:      cat.All(),
		locale:       language.English,
		relatedLimit: DefaultRelatedLimit,
		featured:     6,
	}
	for _, opt := range opts {
		opt(e)
	}

	slugs, err := NewSlugRegistry(e.records)
	if err != nil {
		return nil, err
	}
	e.slugs = slugs
	return e, nil
}

// All returns every record in source order.
func (e *Engine) All() []pkgcatalog.APIRecord {
	return pkgcatalog.CloneRecords(e.records)
}

// Get returns one record by id.
func (e *Engine) Get(id string) (pkgcatalog.APIRecord, error) {
	return e.cat.ByID(id)
}

// Query filters and sorts the catalog.
func (e *Engine) Query(q Query) []pkgcatalog.APIRecord {
	return Filter(e.records, q, e.locale)
}

// Groups partitions the catalog by category.
func (e *Engine) Groups() Groups {
	return GroupByCategory(e.records)
}

// Summaries returns the category overview cards with a three-record preview.
func (e *Engine) Summaries() []CategorySummary {
	return Summaries(e.Groups(), DefaultRelatedLimit)
}

// Related returns the related APIs for the record with the given id.
func (e *Engine) Related(id string) ([]pkgcatalog.APIRecord, error) {
	focal, err := e.cat.ByID(id)
	if err != nil {
		return nil, err
	}
	return Related(e.records, &focal, e.relatedLimit), nil
}

// Detail is a record together with its related APIs.
type Detail struct {
	API     pkgcatalog.APIRecord   `json:"api"`
	Related []pkgcatalog.APIRecord `json:"related"`
}

// Detail returns the record with the given id and its related APIs.
func (e *Engine) Detail(id string) (Detail, error) {
	focal, err := e.cat.ByID(id)
	if err != nil {
		return Detail{}, err
	}
	return Detail{API: focal, Related: Related(e.records, &focal, e.relatedLimit)}, nil
}

// CategoryView is the result of resolving a category slug.
type CategoryView struct {
	Category string                 `json:"category"`
	Slug     string                 `json:"slug"`
	Count    int                    `json:"count"`
	Records  []pkgcatalog.APIRecord `json:"apis"`
}

// ByCategorySlug resolves slug through the registry and returns the
// category's records in source order.
func (e *Engine) ByCategorySlug(slug string) (CategoryView, error) {
	label, ok := e.slugs.Label(slug)
	if !ok {
		return CategoryView{}, fmt.Errorf("%q: %w", slug, ErrCategoryNotFound)
	}
	records := make([]pkgcatalog.APIRecord, 0)
	for i := range e.records {
		if e.records[i].Category == label {
			records = append(records, e.records[i].Clone())
		}
	}
	return CategoryView{Category: label, Slug: slug, Count: len(records), Records: records}, nil
}

// CategoryName returns the label for slug, falling back to DisplayName for
// slugs the catalog does not know.
func (e *Engine) CategoryName(slug string) string {
	if label, ok := e.slugs.Label(slug); ok {
		return label
	}
	return DisplayName(slug)
}

// Slugs returns the category registry.
func (e *Engine) Slugs() *SlugRegistry {
	return e.slugs
}

// Facets returns the available filter values.
func (e *Engine) Facets() Facets {
	return ComputeFacets(e.records)
}

// Featured returns the configured number of leading records.
func (e *Engine) Featured() []pkgcatalog.APIRecord {
	return Featured(e.records, e.featured)
}

// Stats summarizes the catalog.
func (e *Engine) Stats() Stats {
	return ComputeStats(e.records)
}
