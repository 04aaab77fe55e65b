package testutil

import (
	"strings"
	"testing"

	pkgcatalog "github.com/HerbHall/apidex/pkg/catalog"
)

// NewRecord returns an APIRecord with sensible defaults, suitable for test
// fixtures. The id defaults to the lower-cased name with spaces replaced by
// hyphens.
func NewRecord(name string, opts ...func(*pkgcatalog.APIRecord)) pkgcatalog.APIRecord {
	r := pkgcatalog.APIRecord{
		ID:            strings.ReplaceAll(strings.ToLower(name), " ", "-"),
		Name:          name,
		Category:      "Development",
		Description:   name + " test API",
		AuthType:      "API Key",
		Pricing:       "Free",
		HTTPS:         true,
		Documentation: "https://example.com/docs",
		BaseURL:       "https://api.example.com",
		Features:      []string{"Feature A", "Feature B"},
		UseCases:      []string{"Testing"},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WithID sets the record id.
func WithID(id string) func(*pkgcatalog.APIRecord) {
	return func(r *pkgcatalog.APIRecord) { r.ID = id }
}

// WithCategory sets the category label.
func WithCategory(category string) func(*pkgcatalog.APIRecord) {
	return func(r *pkgcatalog.APIRecord) { r.Category = category }
}

// WithDescription sets the short description.
func WithDescription(desc string) func(*pkgcatalog.APIRecord) {
	return func(r *pkgcatalog.APIRecord) { r.Description = desc }
}

// WithAuthType sets the auth type label.
func WithAuthType(auth string) func(*pkgcatalog.APIRecord) {
	return func(r *pkgcatalog.APIRecord) { r.AuthType = auth }
}

// WithPricing sets the pricing text.
func WithPricing(pricing string) func(*pkgcatalog.APIRecord) {
	return func(r *pkgcatalog.APIRecord) { r.Pricing = pricing }
}

// NewCatalog builds a catalog from records and fails the test if any record
// is rejected.
func NewCatalog(t testing.TB, records ...pkgcatalog.APIRecord) *pkgcatalog.Catalog {
	t.Helper()
	cat, err := pkgcatalog.New(records, pkgcatalog.WithStrict(true))
	if err != nil {
		t.Fatalf("testutil.NewCatalog: %v", err)
	}
	return cat
}
