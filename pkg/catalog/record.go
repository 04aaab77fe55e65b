// Package catalog holds the immutable in-memory directory of public API
// descriptors and the loader that builds it from YAML or JSON.
package catalog

import (
	"slices"
	"strings"
)

// APIRecord describes one public API in the directory.
type APIRecord struct {
	ID              string   `json:"id" yaml:"id" validate:"required,printascii,excludesall=/?#"`
	Name            string   `json:"name" yaml:"name" validate:"required"`
	Category        string   `json:"category" yaml:"category" validate:"required"`
	Description     string   `json:"description" yaml:"description" validate:"required"`
	LongDescription string   `json:"longDescription,omitempty" yaml:"longDescription"`
	AuthType        string   `json:"authType" yaml:"authType" validate:"required"`
	Pricing         string   `json:"pricing,omitempty" yaml:"pricing"`
	HTTPS           bool     `json:"https" yaml:"https"`
	CORS            bool     `json:"cors" yaml:"cors"`
	RateLimit       string   `json:"rateLimit,omitempty" yaml:"rateLimit"`
	Documentation   string   `json:"documentation,omitempty" yaml:"documentation" validate:"omitempty,url"`
	BaseURL         string   `json:"baseUrl,omitempty" yaml:"baseUrl" validate:"omitempty,url"`
	Icon            string   `json:"icon,omitempty" yaml:"icon"`
	Features        []string `json:"features,omitempty" yaml:"features"`
	UseCases        []string `json:"useCases,omitempty" yaml:"useCases"`
}

// IsFree reports whether the pricing text mentions "free" in any case.
func (r APIRecord) IsFree() bool {
	return strings.Contains(strings.ToLower(r.Pricing), "free")
}

// Clone returns a copy of r that shares no slices with it.
func (r APIRecord) Clone() APIRecord {
	r.Features = slices.Clone(r.Features)
	r.UseCases = slices.Clone(r.UseCases)
	return r
}

// CloneRecords deep-copies a record slice.
func CloneRecords(records []APIRecord) []APIRecord {
	if records == nil {
		return nil
	}
	out := make([]APIRecord, len(records))
	for i := range records {
		out[i] = records[i].Clone()
	}
	return out
}
