package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogRawData []byte

// Format identifies the encoding of a catalog source.
type Format string

// Supported catalog encodings.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// catalogFile is the top-level structure of a catalog source.
type catalogFile struct {
	APIs []rawRecord `yaml:"apis" json:"apis"`
}

// rawRecord accepts the legacy "docsUrl" key next to "documentation".
type rawRecord struct {
	APIRecord `yaml:",inline"`
	DocsURL   string `yaml:"docsUrl" json:"docsUrl"`
}

// Rejection describes a source entry that was quarantined during load.
type Rejection struct {
	Index int    `json:"index"`
	ID    string `json:"id,omitempty"`
	Err   error  `json:"-"`
}

func (r Rejection) Error() string {
	return fmt.Sprintf("entry %d (%q): %v", r.Index, r.ID, r.Err)
}

func (r Rejection) Unwrap() error { return r.Err }

type loadOptions struct {
	strict bool
	logger *zap.Logger
}

// LoadOption configures Load and LoadFile.
type LoadOption func(*loadOptions)

// WithStrict makes the first malformed entry fail the whole load instead of
// being quarantined.
func WithStrict(strict bool) LoadOption {
	return func(o *loadOptions) { o.strict = strict }
}

// WithLogger sets the logger used to report quarantined entries.
func WithLogger(logger *zap.Logger) LoadOption {
	return func(o *loadOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newLoadOptions(opts []LoadOption) loadOptions {
	o := loadOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Load decodes a catalog source and validates every entry once. Malformed
// entries and duplicate ids are quarantined unless WithStrict is set.
func Load(data []byte, format Format, opts ...LoadOption) (*Catalog, error) {
	o := newLoadOptions(opts)

	var f catalogFile
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("catalog: parse yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("catalog: parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("catalog: unsupported format %q", format)
	}

	records := make([]APIRecord, len(f.APIs))
	for i := range f.APIs {
		records[i] = f.APIs[i].APIRecord
		if records[i].Documentation == "" {
			records[i].Documentation = f.APIs[i].DocsURL
		}
	}
	return build(records, o)
}

// build validates records in order and keeps the valid ones. Duplicate ids
// after the first occurrence are rejected.
func build(records []APIRecord, o loadOptions) (*Catalog, error) {
	kept := make([]APIRecord, 0, len(records))
	var rejected []Rejection
	seen := make(map[string]int, len(records))

	for i := range records {
		rec := records[i]
		err := validateRecord(rec)
		if err == nil {
			if first, dup := seen[rec.ID]; dup {
				err = fmt.Errorf("%w: duplicate id, first defined at entry %d", ErrInvalidRecord, first)
			}
		}
		if err != nil {
			rej := Rejection{Index: i, ID: rec.ID, Err: err}
			if o.strict {
				return nil, fmt.Errorf("catalog: %w", rej)
			}
			o.logger.Warn("quarantined catalog entry",
				zap.Int("index", i),
				zap.String("id", rec.ID),
				zap.Error(err),
			)
			rejected = append(rejected, rej)
			continue
		}

		seen[rec.ID] = i
		kept = append(kept, rec.Clone())
	}

	return newCatalog(kept, rejected), nil
}

// LoadFile reads a catalog from disk, picking the format from the file
// extension.
func LoadFile(path string, opts ...LoadOption) (*Catalog, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".json":
		format = FormatJSON
	default:
		return nil, fmt.Errorf("catalog: unsupported file extension %q", filepath.Ext(path))
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("catalog: read %q: %w", path, err)
	}
	return Load(data, format, opts...)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog embedded in the binary. It is parsed on first
// use and shared afterwards.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(catalogRawData, FormatYAML, WithStrict(true))
	})
	return defaultCatalog, defaultErr
}

// validateRecord runs the struct tags and turns field errors into one
// readable message.
func validateRecord(rec APIRecord) error {
	err := recordValidator().Struct(rec)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "url":
			msgs = append(msgs, fe.Field()+" must be a valid URL")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(msgs, "; "))
}
