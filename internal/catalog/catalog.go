// file: internal/catalog/catalog.go
// version: 1.0.0
// guid: 9b2c4d6e-8f01-4a23-b5c7-d9e1f3a5b7c9

// Package catalog loads, validates, and serves the clothing inventory.
// A catalog is built once per process and read-only afterwards.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/thriftpick/thriftpick/internal/models"
)

// ErrMalformed reports a catalog file that could not be parsed or that
// contains an invalid record. A load that fails this way falls back to
// the built-in inventory rather than serving a half-broken catalog.
var ErrMalformed = errors.New("malformed catalog")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Catalog is the read-only set of items for a session.
type Catalog struct {
	items  []models.Item
	source string
}

// New builds a catalog from items. source describes where the items
// came from (a file path or "default inventory") for logs and stats.
func New(items []models.Item, source string) *Catalog {
	return &Catalog{items: items, source: source}
}

// Items returns the catalog's items in load order.
func (c *Catalog) Items() []models.Item {
	return c.items
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Source describes where the catalog came from.
func (c *Catalog) Source() string {
	return c.source
}

// Random returns a uniformly chosen item. ok is false when the catalog
// is empty.
func (c *Catalog) Random() (models.Item, bool) {
	if len(c.items) == 0 {
		return models.Item{}, false
	}
	return c.items[rand.IntN(len(c.items))], true
}

// DistinctValues returns the sorted unique values the catalog holds for
// attr. List attributes contribute every element. The price range has
// no enumerable values and yields nil.
func (c *Catalog) DistinctValues(attr models.Attribute) []string {
	if attr.IsRange() {
		return nil
	}
	seen := make(map[string]struct{})
	for _, item := range c.items {
		if attr.IsList() {
			for _, v := range item.ListValue(attr) {
				if v != "" {
					seen[v] = struct{}{}
				}
			}
			continue
		}
		if v := item.ScalarValue(attr); v != "" {
			seen[v] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// ValidateItem checks a single record against the item invariants.
func ValidateItem(item models.Item) error {
	err := validate.Struct(item)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		problems := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			problems = append(problems, fmt.Sprintf("field %q violates %q", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("invalid item: %s", strings.Join(problems, "; "))
	}
	return fmt.Errorf("invalid item: %w", err)
}

// ReadFile decodes the item records in path without validating them.
// The format is chosen by extension: .yaml and .yml decode as YAML,
// everything else as JSON.
func ReadFile(path string) ([]models.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []models.Item
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
		}
	default:
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
		}
	}
	return items, nil
}

// Load reads and validates the catalog at path. Any malformed record
// fails the whole load so a partially broken inventory never reaches
// the recommendation engine.
func Load(path string) (*Catalog, error) {
	items, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	for i, item := range items {
		if err := ValidateItem(item); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformed, i+1, err)
		}
	}
	log.Debug().Int("items", len(items)).Str("path", path).Msg("catalog loaded")
	return New(items, path), nil
}

// LoadOrDefault returns the catalog at path, or the built-in inventory
// when the file is missing or malformed. The catalog is always usable;
// a non-nil error only explains why the default was chosen.
func LoadOrDefault(path string) (*Catalog, error) {
	cat, err := Load(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("falling back to default inventory")
		return Default(), err
	}
	return cat, nil
}
