// Package i18n provides the text catalog for user-visible strings.
//
// UI components resolve their labels through [Catalog.Lookup] and stay
// agnostic of the concrete wording. The default catalog is embedded; a
// deployment can override individual keys through config later without the
// components changing.
package i18n

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog maps fixed string keys to display text.
type Catalog struct {
	entries map[string]string
}

// Load parses the embedded default catalog.
func Load() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse builds a catalog from YAML of flat string pairs.
func Parse(data []byte) (*Catalog, error) {
	entries := make(map[string]string)
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing text catalog: %w", err)
	}
	return &Catalog{entries: entries}, nil
}

// Lookup returns the display text for key. An unknown key returns the key
// itself: visibly wrong in the UI, never fatal.
func (c *Catalog) Lookup(key string) string {
	if text, ok := c.entries[key]; ok {
		return text
	}
	return key
}
