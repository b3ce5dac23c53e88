// Package catalog holds the persona and agent labels offered to clients.
// The labels are suggestions; the pipeline accepts any non-empty value.
package catalog

import (
	_ "embed"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	apperrors "voice-enhancer/internal/app/errors"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	Personas       []string `yaml:"personas"`
	Agents         []string `yaml:"agents"`
	DefaultPersona string   `yaml:"defaultPersona"`
	DefaultAgent   string   `yaml:"defaultAgent"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic("catalog: embedded catalog is invalid: " + err.Error())
	}
	return c
}

// Load reads the catalog at path, or the built-in one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrFileReadFailed.Error())
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInvalidConfig.Error())
	}
	c.Personas = clean(c.Personas)
	c.Agents = clean(c.Agents)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that both lists are non-empty and contain their defaults.
func (c *Catalog) Validate() error {
	if len(c.Personas) == 0 {
		return apperrors.Wrap(apperrors.ErrInvalidConfig, "catalog has no personas")
	}
	if len(c.Agents) == 0 {
		return apperrors.Wrap(apperrors.ErrInvalidConfig, "catalog has no agents")
	}
	if !lo.Contains(c.Personas, c.DefaultPersona) {
		return apperrors.Wrapf(apperrors.ErrInvalidConfig, "default persona %q is not listed", c.DefaultPersona)
	}
	if !lo.Contains(c.Agents, c.DefaultAgent) {
		return apperrors.Wrapf(apperrors.ErrInvalidConfig, "default agent %q is not listed", c.DefaultAgent)
	}
	return nil
}

// clean drops blank entries and duplicates, keeping first occurrences.
func clean(labels []string) []string {
	return lo.Uniq(lo.Compact(labels))
}
