// Package catalog holds the static dataset of mood-tagged images.
// Catalogs are read-only after load and may be shared freely.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/cats.yaml
var dataFS embed.FS

const defaultFile = "data/cats.yaml"

// Entry is one image in the catalog. Its identity is its index in
// Catalog.Entries.
type Entry struct {
	AssetPath  string   `yaml:"image" json:"image"`
	AltText    string   `yaml:"alt" json:"alt"`
	IsAnimated bool     `yaml:"animated" json:"animated"`
	MoodTags   []string `yaml:"moods" json:"moods"`
}

// Validate reports the first missing required field.
func (e Entry) Validate() error {
	if e.AssetPath == "" {
		return ErrMissingAsset
	}
	if e.AltText == "" {
		return ErrMissingAlt
	}
	if len(e.MoodTags) == 0 {
		return ErrNoMoods
	}
	for _, tag := range e.MoodTags {
		if tag == "" {
			return ErrEmptyMood
		}
	}
	return nil
}

// HasMood reports whether mood is one of the entry's tags. Matching is
// exact and case-sensitive.
func (e Entry) HasMood(mood string) bool {
	for _, tag := range e.MoodTags {
		if tag == mood {
			return true
		}
	}
	return false
}

// Catalog is a named, ordered set of entries.
type Catalog struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"entries"`
}

// Validate checks every entry and joins the failures, one per bad index.
func (c Catalog) Validate() error {
	var errs []error
	for i, e := range c.Entries {
		if err := e.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("entry %d (%s): %w", i, e.AssetPath, err))
		}
	}
	return errors.Join(errs...)
}

// Parse decodes a YAML catalog and validates it.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

// Load reads and validates the YAML catalog at path.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	if c.Name == "" {
		c.Name = path
	}
	return c, nil
}

var (
	defaultOnce sync.Once
	defaultCat  Catalog
	defaultErr  error
)

// Default returns the embedded cat catalog. It is decoded once per process.
func Default() (Catalog, error) {
	defaultOnce.Do(func() {
		raw, err := dataFS.ReadFile(defaultFile)
		if err != nil {
			defaultErr = fmt.Errorf("read embedded catalog: %w", err)
			return
		}
		defaultCat, defaultErr = Parse(raw)
	})
	return defaultCat, defaultErr
}

// Open loads the catalog at path, or the embedded default when path is empty.
func Open(path string) (Catalog, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}
