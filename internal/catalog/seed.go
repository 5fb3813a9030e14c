// file: internal/catalog/seed.go
// version: 1.0.0
// guid: 3e17bddd-805b-418b-a61e-157af17fc24b

package catalog

import (
	"fmt"
	"os"

	"github.com/jdfalk/library-catalog/internal/models"
	"gopkg.in/yaml.v3"
)

// SeedEntry is one item in a seed file
type SeedEntry struct {
	Kind   string `yaml:"kind"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Year   int    `yaml:"year"`
	Pages  int    `yaml:"pages,omitempty"`
	Format string `yaml:"format,omitempty"`
}

type seedFile struct {
	Items []SeedEntry `yaml:"items"`
}

// Build validates the entry and creates the matching item
func (e SeedEntry) Build(maxYear int) (models.Item, error) {
	kind, err := models.ParseKind(e.Kind)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateYear(e.Year, maxYear); err != nil {
		return nil, err
	}
	if kind == models.KindDigital {
		return models.NewDigitalBook(e.Title, e.Author, e.Year, e.Format), nil
	}
	return models.NewPhysicalBook(e.Title, e.Author, e.Year, e.Pages)
}

// ParseSeed decodes a YAML seed document
func ParseSeed(data []byte) ([]SeedEntry, error) {
	var doc seedFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return doc.Items, nil
}

// LoadSeed reads a seed file and builds its items. The first invalid entry
// aborts the load.
func LoadSeed(path string, maxYear int) ([]models.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	entries, err := ParseSeed(data)
	if err != nil {
		return nil, err
	}

	items := make([]models.Item, 0, len(entries))
	for i, entry := range entries {
		item, err := entry.Build(maxYear)
		if err != nil {
			return nil, fmt.Errorf("seed entry %d ('%s'): %w", i+1, entry.Title, err)
		}
		items = append(items, item)
	}
	return items, nil
}
