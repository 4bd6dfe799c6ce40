package catalog

import (
	"fmt"
	"os"

	"edulearn_backend/fixtures"
	"edulearn_backend/models"

	"sigs.k8s.io/yaml"
)

// Fixture is the document shape of a catalog YAML file.
type Fixture struct {
	Courses   []models.Course   `json:"courses"`
	Tutorials []models.Tutorial `json:"tutorials"`
}

// Parse decodes a YAML (or JSON) fixture and builds a Catalog from it.
func Parse(data []byte) (*Catalog, error) {
	var f Fixture
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing catalog fixture: %w", err)
	}
	return New(f.Courses, f.Tutorials)
}

// LoadFile reads and parses the fixture at path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}
	return Parse(data)
}

// LoadEmbedded builds the Catalog shipped with the binary.
func LoadEmbedded() (*Catalog, error) {
	return Parse(fixtures.Catalog)
}
