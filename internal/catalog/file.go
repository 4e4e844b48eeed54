package catalog

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mansoorceksport/kinetic/internal/domain"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Exercises []domain.Exercise `yaml:"exercises"`
}

// Load returns the builtin catalog when path is empty, otherwise the
// catalog read from the YAML file at path.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	c, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d exercises from %s", c.Len(), path)
	return c, nil
}

// LoadFile reads a YAML catalog of the form `exercises: [...]`
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	if len(f.Exercises) == 0 {
		return nil, fmt.Errorf("catalog file %s has no exercises", path)
	}
	return New(f.Exercises)
}

// Export writes the catalog as YAML in the format LoadFile reads
func (c *Catalog) Export(w io.Writer) error {
	f := catalogFile{Exercises: make([]domain.Exercise, 0, len(c.exercises))}
	for _, ex := range c.exercises {
		f.Exercises = append(f.Exercises, *ex)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return enc.Close()
}
