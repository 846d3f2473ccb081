package corpus

import (
	"fmt"
	"os"

	"cag/internal/domain"
	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML layout of a corpus file.
type File struct {
	Documents []domain.Document `yaml:"documents"`
}

// LoadFile reads documents from a YAML corpus file, keeping file order.
func LoadFile(path string) ([]domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file %s: %w", path, err)
	}

	for i, doc := range f.Documents {
		if doc.Key == "" {
			return nil, fmt.Errorf("corpus file %s: document %d has an empty key", path, i)
		}
	}
	return f.Documents, nil
}

// SaveFile writes docs as a YAML corpus file.
func SaveFile(path string, docs []domain.Document) error {
	data, err := yaml.Marshal(File{Documents: docs})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
