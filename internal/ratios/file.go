package ratios

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type ratioFile struct {
	Categories []Category `yaml:"categories"`
}

// FileProvider serves ratios loaded from a YAML file.
type FileProvider struct {
	path       string
	categories []Category
}

// LoadFile reads and validates a ratio file. Categories keep file order.
func LoadFile(path string) (*FileProvider, error) {
	filename := strings.TrimSpace(path)
	if filename == "" {
		return nil, fmt.Errorf("ratios path is empty")
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read ratios file %q: %w", filename, err)
	}
	return Parse(filename, data)
}

// Parse decodes ratio YAML; name is only used in error messages.
func Parse(name string, data []byte) (*FileProvider, error) {
	var rf ratioFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse ratios file %q: %w", name, err)
	}
	if len(rf.Categories) == 0 {
		return nil, fmt.Errorf("ratios file %q defines no categories", name)
	}
	Classify(rf.Categories)
	if err := Validate(rf.Categories); err != nil {
		return nil, fmt.Errorf("ratios file %q: %w", name, err)
	}
	return &FileProvider{path: name, categories: rf.Categories}, nil
}

func (p *FileProvider) Path() string { return p.path }

func (p *FileProvider) Ratios() []Category {
	return clone(p.categories)
}

// Marshal encodes categories in the ratio file format read by Parse.
func Marshal(categories []Category) ([]byte, error) {
	data, err := yaml.Marshal(ratioFile{Categories: categories})
	if err != nil {
		return nil, fmt.Errorf("failed to encode ratios: %w", err)
	}
	return data, nil
}
