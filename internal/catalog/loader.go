package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads an assessment definition from a YAML file and validates it.
func Load(path string) (*Assessment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read assessment file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates an assessment from YAML bytes.
func Parse(data []byte) (*Assessment, error) {
	var a Assessment
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse assessment: %w", err)
	}
	if err := Validate(&a); err != nil {
		return nil, err
	}
	return &a, nil
}
