package ingest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"heatpump_check/internal/model"
)

// LoadProfile reads questionnaire answers from a YAML file.
func LoadProfile(path string) (model.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Input{}, fmt.Errorf("reading profile file: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes questionnaire answers from YAML.
func ParseProfile(data []byte) (model.Input, error) {
	var in model.Input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return model.Input{}, fmt.Errorf("parsing profile YAML: %w", err)
	}
	return in, nil
}

// LoadCatalog reads intervention overrides from a YAML file.
func LoadCatalog(path string) ([]model.Intervention, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var catalog struct {
		Interventions []model.Intervention `yaml:"interventions"`
	}
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	return catalog.Interventions, nil
}
