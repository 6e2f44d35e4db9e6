package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrNoScenarios is returned for a configuration without any scenario.
var ErrNoScenarios = errors.New("no scenarios provided")

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a configuration document.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration checks every scenario against the parameter ranges.
// The first violation is returned, wrapped with the scenario's position and name.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return ErrNoScenarios
	}

	seen := make(map[string]int, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		name := strings.TrimSpace(scenario.Name)
		if name == "" {
			return fmt.Errorf("scenario %d: name is required", i+1)
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("scenario %d: name %q already used by scenario %d", i+1, name, prev)
		}
		seen[name] = i + 1

		if err := scenario.Parameters.Validate(); err != nil {
			return fmt.Errorf("scenario %d (%s): %w", i+1, name, err)
		}
	}

	return nil
}

// SaveConfiguration writes config as YAML.
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleConfiguration returns the reference scenario and a variant with a
// higher rent, anchored at the start of the current month.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	highRent := domain.DefaultParameters()
	highRent.MonthlyRent = decimal.NewFromInt(1100)

	now := time.Now().UTC()
	return &domain.Configuration{
		StartDate: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		Scenarios: []domain.Scenario{
			{Name: "Baseline", Parameters: domain.DefaultParameters()},
			{Name: "High Rent", Parameters: highRent},
		},
	}
}
