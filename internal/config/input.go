package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/rpgo/portfolio-simulator/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultChunkSize is the number of simulations processed per batch
const DefaultChunkSize = 100

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates configuration from a YAML file. Fields
// missing from the file keep their DefaultConfiguration values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Parse(data)
}

// DecodeFile reads a YAML file over DefaultConfiguration without validating
// it, for callers that still apply overrides before running.
func (ip *InputParser) DecodeFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Decode(data)
}

// Parse decodes and validates a YAML document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config, err := ip.Decode(data)
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Decode decodes a YAML document over DefaultConfiguration. Unknown fields
// are rejected; values are not validated.
func (ip *InputParser) Decode(data []byte) (*domain.Configuration, error) {
	config := DefaultConfiguration()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return config, nil
}

// ValidateConfiguration validates a configuration and fills engine defaults.
// The first violation is returned as a *ConfigurationError.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return invalid("configuration", nil, "no configuration provided")
	}
	if err := Validate(*config); err != nil {
		return err
	}
	if config.ChunkSize == 0 {
		config.ChunkSize = DefaultChunkSize
	}
	return nil
}

// Validate checks a configuration without modifying it
func Validate(config domain.Configuration) error {
	floats := []struct {
		name  string
		value float64
	}{
		{"initial_investment", config.InitialInvestment},
		{"average_return", config.AverageReturn},
		{"std_dev", config.StdDev},
		{"annual_contribution", config.AnnualContribution},
		{"discount_rate", config.DiscountRate},
	}
	for _, f := range floats {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalid(f.name, f.value, "must be a finite number")
		}
	}

	if config.InitialInvestment < 0 {
		return invalid("initial_investment", config.InitialInvestment, "cannot be negative")
	}
	if config.Years < 1 {
		return invalid("years", config.Years, "must be at least 1")
	}
	if config.Simulations < 1 {
		return invalid("simulations", config.Simulations, "must be at least 1")
	}
	if config.StdDev < 0 {
		return invalid("std_dev", config.StdDev, "cannot be negative")
	}
	if config.AnnualContribution < 0 {
		return invalid("annual_contribution", config.AnnualContribution, "cannot be negative")
	}
	// 1+rate is the discount base; at -1 it divides by zero and below it flips sign.
	if config.DiscountRate <= -1 {
		return invalid("discount_rate", config.DiscountRate, "must be greater than -100%")
	}
	if config.ChunkSize < 0 {
		return invalid("chunk_size", config.ChunkSize, "cannot be negative")
	}
	if config.Workers < 0 {
		return invalid("workers", config.Workers, "cannot be negative")
	}

	return nil
}

// DefaultConfiguration returns the parameters used when nothing else is given
func DefaultConfiguration() *domain.Configuration {
	return &domain.Configuration{
		InitialInvestment:  10000,
		Years:              20,
		Simulations:        1000,
		AverageReturn:      0.08,
		StdDev:             0.15,
		AnnualContribution: 5000,
		DiscountRate:       0.05,
		Seed:               42,
		ChunkSize:          DefaultChunkSize,
	}
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	config := DefaultConfiguration()
	config.InitialInvestment = 250000
	config.Years = 30
	config.Simulations = 5000
	config.AverageReturn = 0.07
	config.StdDev = 0.16
	config.AnnualContribution = 12000
	config.DiscountRate = 0.03
	config.Seed = 20240101
	config.Workers = 4
	return config
}

// WriteConfiguration encodes a configuration as YAML
func WriteConfiguration(w io.Writer, config *domain.Configuration) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(config); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
