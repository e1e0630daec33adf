package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/eating-sim/eating-sim/sim"
)

// Competitor pairs a name with its declarative rate function.
type Competitor struct {
	Name string       `yaml:"name"`
	Rate sim.RateSpec `yaml:"rate"`
}

// Scenario is one named competition preset.
type Scenario struct {
	Duration    float64      `yaml:"duration"` // seconds
	Competitors []Competitor `yaml:"competitors"`
}

// ScenarioConfig represents the full scenarios file structure.
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// LoadScenarios parses a scenarios YAML file with strict field checking,
// so a typo in a preset is an error instead of a silent zero value.
func LoadScenarios(path string) (ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, fmt.Errorf("reading scenarios file: %w", err)
	}
	var cfg ScenarioConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return ScenarioConfig{}, fmt.Errorf("parsing scenarios file: %w", err)
	}
	return cfg, nil
}

// BuildCompetitors turns a scenario's declarative table into the callable
// form NewCompetition takes. Duplicate names are rejected because names are
// the tie-break key in the event log.
func BuildCompetitors(scenario Scenario) (map[string]sim.RateFunc, error) {
	competitors := make(map[string]sim.RateFunc, len(scenario.Competitors))
	for _, c := range scenario.Competitors {
		if _, ok := competitors[c.Name]; ok {
			return nil, fmt.Errorf("duplicate competitor name %q", c.Name)
		}
		fn, err := c.Rate.Build()
		if err != nil {
			return nil, fmt.Errorf("competitor %q: %w", c.Name, err)
		}
		competitors[c.Name] = fn
	}
	return competitors, nil
}
