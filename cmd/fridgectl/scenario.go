package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario operations.
const (
	opAdd    = "add"
	opRemove = "remove"
	opForget = "forget"
)

// defaultThreshold applies when neither the flag nor the scenario sets one.
const defaultThreshold = 0.25

// Scenario is a recorded sequence of fridge events.
type Scenario struct {
	Threshold *float64         `yaml:"threshold"`
	Labels    map[int64]string `yaml:"labels"`
	Events    []ScenarioEvent  `yaml:"events"`
}

// ScenarioEvent is one add, remove or forget step.
type ScenarioEvent struct {
	Op         string   `yaml:"op"`
	ItemType   int64    `yaml:"item_type"`
	ItemUUID   string   `yaml:"item_uuid"`
	Name       string   `yaml:"name"`
	FillFactor *float64 `yaml:"fill_factor"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes YAML strictly; unknown keys are errors.
func ParseScenario(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return &sc, nil
		}
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *Scenario) validate() error {
	for i, ev := range s.Events {
		step := i + 1
		switch ev.Op {
		case opAdd:
			if ev.ItemUUID == "" {
				return fmt.Errorf("event %d: add requires item_uuid", step)
			}
			if ev.FillFactor == nil {
				return fmt.Errorf("event %d: add requires fill_factor", step)
			}
		case opRemove:
			if ev.ItemUUID == "" {
				return fmt.Errorf("event %d: remove requires item_uuid", step)
			}
		case opForget:
		default:
			return fmt.Errorf("event %d: unknown op %q (want add, remove or forget)", step, ev.Op)
		}
	}
	return nil
}

// ResolveThreshold picks the flag value when set, then the scenario's, then the default.
func (s *Scenario) ResolveThreshold(flagValue float64, flagSet bool) float64 {
	switch {
	case flagSet:
		return flagValue
	case s.Threshold != nil:
		return *s.Threshold
	default:
		return defaultThreshold
	}
}
