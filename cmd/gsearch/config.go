package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds defaults for every subcommand. Flags set on the command line win.
type Config struct {
	Strategy        string `yaml:"strategy"`
	Heuristic       string `yaml:"heuristic"`
	Problem         string `yaml:"problem"`
	Cost            string `yaml:"cost"`
	Layout          string `yaml:"layout"`
	Graph           string `yaml:"graph"`
	LogLevel        string `yaml:"log_level"`
	IncrementalCost bool   `yaml:"incremental_cost"`
	Color           bool   `yaml:"color"`
}

func DefaultConfig() Config {
	return Config{
		Strategy:  "astar",
		Heuristic: "manhattan",
		Problem:   "position",
		Cost:      "unit",
		LogLevel:  "warn",
		Color:     true,
	}
}

var logLevels = map[string]bool{
	"disable": true,
	"fatal":   true,
	"error":   true,
	"warn":    true,
	"info":    true,
	"debug":   true,
}

// LoadConfig overlays the YAML file at path on the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if !logLevels[config.LogLevel] {
		return config, fmt.Errorf("config %s: unknown log_level %q", path, config.LogLevel)
	}
	return config, nil
}
