package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// pathConfig describes one simulated network path's fixed characteristics.
type pathConfig struct {
	Name            string        `yaml:"name"`
	BaseRTT         time.Duration `yaml:"baseRTT"`
	RTTJitter       time.Duration `yaml:"rttJitter"`
	BandwidthMbps   float64       `yaml:"bandwidthMbps"`
	LossProbability float64       `yaml:"lossProbability"`
	FairQueueing    bool          `yaml:"fairQueueing"`
}

// simConfig is the top-level simulation configuration (spec.md §8's
// scenario table, lifted into a runnable harness instead of a document).
type simConfig struct {
	Paths     []pathConfig  `yaml:"paths"`
	Duration  time.Duration `yaml:"duration"`
	TickEvery time.Duration `yaml:"tickEvery"`
	Ratio     float64       `yaml:"ratio"`
	LogLevel  string        `yaml:"logLevel"`
}

func defaultSimConfig() simConfig {
	return simConfig{
		Paths: []pathConfig{
			{Name: "primary", BaseRTT: 30 * time.Millisecond, RTTJitter: 2 * time.Millisecond, BandwidthMbps: 50},
			{Name: "secondary", BaseRTT: 30 * time.Millisecond, RTTJitter: 2 * time.Millisecond, BandwidthMbps: 50},
		},
		Duration:  30 * time.Second,
		TickEvery: 10 * time.Millisecond,
		Ratio:     2.0 / 3.0,
		LogLevel:  "info",
	}
}

func loadSimConfig(path string) (simConfig, error) {
	cfg := defaultSimConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return simConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return simConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if len(cfg.Paths) != 2 {
		return simConfig{}, fmt.Errorf("config must describe exactly 2 paths, got %d", len(cfg.Paths))
	}
	return cfg, nil
}
