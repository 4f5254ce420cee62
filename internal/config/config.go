package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type DatasetConfig struct {
	Path                string `toml:"path"`
	RecordLimit         int    `toml:"record_limit"`
	IncludeCreditFields bool   `toml:"include_credit_fields"`
}

type AnalysisConfig struct {
	NeighborThreshold    int     `toml:"neighbor_threshold"`
	CentralityMultiplier float64 `toml:"centrality_multiplier"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type Config struct {
	Dataset  DatasetConfig  `toml:"dataset"`
	Analysis AnalysisConfig `toml:"analysis"`
	Server   ServerConfig   `toml:"server"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Dataset:  DatasetConfig{Path: "BankChurners.csv", RecordLimit: 1000},
		Analysis: AnalysisConfig{NeighborThreshold: 2, CentralityMultiplier: 1.1},
		Server:   ServerConfig{Port: "8080"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}
