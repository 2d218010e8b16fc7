// Package config holds the tunable knobs of a comparison run: grid
// step, numerical tolerances, the shooting bracket, and output
// destinations. Values load from a yaml file and are overridden by CLI
// flags.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStep        = 0.1
	DefaultTol         = 1e-8
	DefaultBracketLo   = -10.0
	DefaultBracketHi   = 10.0
	DefaultBoundaryTol = 1e-4
	DefaultDataDir     = ".bvplab"
)

type Config struct {
	Step        float64  `yaml:"step"`
	Tol         float64  `yaml:"tol"`
	BracketLo   float64  `yaml:"bracket_lo"`
	BracketHi   float64  `yaml:"bracket_hi"`
	BoundaryTol float64  `yaml:"boundary_tol"`
	Methods     []string `yaml:"methods"`
	DataDir     string   `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Step:        DefaultStep,
		Tol:         DefaultTol,
		BracketLo:   DefaultBracketLo,
		BracketHi:   DefaultBracketHi,
		BoundaryTol: DefaultBoundaryTol,
		Methods:     []string{"shooting", "finite-diff", "variational"},
		DataDir:     DefaultDataDir,
	}
}

// LoadInto unmarshals the file over cfg; fields absent from the file
// keep their current values.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
