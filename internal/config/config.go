package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultSize      = 15
	DefaultMin       = 1
	DefaultMax       = 100
	DefaultShape     = "random"
	DefaultSpeed     = "medium"
)

// Config holds the user-facing run parameters: which algorithm to
// load, how to build the input array, and the initial playback speed.
type Config struct {
	Algorithm string `yaml:"algorithm"`
	Size      int    `yaml:"size"`
	Min       int    `yaml:"min"`
	Max       int    `yaml:"max"`
	Seed      int64  `yaml:"seed"`
	Shape     string `yaml:"shape"`
	Speed     string `yaml:"speed"`
	Values    []int  `yaml:"values,omitempty"` // explicit input, overrides generation
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Size:      DefaultSize,
		Min:       DefaultMin,
		Max:       DefaultMax,
		Shape:     DefaultShape,
		Speed:     DefaultSpeed,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
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
