package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMinTemp            = 0.0
	DefaultMaxTemp            = 2000.0
	DefaultSamples            = 200
	DefaultHeatCapacityOffset = 1.0
	DefaultOverflowColor      = "yellow"
	DefaultPlotWidth          = 80
	DefaultPlotHeight         = 15
)

// DefaultPalette lists dataset colors, most preferred first.
var DefaultPalette = []string{"blue", "green", "red", "magenta", "black", "cyan", "brown", "orange", "grey"}

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Sweep         SweepConfig `yaml:"sweep"`
	Palette       []string    `yaml:"palette"`
	OverflowColor string      `yaml:"overflow_color"`
	Plot          PlotConfig  `yaml:"plot"`
}

// SweepConfig is the temperature grid the quantities are sampled on.
type SweepConfig struct {
	MinTemp float64 `yaml:"min_temp"`
	MaxTemp float64 `yaml:"max_temp"`
	Samples int     `yaml:"samples"`
	// HeatCapacityOffset shifts the first heat capacity sample away from
	// min_temp, since C_V divides by T.
	HeatCapacityOffset float64 `yaml:"heat_capacity_offset"`
}

type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Sweep: SweepConfig{
			MinTemp:            DefaultMinTemp,
			MaxTemp:            DefaultMaxTemp,
			Samples:            DefaultSamples,
			HeatCapacityOffset: DefaultHeatCapacityOffset,
		},
		Palette:       append([]string(nil), DefaultPalette...),
		OverflowColor: DefaultOverflowColor,
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
		},
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
	if err := cfg.Validate(); err != nil {
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

func (c *Config) Validate() error {
	s := c.Sweep
	if s.MinTemp < 0 {
		return fmt.Errorf("%w: min_temp %g is negative", ErrInvalidConfig, s.MinTemp)
	}
	if s.MaxTemp <= s.MinTemp {
		return fmt.Errorf("%w: max_temp %g must exceed min_temp %g", ErrInvalidConfig, s.MaxTemp, s.MinTemp)
	}
	if s.Samples < 2 {
		return fmt.Errorf("%w: samples %d, need at least 2", ErrInvalidConfig, s.Samples)
	}
	if s.HeatCapacityOffset < 0 {
		return fmt.Errorf("%w: heat_capacity_offset %g is negative", ErrInvalidConfig, s.HeatCapacityOffset)
	}
	if s.MaxTemp <= s.MinTemp+s.HeatCapacityOffset {
		return fmt.Errorf("%w: max_temp %g must exceed min_temp + heat_capacity_offset (%g)",
			ErrInvalidConfig, s.MaxTemp, s.MinTemp+s.HeatCapacityOffset)
	}
	if c.OverflowColor == "" {
		return fmt.Errorf("%w: overflow_color is empty", ErrInvalidConfig)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("%w: plot size %dx%d", ErrInvalidConfig, c.Plot.Width, c.Plot.Height)
	}
	return nil
}
