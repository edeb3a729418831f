package config

import (
	"errors"
	"fmt"
	"gametree/experiments"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel    string   `yaml:"log-level" env:"GAMETREE_LOG_LEVEL" env-default:"info"`
	Games       int      `yaml:"games" env:"GAMETREE_GAMES" env-default:"100"`
	Workers     int      `yaml:"workers" env:"GAMETREE_WORKERS" env-default:"8"`
	Seed        uint64   `yaml:"seed" env:"GAMETREE_SEED" env-default:"0"`
	OutputDir   string   `yaml:"output-dir" env:"GAMETREE_OUTPUT_DIR" env-default:"results"`
	Confidence  float64  `yaml:"confidence" env:"GAMETREE_CONFIDENCE" env-default:"95"`
	Experiments []string `yaml:"experiments" env:"GAMETREE_EXPERIMENTS" env-separator:"," env-default:"minimax,alphabeta,exploration,strength"`
	Custom      Custom   `yaml:"custom"`
}

// Custom describes an experiment made of explicit pairings.
type Custom struct {
	Name     string                `yaml:"name" env-default:"custom"`
	Pairings []experiments.Pairing `yaml:"pairings"`
}

// Load reads the YAML file at path, or only the environment when path is
// empty. Environment variables override the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoad is Load that panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) Validate() error {
	switch {
	case c.Games <= 0:
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	case c.Confidence <= 0 || c.Confidence >= 100:
		return fmt.Errorf("%w: confidence must be within (0, 100), got %v", ErrInvalidConfig, c.Confidence)
	}
	return nil
}

func (c *Config) Options() experiments.Options {
	return experiments.Options{
		Games:      c.Games,
		Workers:    c.Workers,
		Seed:       c.Seed,
		OutputDir:  c.OutputDir,
		Confidence: c.Confidence,
	}
}

// Selected resolves the configured experiment names, followed by the
// custom experiment when it has pairings.
func (c *Config) Selected() ([]experiments.Experiment, error) {
	selected := []experiments.Experiment{}
	for _, name := range c.Experiments {
		e, err := experiments.Named(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, e)
	}

	if len(c.Custom.Pairings) > 0 {
		e, err := experiments.Custom(c.Custom.Name, c.Custom.Pairings)
		if err != nil {
			return nil, err
		}
		selected = append(selected, e)
	}
	return selected, nil
}
