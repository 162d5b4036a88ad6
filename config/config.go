// Package config loads estimator and window parameters from a YAML file and
// maps them onto the typed configs the library packages validate.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"streamest/freq"
	"streamest/window"
)

// EstimatorConfig is the file form of freq.Config.
type EstimatorConfig struct {
	Strategy          string  `yaml:"strategy"`
	MaxBucket         int     `yaml:"max_bucket"`
	ExpireWindow      int64   `yaml:"expire_window"`
	ErrorLimit        float64 `yaml:"error_limit"`
	ErrorProbLimit    float64 `yaml:"error_prob_limit"`
	MostFrequentCount int     `yaml:"most_frequent_count"`
}

// WindowConfig is the file form of window.Config.
type WindowConfig struct {
	TimeSpan           int64 `yaml:"time_span"`
	TimeStep           int64 `yaml:"time_step"`
	ProcessingTimeStep int64 `yaml:"processing_time_step"`
}

type Config struct {
	Estimator EstimatorConfig `yaml:"estimator"`
	Window    WindowConfig    `yaml:"window"`
}

// Load reads and decodes a YAML config file. Parameter validation happens in
// the constructors the resulting configs are fed to.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal %s: %w", path, err)
	}
	return &cfg, nil
}

// EstimatorConfig maps the file form onto freq.Config.
func (cfg *Config) EstimatorConfig() freq.Config {
	return freq.Config{
		Strategy:          cfg.Estimator.Strategy,
		MaxBucket:         cfg.Estimator.MaxBucket,
		ExpireWindow:      cfg.Estimator.ExpireWindow,
		ErrorLimit:        cfg.Estimator.ErrorLimit,
		ErrorProbLimit:    cfg.Estimator.ErrorProbLimit,
		MostFrequentCount: cfg.Estimator.MostFrequentCount,
	}
}

// WindowConfig maps the file form onto window.Config.
func (cfg *Config) WindowConfig() window.Config {
	return window.Config{
		TimeSpan:           cfg.Window.TimeSpan,
		TimeStep:           cfg.Window.TimeStep,
		ProcessingTimeStep: cfg.Window.ProcessingTimeStep,
	}
}
