package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LBSIM_"

// Simulator holds the settings of a simulation run.
type Simulator struct {
	// Trials per batch. Every grid cell runs this many trials.
	Trials int `yaml:"trials" env:"TRIALS"`

	// Parallelism
	Workers   int `yaml:"workers" env:"WORKERS"`       // 0 = NumCPU
	ChunkSize int `yaml:"chunk_size" env:"CHUNK_SIZE"` // trials per random stream

	// Seed of the base random stream. 0 picks a fresh seed per run.
	Seed uint64 `yaml:"seed" env:"SEED"`

	// Output
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	Locale   string `yaml:"locale" env:"LOCALE"` // BCP 47 tag for number formatting

	// Inputs
	ScenarioPath string `yaml:"scenario_path" env:"SCENARIO"`
	TablesPath   string `yaml:"tables_path" env:"TABLES"`
}

// DefaultSimulator returns Simulator config with sensible defaults.
func DefaultSimulator() Simulator {
	return Simulator{
		Trials:    1000,
		ChunkSize: 1024,
		LogLevel:  "info",
		Locale:    "ja",
	}
}

// LoadSimulator loads simulator config from a YAML file and applies
// LBSIM_* environment overrides on top.
// If the file doesn't exist, the overrides apply to the defaults.
// The result is not validated: callers apply their own overrides first and
// then call Validate.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg fields with LBSIM_* environment variables.
// Unset variables leave the field untouched.
func ApplyEnv(cfg *Simulator) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the numeric settings.
func (c Simulator) Validate() error {
	var errs []error
	if c.Trials <= 0 {
		errs = append(errs, fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers))
	}
	if c.ChunkSize < 0 {
		errs = append(errs, fmt.Errorf("%w: chunk_size must not be negative, got %d", ErrInvalidConfig, c.ChunkSize))
	}
	return errors.Join(errs...)
}
