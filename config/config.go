// Package config loads apclust run settings.
//
// Settings are layered: Default, then an optional YAML file (Load), then
// APCLUST_* environment variables (ApplyEnv). The CLI applies its flags on
// top and calls Validate last.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/apclust/affinity"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "APCLUST_"

// DefaultOutput is where the exemplar assignment is written unless
// overridden. An empty Output disables the write.
const DefaultOutput = "exemplars.txt"

// Config holds all run configuration.
type Config struct {
	Nodes              int     `yaml:"nodes" validate:"min=1"`
	Damping            float64 `yaml:"damping" validate:"gt=0,lt=1"`
	MaxEpochs          int     `yaml:"max_epochs" validate:"min=1"`
	StabilityThreshold int     `yaml:"stability_threshold" validate:"min=0"`
	Workers            int     `yaml:"workers" validate:"min=1"`
	Input              string  `yaml:"input" validate:"required"`
	Output             string  `yaml:"output"`

	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// MetricsConfig enables the Prometheus textfile export when Textfile is set.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

var validate = validator.New()

// Default returns the built-in settings. Nodes and Input have no default.
func Default() *Config {
	return &Config{
		Damping:            affinity.DefaultDamping,
		MaxEpochs:          affinity.DefaultMaxEpochs,
		StabilityThreshold: affinity.DefaultStabilityThreshold,
		Workers:            affinity.DefaultWorkers,
		Output:             DefaultOutput,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// skips the file. Keys absent from the file keep their defaults; unknown
// keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", affinity.ErrConfiguration, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %w", affinity.ErrConfiguration, path, err)
	}

	return cfg, nil
}

// Validate checks every field against its tag and wraps failures in
// affinity.ErrConfiguration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", affinity.ErrConfiguration, formatValidationError(err))
	}

	return nil
}

// ClusterOptions maps the algorithm settings onto affinity options.
func (c *Config) ClusterOptions(logger *zap.Logger) []affinity.Option {
	return []affinity.Option{
		affinity.WithDamping(c.Damping),
		affinity.WithMaxEpochs(c.MaxEpochs),
		affinity.WithStabilityThreshold(c.StabilityThreshold),
		affinity.WithWorkers(c.Workers),
		affinity.WithLogger(logger),
	}
}

// formatValidationError joins field errors into one readable message.
func formatValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		field := strings.ToLower(e.Namespace())
		if e.Param() == "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, e.Tag()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", field, e.Tag(), e.Param(), e.Value()))
	}

	return strings.Join(msgs, "; ")
}
