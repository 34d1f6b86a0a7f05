package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/apclust/affinity"
)

// ApplyEnv overrides fields from APCLUST_* variables. Unset or empty
// variables leave the field alone; unparsable numbers are configuration
// errors rather than silently ignored.
func (c *Config) ApplyEnv() error {
	get := func(key string) (string, bool) {
		v, ok := os.LookupEnv(EnvPrefix + key)
		return v, ok && v != ""
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"NODES", &c.Nodes},
		{"MAX_EPOCHS", &c.MaxEpochs},
		{"STABILITY_THRESHOLD", &c.StabilityThreshold},
		{"WORKERS", &c.Workers},
	}
	for _, f := range ints {
		v, ok := get(f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %w", affinity.ErrConfiguration, EnvPrefix, f.key, v, err)
		}
		*f.dst = n
	}

	if v, ok := get("DAMPING"); ok {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %sDAMPING=%q: %w", affinity.ErrConfiguration, EnvPrefix, v, err)
		}
		c.Damping = d
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"INPUT", &c.Input},
		{"OUTPUT", &c.Output},
		{"LOG_LEVEL", &c.Log.Level},
		{"LOG_FORMAT", &c.Log.Format},
		{"METRICS_TEXTFILE", &c.Metrics.Textfile},
	}
	for _, f := range strs {
		if v, ok := get(f.key); ok {
			*f.dst = v
		}
	}

	return nil
}
