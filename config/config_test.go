package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/apclust/affinity"
	"github.com/katalvlaran/apclust/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// valid returns a configuration that passes Validate.
func valid() *config.Config {
	cfg := config.Default()
	cfg.Nodes = 10
	cfg.Input = "links.txt"
	return cfg
}

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apclust.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 0.5, cfg.Damping)
	assert.Equal(t, 200, cfg.MaxEpochs)
	assert.Equal(t, 9, cfg.StabilityThreshold)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, "exemplars.txt", cfg.Output)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.NoError(t, valid().Validate())
}

func TestLoad(t *testing.T) {
	path := writeYAML(t, `
nodes: 196591
damping: 0.7
input: loc-gowalla_edges.txt
log:
  format: json
metrics:
  textfile: /var/lib/node_exporter/apclust.prom
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 196591, cfg.Nodes)
	assert.Equal(t, 0.7, cfg.Damping)
	assert.Equal(t, "loc-gowalla_edges.txt", cfg.Input)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/var/lib/node_exporter/apclust.prom", cfg.Metrics.Textfile)
	// untouched keys keep defaults
	assert.Equal(t, 200, cfg.MaxEpochs)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPathAndFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load(writeYAML(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(writeYAML(t, "dampening: 0.5\n"))
	assert.ErrorIs(t, err, affinity.ErrConfiguration, "unknown key")

	_, err = config.Load(writeYAML(t, "nodes: many\n"))
	assert.ErrorIs(t, err, affinity.ErrConfiguration, "wrong type")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, affinity.ErrConfiguration)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{"no nodes", func(c *config.Config) { c.Nodes = 0 }, "nodes"},
		{"damping zero", func(c *config.Config) { c.Damping = 0 }, "damping"},
		{"damping one", func(c *config.Config) { c.Damping = 1 }, "damping"},
		{"zero epochs", func(c *config.Config) { c.MaxEpochs = 0 }, "maxepochs"},
		{"negative threshold", func(c *config.Config) { c.StabilityThreshold = -1 }, "stabilitythreshold"},
		{"zero workers", func(c *config.Config) { c.Workers = 0 }, "workers"},
		{"no input", func(c *config.Config) { c.Input = "" }, "input"},
		{"bad level", func(c *config.Config) { c.Log.Level = "trace" }, "log.level"},
		{"bad format", func(c *config.Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, affinity.ErrConfiguration)
			assert.ErrorContains(t, err, tc.field)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("APCLUST_NODES", "42")
	t.Setenv("APCLUST_DAMPING", "0.9")
	t.Setenv("APCLUST_WORKERS", "4")
	t.Setenv("APCLUST_LOG_LEVEL", "debug")
	t.Setenv("APCLUST_OUTPUT", "")

	cfg := valid()
	cfg.Output = "clusters.txt"
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, 42, cfg.Nodes)
	assert.Equal(t, 0.9, cfg.Damping)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "clusters.txt", cfg.Output, "empty variables are ignored")
}

func TestApplyEnv_BadNumber(t *testing.T) {
	t.Setenv("APCLUST_MAX_EPOCHS", "lots")
	err := valid().ApplyEnv()
	assert.ErrorIs(t, err, affinity.ErrConfiguration)
	assert.ErrorContains(t, err, "APCLUST_MAX_EPOCHS")

	t.Setenv("APCLUST_MAX_EPOCHS", "")
	t.Setenv("APCLUST_DAMPING", "half")
	assert.ErrorIs(t, valid().ApplyEnv(), affinity.ErrConfiguration)
}

// TestClusterOptions runs a tiny clustering with the mapped options and
// checks the values reach the algorithm.
func TestClusterOptions(t *testing.T) {
	cfg := valid()
	cfg.MaxEpochs = 3
	cfg.StabilityThreshold = 100

	g, err := affinity.NewGraph(2, []affinity.Link{{Source: 0, Target: 1}})
	require.NoError(t, err)
	res, err := affinity.Cluster(context.Background(), g, cfg.ClusterOptions(zap.NewNop())...)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Epochs)
	assert.False(t, res.Converged)

	cfg.Damping = 2
	_, err = affinity.Cluster(context.Background(), g, cfg.ClusterOptions(zap.NewNop())...)
	assert.ErrorIs(t, err, affinity.ErrBadDamping)
}
