package observability_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/apclust/affinity"
	"github.com/katalvlaran/apclust/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle clusters 0→1, 1→0, 2→0 through the collector hook.
func triangle(t *testing.T, c *observability.Collector) *affinity.Result {
	t.Helper()
	g, err := affinity.NewGraph(3, []affinity.Link{{Source: 0, Target: 1}, {Source: 1, Target: 0}, {Source: 2, Target: 0}})
	require.NoError(t, err)
	res, err := affinity.Cluster(context.Background(), g,
		affinity.WithStabilityThreshold(2),
		affinity.WithOnEpoch(c.Hook()),
	)
	require.NoError(t, err)
	return res
}

func TestCollector_Hook(t *testing.T) {
	c := observability.NewCollector()
	res := triangle(t, c)
	c.Finish(res, 1500*time.Millisecond)

	assert.Equal(t, 5.0, testutil.ToFloat64(c.Epochs))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.Streak))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.Changed))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Clusters))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Converged))
	assert.Equal(t, 1.5, testutil.ToFloat64(c.Duration))

	n, err := testutil.GatherAndCount(c.Registry())
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestCollector_FinishWithoutResult(t *testing.T) {
	c := observability.NewCollector()
	c.Finish(nil, time.Second)
	assert.Equal(t, 0.0, testutil.ToFloat64(c.Converged))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Duration))
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := observability.NewCollector()
	c.Finish(triangle(t, c), 0)

	path := filepath.Join(t.TempDir(), "apclust.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "apclust_epochs_total 5")
	assert.Contains(t, text, "apclust_converged 1")
	assert.Contains(t, text, "# TYPE apclust_clusters gauge")

	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(`
# HELP apclust_clusters Distinct exemplars in the latest assignment
# TYPE apclust_clusters gauge
apclust_clusters 1
`), "apclust_clusters"))
}
