package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/apclust/affinity"
)

// Namespace prefixes every metric.
const Namespace = "apclust"

// Collector holds the Prometheus metrics of one clustering run on its own
// registry. A batch job has no scrape endpoint, so the registry is written
// out with WriteTextfile for the node exporter textfile collector.
type Collector struct {
	registry *prometheus.Registry

	Epochs    prometheus.Counter
	Streak    prometheus.Gauge
	Changed   prometheus.Gauge
	Clusters  prometheus.Gauge
	Converged prometheus.Gauge
	Duration  prometheus.Gauge
}

// NewCollector creates the metrics and registers them on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Epochs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "epochs_total",
			Help:      "Number of message-passing epochs executed",
		}),
		Streak: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "streak",
			Help:      "Consecutive epochs with an unchanged exemplar assignment",
		}),
		Changed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "changed_nodes",
			Help:      "Nodes whose exemplar changed in the last epoch",
		}),
		Clusters: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "clusters",
			Help:      "Distinct exemplars in the latest assignment",
		}),
		Converged: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "converged",
			Help:      "1 if the last run converged before the epoch cap",
		}),
		Duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last clustering run",
		}),
	}
	c.registry.MustRegister(c.Epochs, c.Streak, c.Changed, c.Clusters, c.Converged, c.Duration)

	return c
}

// Registry exposes the private registry, e.g. for testutil or an HTTP handler.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Hook returns an epoch hook for affinity.WithOnEpoch.
func (c *Collector) Hook() func(affinity.EpochStats) error {
	return func(s affinity.EpochStats) error {
		c.Epochs.Inc()
		c.Streak.Set(float64(s.Streak))
		c.Changed.Set(float64(s.Changed))
		c.Clusters.Set(float64(s.ClusterCount))
		return nil
	}
}

// Finish records the final outcome of a run.
func (c *Collector) Finish(res *affinity.Result, elapsed time.Duration) {
	c.Duration.Set(elapsed.Seconds())
	if res == nil {
		c.Converged.Set(0)
		return
	}
	c.Clusters.Set(float64(res.ClusterCount))
	if res.Converged {
		c.Converged.Set(1)
	} else {
		c.Converged.Set(0)
	}
}

// WriteTextfile writes the registry in text exposition format to path.
// The write goes through a temporary file and a rename.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
