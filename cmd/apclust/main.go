// Command apclust clusters a directed link list with affinity propagation.
//
// Usage:
//
//	apclust -nodes 196591 -input loc-gowalla_edges.txt [-output exemplars.txt]
//
// Settings come from defaults, an optional -config YAML file, APCLUST_*
// environment variables and finally flags. On success the number of
// clusters is printed to stdout.
//
// Exit codes:
//
//	0 success
//	1 unexpected failure
//	2 configuration error
//	3 malformed input
//	4 unreadable input or unwritable output
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/apclust/affinity"
	"github.com/katalvlaran/apclust/config"
	"github.com/katalvlaran/apclust/edgelist"
	"github.com/katalvlaran/apclust/observability"
)

const (
	exitOK = iota
	exitFailure
	exitConfig
	exitMalformed
	exitIO
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process globals.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "apclust:", err)
		return exitCode(err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(stderr, "apclust:", err)
		return exitConfig
	}
	defer func() { _ = logger.Sync() }()

	if err := cluster(ctx, cfg, logger, stdout); err != nil {
		logger.Error("apclust failed", zap.Error(err))
		return exitCode(err)
	}

	return exitOK
}

// loadConfig layers defaults, the YAML file, the environment and the flags
// that were set explicitly, then validates the result.
func loadConfig(args []string, stderr io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("apclust", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		path      = fs.String("config", "", "YAML configuration file")
		nodes     = fs.Int("nodes", 0, "number of nodes n; node ids must lie in [0,n)")
		input     = fs.String("input", "", "link list, one 'source target' pair per line")
		output    = fs.String("output", config.DefaultOutput, "write one exemplar per line to this file; empty disables")
		damping   = fs.Float64("damping", affinity.DefaultDamping, "damping factor in (0,1)")
		maxEpochs = fs.Int("max-epochs", affinity.DefaultMaxEpochs, "hard cap on epochs")
		stability = fs.Int("stability", affinity.DefaultStabilityThreshold, "converge once the unchanged streak exceeds this")
		workers   = fs.Int("workers", affinity.DefaultWorkers, "goroutines per message pass")
		logLevel  = fs.String("log-level", "info", "debug, info, warn or error")
		logFormat = fs.String("log-format", "console", "console or json")
		textfile  = fs.String("metrics-textfile", "", "write Prometheus metrics to this file")
	)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", affinity.ErrConfiguration, err)
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "nodes":
			cfg.Nodes = *nodes
		case "input":
			cfg.Input = *input
		case "output":
			cfg.Output = *output
		case "damping":
			cfg.Damping = *damping
		case "max-epochs":
			cfg.MaxEpochs = *maxEpochs
		case "stability":
			cfg.StabilityThreshold = *stability
		case "workers":
			cfg.Workers = *workers
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		case "metrics-textfile":
			cfg.Metrics.Textfile = *textfile
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// cluster loads the links, runs affinity propagation and writes the outputs.
func cluster(ctx context.Context, cfg *config.Config, logger *zap.Logger, stdout io.Writer) error {
	links, err := edgelist.ReadFile(cfg.Input, cfg.Nodes)
	if err != nil {
		return err
	}
	logger.Info("links loaded", zap.String("input", cfg.Input), zap.Int("links", len(links)))

	g, err := affinity.NewGraph(cfg.Nodes, links)
	if err != nil {
		return err
	}

	metrics := observability.NewCollector()
	opts := append(cfg.ClusterOptions(logger), affinity.WithOnEpoch(metrics.Hook()))

	start := time.Now()
	res, err := affinity.Cluster(ctx, g, opts...)
	metrics.Finish(res, time.Since(start))
	if cfg.Metrics.Textfile != "" {
		if werr := metrics.WriteTextfile(cfg.Metrics.Textfile); werr != nil {
			logger.Warn("metrics textfile not written", zap.String("path", cfg.Metrics.Textfile), zap.Error(werr))
		}
	}
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := edgelist.WriteFile(cfg.Output, res.Exemplars); err != nil {
			return err
		}
	}
	fmt.Fprintf(stdout, "Number of clusters: %d\n", res.ClusterCount)

	return nil
}

// exitCode maps an error onto the documented exit codes.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, affinity.ErrConfiguration):
		return exitConfig
	case errors.Is(err, affinity.ErrMalformedInput):
		return exitMalformed
	case errors.Is(err, edgelist.ErrUnreadableSource), errors.Is(err, edgelist.ErrUnwritableOutput):
		return exitIO
	default:
		return exitFailure
	}
}
