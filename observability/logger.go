// Package observability builds the zap logger and the Prometheus run metrics
// used by the apclust command.
package observability

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrBadLogSetting indicates an unknown log level or format.
var ErrBadLogSetting = errors.New("observability: unknown log setting")

// NewLogger builds a zap logger. format "json" uses the production encoder,
// "console" the development one; level is one of debug, info, warn, error.
func NewLogger(level, format string) (*zap.Logger, error) {
	var zapConfig zap.Config
	switch format {
	case "json":
		zapConfig = zap.NewProductionConfig()
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("%w: format %q", ErrBadLogSetting, format)
	}

	var lvl zapcore.Level
	switch level {
	case "debug":
		lvl = zap.DebugLevel
	case "info":
		lvl = zap.InfoLevel
	case "warn":
		lvl = zap.WarnLevel
	case "error":
		lvl = zap.ErrorLevel
	default:
		return nil, fmt.Errorf("%w: level %q", ErrBadLogSetting, level)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	// Logs go to stderr; stdout carries the cluster count.
	zapConfig.OutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	return logger, nil
}
