package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger writes JSON logs to the configured file. Without one, logging
// is a no-op since the UI owns the terminal.
func newLogger(cfg config) (*zap.Logger, error) {
	if cfg.logFile == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{cfg.logFile}
	zc.ErrorOutputPaths = []string{cfg.logFile}
	if cfg.debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}
