// Package logging builds the zap logger shared by the CLI and the pager.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON logger writing to logFile, at debug level when verbose.
// The pager owns the terminal, so without a log file nothing is logged.
func New(verbose bool, logFile string) (*zap.Logger, error) {
	if logFile == "" {
		return zap.NewNop(), nil
	}
	if dir := filepath.Dir(logFile); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.OutputPaths = []string{logFile}
	config.ErrorOutputPaths = []string{logFile}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
