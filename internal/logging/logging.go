// Package logging builds the zap loggers used by the commands.
package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// New returns a JSON logger at level writing to path ("stderr", "stdout" or
// a file). Every entry carries a fresh session id, which is also returned.
func New(level, path string) (*zap.Logger, string, error) {
	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, "", fmt.Errorf("log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = atomic
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Sampling = nil

	logger, err := cfg.Build()
	if err != nil {
		return nil, "", fmt.Errorf("build logger: %w", err)
	}

	session := uuid.NewString()
	return logger.With(zap.String("session", session)), session, nil
}
