package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the application logger. Production-style JSON when ENV is set
// to production, human-readable development output otherwise. CLI user
// output goes to stdout; the logger stays on stderr.
func New() (*zap.Logger, error) {
	if os.Getenv("ENV") == "production" {
		return zap.NewProduction()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if os.Getenv("NUTRITRACK_DEBUG") != "" {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
