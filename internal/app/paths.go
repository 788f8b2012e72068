package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName = "nutri-track"
	dbFileName = "nutritrack.db"
)

// DefaultDBPath resolves the database location: the NUTRITRACK_DB
// environment variable when set, otherwise a file under the user config
// directory.
func DefaultDBPath() (string, error) {
	if fromEnv := os.Getenv("NUTRITRACK_DB"); fromEnv != "" {
		return fromEnv, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}
