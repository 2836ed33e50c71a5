package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dotConfig = ".config"
	appName   = "tint"
	dbName    = "tint.db"
)

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dotConfig, appName), nil
}

func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", appName, err)
	}
	return dir, nil
}

// DB returns the sqlite path for the local palette store. A non-empty override
// wins and has its parent directory created.
func DB(override string) (string, error) {
	if override != "" {
		if err := os.MkdirAll(filepath.Dir(override), 0o700); err != nil {
			return "", fmt.Errorf("failed to create directory for %s: %w", override, err)
		}
		return override, nil
	}
	dir, err := EnsureDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbName), nil
}
