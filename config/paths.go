package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName = "rashik"
	dbFileName = "rashik.db"
)

// DefaultDBPath is the sqlite file under the user's config directory
func DefaultDBPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}
