package service

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvServiceFile is the libpq variable naming the service file.
const EnvServiceFile = "PGSERVICEFILE"

const (
	localServiceFile  = "pg_service.conf"
	userServiceFile   = ".pg_service.conf"
	systemServiceFile = "/etc/pg_service.conf"
)

// Locate finds the service file to use. An explicit path must exist. Otherwise
// the configured path, $PGSERVICEFILE, ./pg_service.conf, ~/.pg_service.conf
// and /etc/pg_service.conf are tried in that order.
func Locate(explicit, configured string) (string, error) {
	if explicit != "" {
		if !fileExists(explicit) {
			return "", fmt.Errorf("%s does not exist: %w", explicit, ErrServiceFileNotFound)
		}
		return explicit, nil
	}

	for _, candidate := range SearchPath(configured) {
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", ErrServiceFileNotFound
}

// SearchPath lists the implicit candidates in lookup order.
func SearchPath(configured string) []string {
	var paths []string
	if configured != "" {
		paths = append(paths, configured)
	}
	if env := os.Getenv(EnvServiceFile); env != "" {
		paths = append(paths, env)
	}
	paths = append(paths, localServiceFile)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, userServiceFile))
	}
	return append(paths, systemServiceFile)
}
