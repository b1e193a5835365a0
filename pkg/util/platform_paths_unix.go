//go:build !windows && !darwin

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// Logs live under ~/.log/<AppName>; callers create the directory as needed.
func platformLogDir(appName string) string {
	return filepath.Join(platformHomeDir(), ".log", appName)
}

func platformHomeDir() string {
	if h := strings.TrimSpace(os.Getenv("HOME")); h != "" {
		return h
	}
	if h, err := os.UserHomeDir(); err == nil && strings.TrimSpace(h) != "" {
		return h
	}
	return "."
}
