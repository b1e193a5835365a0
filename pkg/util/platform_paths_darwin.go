//go:build darwin

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// Logs live under ~/Library/Logs/<AppName>.
func platformLogDir(appName string) string {
	return filepath.Join(darwinHomeDir(), "Library", "Logs", appName)
}

func darwinHomeDir() string {
	if h, err := os.UserHomeDir(); err == nil && strings.TrimSpace(h) != "" {
		return h
	}
	if h := strings.TrimSpace(os.Getenv("HOME")); h != "" {
		return h
	}
	return "."
}
