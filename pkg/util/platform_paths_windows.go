//go:build windows

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// Logs live under %APPDATA%/<AppName>/Logs.
func platformLogDir(appName string) string {
	return filepath.Join(windowsAppDataBase(), appName, "Logs")
}

func windowsAppDataBase() string {
	if v := strings.TrimSpace(os.Getenv("APPDATA")); v != "" {
		return v
	}
	// Typical location: C:\Users\<User>\AppData\Roaming
	if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
		return filepath.Join(home, "AppData", "Roaming")
	}
	return "."
}
