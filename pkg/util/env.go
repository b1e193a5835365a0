package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnvWithLocalBinFallback returns the value of the named environment variable.
//
// Before reading it, the fallback file $HOME/.local/bin/.env is loaded when it
// exists. godotenv never overrides variables that are already set, so the
// process environment always wins over the file. A .env in the working
// directory is not consulted.
//
// The returned error names the variable and the fallback path that was tried,
// so callers can surface it verbatim.
func LoadEnvWithLocalBinFallback(name string) (string, error) {
	envPath := localBinEnvPath()
	if envPath != "" {
		if info, err := os.Stat(envPath); err == nil && !info.IsDir() {
			_ = godotenv.Load(envPath)
		}
	}

	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v, nil
	}

	if envPath == "" {
		return "", fmt.Errorf("%s must be set (home directory unresolved)", name)
	}
	return "", fmt.Errorf("%s must be set (also checked %s)", name, envPath)
}

func localBinEnvPath() string {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return ""
	}
	return filepath.Join(home, ".local", "bin", ".env")
}

// EnvString returns the trimmed value of key, or def when unset or blank.
func EnvString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// EnvBool reports whether key holds a truthy value (1, true, yes, on).
func EnvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// EnvInt64 parses key as a base-10 integer, returning def when unset or invalid.
func EnvInt64(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}
