package util

import (
	"path/filepath"
	"strings"
)

const defaultAppName = "bottemplate"

// CoreVersion is the version of the bot template core.
const CoreVersion = "v0.3.0"

var (
	// ConfiguredAppName is set by the host through SetAppName before logging is configured.
	ConfiguredAppName string

	// AppVersion is the version of the application built on this template.
	AppVersion string
)

// SetAppVersion sets the version of the application built on this template.
func SetAppVersion(v string) {
	AppVersion = strings.TrimSpace(v)
}

// SetAppName sets the application name used for log paths and startup messages.
func SetAppName(name string) {
	if strings.TrimSpace(name) == "" {
		return
	}
	ConfiguredAppName = sanitizeAppName(name)
}

// EffectiveAppName returns the configured application name or the default.
func EffectiveAppName() string {
	if n := strings.TrimSpace(ConfiguredAppName); n != "" {
		return n
	}
	return defaultAppName
}

// GetLogDir returns the base log directory using the unified OS rules:
//   - Linux/Unix:  ~/.log/<AppName>
//   - macOS:       ~/Library/Logs/<AppName>
//   - Windows:     %APPDATA%/<AppName>/Logs
func GetLogDir() string {
	app := EffectiveAppName()
	if dir := strings.TrimSpace(platformLogDir(app)); dir != "" {
		return dir
	}
	return filepath.Join(".", "logs", app)
}

// GetLogFilePath returns the rotating log file path: <LogDir>/<AppName>.log
func GetLogFilePath() string {
	return filepath.Join(GetLogDir(), EffectiveAppName()+".log")
}

// sanitizeAppName normalizes an application name so it is safe as a single
// directory segment on every platform. Windows-invalid characters are replaced
// everywhere so the layout stays stable across platforms.
func sanitizeAppName(name string) string {
	n := strings.TrimSpace(name)
	n = strings.NewReplacer(
		"/", "-",
		"\\", "-",
		"<", "-",
		">", "-",
		":", "-",
		"\"", "-",
		"|", "-",
		"?", "-",
		"*", "-",
		"\x00", "",
	).Replace(n)
	n = strings.TrimRight(n, ". ")
	if n == "" {
		return defaultAppName
	}
	return n
}
