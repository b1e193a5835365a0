package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/small-frappuccino/bottemplate/pkg/util"
)

// BotName prefixes every log target so records can be filtered per bot.
const BotName = "bot_template_rs"

// Fixed log targets.
const (
	ApplicationTarget = BotName
	DiscordTarget     = BotName + "::discord"
	CommandTarget     = BotName + "::command"
	ErrorTarget       = BotName + "::error"
)

// TargetKey is the record attribute carrying the target.
const TargetKey = "target"

// ErrAlreadyInitialized is returned by SetupLogger when the global logger is
// already installed and Close has not been called.
var ErrAlreadyInitialized = errors.New("logger already initialized")

// Config controls the process-wide sink.
type Config struct {
	// Console receives every record. Defaults to os.Stderr.
	Console io.Writer
	// Level is one of debug, info, warn, error. Defaults to LOG_LEVEL or info.
	Level string
	// JSON selects the JSON handler. Defaults to LOG_FORMAT=json.
	JSON bool
	// DisableFile skips the rotating log file.
	DisableFile bool
	// FilePath overrides the rotating file location.
	FilePath string
}

// ConfigFromEnv returns the default configuration, honoring LOG_LEVEL,
// LOG_FORMAT and LOG_DISABLE_FILE.
func ConfigFromEnv() Config {
	return Config{
		Level:       util.EnvString("LOG_LEVEL", "info"),
		JSON:        strings.EqualFold(util.EnvString("LOG_FORMAT", "text"), "json"),
		DisableFile: util.EnvBool("LOG_DISABLE_FILE"),
	}
}

// Logger owns the installed handler and the rotating file behind it.
type Logger struct {
	base *slog.Logger
	file *lumberjack.Logger
}

var (
	mu           sync.RWMutex
	globalLogger *Logger
)

// SetupLogger installs the global logger exactly once. Calling it again before
// Close fails with ErrAlreadyInitialized.
func SetupLogger(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		return ErrAlreadyInitialized
	}

	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}

	var file *lumberjack.Logger
	out := console
	if !cfg.DisableFile {
		path := cfg.FilePath
		if path == "" {
			path = util.GetLogFilePath()
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("configure logger: create log directory: %w", err)
		}
		file = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = io.MultiWriter(console, file)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	globalLogger = &Logger{base: slog.New(handler), file: file}
	return nil
}

// Close flushes and closes the rotating file and uninstalls the global logger.
// It is safe to call when no logger is installed.
func Close() error {
	mu.Lock()
	l := globalLogger
	globalLogger = nil
	mu.Unlock()

	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug", "trace":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func base() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if globalLogger == nil {
		return slog.Default()
	}
	return globalLogger.base
}

// WithTarget returns the global logger tagged with target.
func WithTarget(target string) *slog.Logger {
	return base().With(slog.String(TargetKey, target))
}

// ApplicationLogger logs process lifecycle events.
func ApplicationLogger() *slog.Logger { return WithTarget(ApplicationTarget) }

// DiscordLogger logs gateway and REST events.
func DiscordLogger() *slog.Logger { return WithTarget(DiscordTarget) }

// CommandLogger logs command lifecycle events.
func CommandLogger() *slog.Logger { return WithTarget(CommandTarget) }

// ErrorLogger logs framework and command errors.
func ErrorLogger() *slog.Logger { return WithTarget(ErrorTarget) }
