package perf

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/small-frappuccino/bottemplate/pkg/log"
	"github.com/small-frappuccino/bottemplate/pkg/util"
)

const (
	envSlowCommandThresholdMs     = "BOT_SLOW_COMMAND_THRESHOLD_MS"
	defaultSlowCommandThresholdMs = int64(1000)
)

var (
	thresholdOnce sync.Once
	threshold     time.Duration
)

func slowCommandThreshold() time.Duration {
	thresholdOnce.Do(func() {
		ms := util.EnvInt64(envSlowCommandThresholdMs, defaultSlowCommandThresholdMs)
		if ms <= 0 {
			threshold = 0
			return
		}
		threshold = time.Duration(ms) * time.Millisecond
	})
	return threshold
}

// StartCommand tracks how long a command dispatch takes and logs only when it
// exceeds the threshold. Interactions must be answered within three seconds,
// so slow handlers are worth surfacing. Set BOT_SLOW_COMMAND_THRESHOLD_MS to 0
// to disable.
func StartCommand(command string, attrs ...slog.Attr) func() {
	limit := slowCommandThreshold()
	if limit <= 0 {
		return func() {}
	}

	start := time.Now()
	return func() {
		report(command, time.Since(start), limit, attrs)
	}
}

func report(command string, duration, limit time.Duration, attrs []slog.Attr) {
	if duration < limit {
		return
	}
	name := strings.TrimSpace(command)
	if name == "" {
		name = "unknown"
	}
	args := make([]any, 0, len(attrs)+3)
	args = append(args,
		slog.String("command", name),
		slog.Duration("duration", duration),
		slog.Int64("duration_ms", duration.Milliseconds()),
	)
	for _, attr := range attrs {
		args = append(args, attr)
	}
	log.CommandLogger().Warn("slow command handler", args...)
}
