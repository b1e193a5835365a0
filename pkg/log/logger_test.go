package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func installed() bool {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger != nil
}

func setupBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := SetupLogger(Config{Console: &buf, JSON: true, DisableFile: true}); err != nil {
		t.Fatalf("SetupLogger: %v", err)
	}
	t.Cleanup(func() { _ = Close() })
	return &buf
}

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		rec := map[string]any{}
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		out = append(out, rec)
	}
	return out
}

func TestSetupLoggerTwiceFails(t *testing.T) {
	setupBuffer(t)

	err := SetupLogger(Config{DisableFile: true})
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("expected ErrAlreadyInitialized, got %v", err)
	}
}

func TestCloseAllowsReinitialization(t *testing.T) {
	if err := SetupLogger(Config{Console: &bytes.Buffer{}, DisableFile: true}); err != nil {
		t.Fatalf("first setup: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := SetupLogger(Config{Console: &bytes.Buffer{}, DisableFile: true}); err != nil {
		t.Fatalf("setup after close: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("close without logger should be a no-op: %v", err)
	}
}

func TestSetupLoggerRejectsUnknownLevel(t *testing.T) {
	err := SetupLogger(Config{Console: &bytes.Buffer{}, Level: "loud", DisableFile: true})
	if err == nil {
		_ = Close()
		t.Fatalf("expected error for unknown level")
	}
	if installed() {
		t.Fatalf("failed setup must not install a logger")
	}
}

func TestSetupLoggerFileSinkUnavailable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := SetupLogger(Config{Console: &bytes.Buffer{}, FilePath: filepath.Join(blocker, "sub", "bot.log")})
	if err == nil {
		_ = Close()
		t.Fatalf("expected error when log directory cannot be created")
	}
}

func TestSetupLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bot.log")
	if err := SetupLogger(Config{Console: &bytes.Buffer{}, FilePath: path}); err != nil {
		t.Fatalf("SetupLogger: %v", err)
	}
	ApplicationLogger().Info("hello file")
	if err := Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello file") || !strings.Contains(string(data), "target="+ApplicationTarget) {
		t.Fatalf("unexpected file contents: %q", data)
	}
}

func TestCommandHelpersUseTargets(t *testing.T) {
	buf := setupBuffer(t)

	info := CommandInfo{Name: "ping", Source: "slash", GuildID: "g1", UserID: "u1"}
	CommandStart(info)
	CommandEnd(info)
	CommandError("command", "ping", errors.New("boom"))

	recs := decodeRecords(t, buf)
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d: %s", len(recs), buf.String())
	}
	for i, want := range []string{CommandTarget, CommandTarget, ErrorTarget} {
		if recs[i][TargetKey] != want {
			t.Fatalf("record %d target = %v, want %s", i, recs[i][TargetKey], want)
		}
	}
	if recs[0]["command"] != "ping" || recs[1]["command"] != "ping" {
		t.Fatalf("command name missing: %v", recs)
	}
	if recs[2]["error"] != "boom" || recs[2]["kind"] != "command" {
		t.Fatalf("unexpected error record: %v", recs[2])
	}
}

func TestErrorTargetName(t *testing.T) {
	if ErrorTarget != "bot_template_rs::error" {
		t.Fatalf("unexpected error target %q", ErrorTarget)
	}
	if CommandTarget != "bot_template_rs::command" {
		t.Fatalf("unexpected command target %q", CommandTarget)
	}
}

func TestLoggersFallBackBeforeSetup(t *testing.T) {
	if installed() {
		t.Fatalf("expected no logger installed")
	}
	// Must not panic without a configured sink.
	CommandStart(CommandInfo{Name: "ping"})
	CommandError("other", "", nil)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_DISABLE_FILE", "yes")

	cfg := ConfigFromEnv()
	if cfg.Level != "debug" || !cfg.JSON || !cfg.DisableFile {
		t.Fatalf("ConfigFromEnv() = %+v", cfg)
	}
}
