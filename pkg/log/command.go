package log

import (
	"fmt"
	"log/slog"
)

// CommandInfo identifies one command invocation in log records.
type CommandInfo struct {
	Name    string
	Source  string // "slash" or "prefix"
	GuildID string
	UserID  string
}

func (c CommandInfo) attrs() []any {
	return []any{
		slog.String("command", c.Name),
		slog.String("source", c.Source),
		slog.String("guild_id", c.GuildID),
		slog.String("user_id", c.UserID),
	}
}

// CommandStart records that a command handler is about to run.
func CommandStart(c CommandInfo) {
	CommandLogger().Info("Command started", c.attrs()...)
}

// CommandEnd records that a command handler returned successfully.
func CommandEnd(c CommandInfo) {
	CommandLogger().Info("Command completed", c.attrs()...)
}

// CommandError records a framework error. kind names the error variant; command
// is empty for errors not tied to an invocation.
func CommandError(kind, command string, err error) {
	attrs := []any{slog.String("kind", kind)}
	if command != "" {
		attrs = append(attrs, slog.String("command", command))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", fmt.Sprintf("%+v", err)))
	}
	ErrorLogger().Error("Framework error", attrs...)
}
