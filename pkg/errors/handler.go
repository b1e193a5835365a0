// Package errors maps framework errors to log records and user-facing replies.
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/small-frappuccino/bottemplate/pkg/discord/commands/core"
	"github.com/small-frappuccino/bottemplate/pkg/log"
)

// ErrorSeverity represents the severity level of errors
type ErrorSeverity string

const (
	SeverityLow      ErrorSeverity = "low"
	SeverityMedium   ErrorSeverity = "medium"
	SeverityHigh     ErrorSeverity = "high"
	SeverityCritical ErrorSeverity = "critical"
)

// Reply prefixes shown to users.
const (
	CommandErrorPrefix = "An error occurred: "
	CheckFailedPrefix  = "Command check failed: "
)

// ErrorHandler is the framework's OnError hook. It holds no per-event state,
// so one instance serves every concurrent invocation.
type ErrorHandler struct {
	logger func() *slog.Logger
}

// NewErrorHandler creates a handler logging to the error target.
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{logger: log.ErrorLogger}
}

// Handle logs ferr and, for command and check failures, makes a best-effort
// reply to the invoking surface. A failed reply is logged and dropped.
func (eh *ErrorHandler) Handle(ctx context.Context, ferr *core.FrameworkError) {
	if ferr == nil {
		return
	}
	log.CommandError(ferr.Kind.String(), ferr.Command, ferr.Err)

	logger := eh.logger().With(
		slog.String("kind", ferr.Kind.String()),
		slog.String("severity", string(severityFor(ferr))),
	)
	if ferr.Command != "" {
		logger = logger.With(slog.String("command", ferr.Command))
	}
	logger = logger.With(discordAttrs(ferr.Err)...)

	switch ferr.Kind {
	case core.KindCommand:
		logger.ErrorContext(ctx, fmt.Sprintf("Error in command %q", ferr.Command), slog.String("error", fmt.Sprintf("%+v", ferr.Err)))
		eh.reply(ctx, logger, ferr.Ctx, CommandErrorPrefix+errorText(ferr.Err), "Error while sending error message")

	case core.KindCheckFailed:
		logger.ErrorContext(ctx, "Command check failed", slog.Any("error", ferr.Err))
		if ferr.Err != nil {
			eh.reply(ctx, logger, ferr.Ctx, CheckFailedPrefix+ferr.Err.Error(), "Error while sending check failure message")
		}

	default:
		logger.ErrorContext(ctx, "Other framework error", slog.String("error", ferr.Error()))
	}
}

func (eh *ErrorHandler) reply(ctx context.Context, logger *slog.Logger, inv *core.Context, content, failureMsg string) {
	if inv == nil {
		return
	}
	if err := inv.Say(content); err != nil {
		logger.ErrorContext(ctx, failureMsg, slog.String("reply_error", fmt.Sprintf("%+v", err)))
	}
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// severityFor ranks kinds for filtering: guard rejections are expected traffic,
// registration and gateway failures leave the bot unusable.
func severityFor(ferr *core.FrameworkError) ErrorSeverity {
	switch ferr.Kind {
	case core.KindCheckFailed, core.KindGuildOnly, core.KindUnknownCommand:
		return SeverityLow
	case core.KindCommand:
		if code, ok := discordCode(ferr.Err); ok {
			return discordSeverity(code)
		}
		return SeverityMedium
	case core.KindPanic:
		return SeverityHigh
	case core.KindRegistration, core.KindGateway:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}

func discordCode(err error) (int, bool) {
	var restErr *discordgo.RESTError
	if !stderrors.As(err, &restErr) || restErr.Response == nil {
		return 0, false
	}
	return restErr.Response.StatusCode, true
}

func discordSeverity(status int) ErrorSeverity {
	switch {
	case status == 429:
		return SeverityMedium
	case status >= 500:
		return SeverityCritical
	case status >= 400:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}

// discordAttrs extracts REST error details when err wraps a discordgo.RESTError.
func discordAttrs(err error) []any {
	var restErr *discordgo.RESTError
	if !stderrors.As(err, &restErr) {
		return nil
	}
	attrs := make([]any, 0, 3)
	if restErr.Response != nil {
		attrs = append(attrs, slog.Int("http_status", restErr.Response.StatusCode))
	}
	if restErr.Message != nil {
		attrs = append(attrs,
			slog.Int("discord_code", restErr.Message.Code),
			slog.String("discord_message", restErr.Message.Message),
		)
	}
	return attrs
}
