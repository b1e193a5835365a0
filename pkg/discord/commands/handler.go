package commands

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/small-frappuccino/bottemplate/pkg/bot"
	"github.com/small-frappuccino/bottemplate/pkg/discord/commands/core"
	"github.com/small-frappuccino/bottemplate/pkg/discord/commands/ping"
	"github.com/small-frappuccino/bottemplate/pkg/errors"
	"github.com/small-frappuccino/bottemplate/pkg/log"
)

// CommandHandler is the main handler that coordinates all bot commands
type CommandHandler struct {
	framework *core.Framework
}

// Commands returns the bot's command set. Add new commands here.
func Commands() []core.Command {
	return []core.Command{
		ping.NewCommand(),
	}
}

// NewCommandHandler builds the framework with the command set and the
// lifecycle hooks: command start/end logging and the error handler.
func NewCommandHandler(data *bot.Data) (*CommandHandler, error) {
	framework, err := core.NewFramework(core.Options{
		Commands:        Commands(),
		MentionAsPrefix: true,
		Data:            data,
		PreCommand:      LogCommandStart,
		PostCommand:     LogCommandEnd,
		OnError:         errors.NewErrorHandler().Handle,
	})
	if err != nil {
		return nil, fmt.Errorf("build command framework: %w", err)
	}
	return &CommandHandler{framework: framework}, nil
}

// Attach registers the gateway handlers that feed the framework.
func (ch *CommandHandler) Attach(s *discordgo.Session) {
	s.AddHandler(ch.framework.HandleInteraction)
	s.AddHandler(ch.framework.HandleMessage)
}

// SetupCommands publishes the command set to Discord as global commands.
func (ch *CommandHandler) SetupCommands(s *discordgo.Session, appID string) error {
	if err := ch.framework.RegisterGlobally(s, appID); err != nil {
		return err
	}
	log.ApplicationLogger().Info("Bot commands setup completed", slog.Int("commands", ch.framework.Registry().Len()))
	return nil
}

// Framework returns the underlying dispatcher (for tests or extensions).
func (ch *CommandHandler) Framework() *core.Framework {
	return ch.framework
}

// LogCommandStart is the pre-command hook.
func LogCommandStart(ctx *core.Context) {
	log.CommandStart(commandInfo(ctx))
}

// LogCommandEnd is the post-command hook.
func LogCommandEnd(ctx *core.Context) {
	log.CommandEnd(commandInfo(ctx))
}

func commandInfo(ctx *core.Context) log.CommandInfo {
	if ctx == nil {
		return log.CommandInfo{}
	}
	return log.CommandInfo{
		Name:    ctx.CommandName(),
		Source:  string(ctx.Source),
		GuildID: ctx.GuildID,
		UserID:  ctx.UserID,
	}
}
