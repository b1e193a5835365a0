package core

import (
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/small-frappuccino/bottemplate/pkg/bot"
)

// Command describes a bot command: its registration metadata and handler.
type Command interface {
	Name() string
	Description() string
	Options() []*discordgo.ApplicationCommandOption
	Handle(ctx *Context) error
	// RequiresGuild restricts the command to guild channels. The dispatcher
	// enforces it before Handle runs.
	RequiresGuild() bool
	Checks() []Check
}

// Check is a guard evaluated before a handler runs. Returning false rejects
// the invocation; a non-nil error is shown to the user as the reason.
type Check func(ctx *Context) (bool, error)

// Source identifies how a command was invoked.
type Source string

const (
	SourceSlash  Source = "slash"
	SourcePrefix Source = "prefix"
)

// ErrNoResponder is returned by Context.Say when the context cannot reply.
var ErrNoResponder = errors.New("command context has no responder")

// Context is the per-invocation value handed to handlers and hooks.
type Context struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate // set for slash invocations
	Message     *discordgo.MessageCreate     // set for prefix invocations
	Data        *bot.Data
	Logger      *slog.Logger
	Responder   Responder
	Command     Command
	Source      Source
	GuildID     string
	ChannelID   string
	UserID      string
	// Args holds the whitespace-separated words after a prefix command name.
	Args []string
}

// Say replies to the invoking surface.
func (c *Context) Say(content string) error {
	if c == nil || c.Responder == nil {
		return ErrNoResponder
	}
	return c.Responder.Say(content)
}

// CommandName returns the resolved command name, or "" before resolution.
func (c *Context) CommandName() string {
	if c == nil || c.Command == nil {
		return ""
	}
	return c.Command.Name()
}

// SimpleCommand implements Command from plain values.
type SimpleCommand struct {
	name          string
	description   string
	options       []*discordgo.ApplicationCommandOption
	handler       func(ctx *Context) error
	requiresGuild bool
	checks        []Check
}

// NewSimpleCommand creates a command from its metadata and handler.
func NewSimpleCommand(
	name, description string,
	options []*discordgo.ApplicationCommandOption,
	handler func(ctx *Context) error,
	requiresGuild bool,
	checks ...Check,
) *SimpleCommand {
	return &SimpleCommand{
		name:          name,
		description:   description,
		options:       options,
		handler:       handler,
		requiresGuild: requiresGuild,
		checks:        checks,
	}
}

func (sc *SimpleCommand) Name() string        { return sc.name }
func (sc *SimpleCommand) Description() string { return sc.description }
func (sc *SimpleCommand) Options() []*discordgo.ApplicationCommandOption {
	return sc.options
}
func (sc *SimpleCommand) Handle(ctx *Context) error { return sc.handler(ctx) }
func (sc *SimpleCommand) RequiresGuild() bool       { return sc.requiresGuild }
func (sc *SimpleCommand) Checks() []Check           { return sc.checks }

// SlashCommand derives the application command published to Discord.
func SlashCommand(cmd Command) *discordgo.ApplicationCommand {
	if cmd == nil {
		return nil
	}
	ac := &discordgo.ApplicationCommand{
		Type:        discordgo.ChatApplicationCommand,
		Name:        cmd.Name(),
		Description: cmd.Description(),
		Options:     cmd.Options(),
	}
	if cmd.RequiresGuild() {
		dm := false
		ac.DMPermission = &dm
	}
	return ac
}
