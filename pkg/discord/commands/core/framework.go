package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"

	"github.com/small-frappuccino/bottemplate/pkg/bot"
	"github.com/small-frappuccino/bottemplate/pkg/discord/perf"
	"github.com/small-frappuccino/bottemplate/pkg/log"
)

// Hook runs around a command handler.
type Hook func(ctx *Context)

// ErrorHook receives every FrameworkError. It must not block for long: it runs
// on the gateway event goroutine that produced the error.
type ErrorHook func(ctx context.Context, err *FrameworkError)

// Options configures a Framework.
type Options struct {
	Commands []Command
	// Prefix enables text commands such as "!ping". Empty disables it.
	Prefix string
	// MentionAsPrefix accepts "@bot ping" as a text command.
	MentionAsPrefix bool
	Data            *bot.Data
	PreCommand      Hook
	PostCommand     Hook
	OnError         ErrorHook
}

// Framework dispatches slash and prefix invocations to registered commands.
type Framework struct {
	registry *CommandRegistry
	opts     Options
}

// NewFramework registers opts.Commands. It fails on duplicate names.
func NewFramework(opts Options) (*Framework, error) {
	registry := NewCommandRegistry()
	for _, cmd := range opts.Commands {
		if err := registry.Register(cmd); err != nil {
			return nil, fmt.Errorf("register command: %w", err)
		}
	}
	if opts.OnError == nil {
		opts.OnError = logOnly
	}
	return &Framework{registry: registry, opts: opts}, nil
}

func logOnly(_ context.Context, err *FrameworkError) {
	if err == nil {
		return
	}
	log.CommandError(err.Kind.String(), err.Command, err.Err)
}

// Registry returns the command registry.
func (f *Framework) Registry() *CommandRegistry {
	return f.registry
}

// Data returns the shared state handed to every invocation.
func (f *Framework) Data() *bot.Data {
	return f.opts.Data
}

// SlashCommands returns the application commands for every registered command.
func (f *Framework) SlashCommands() []*discordgo.ApplicationCommand {
	cmds := f.registry.GetAllCommands()
	out := make([]*discordgo.ApplicationCommand, 0, len(cmds))
	for _, cmd := range cmds {
		out = append(out, SlashCommand(cmd))
	}
	return out
}

// RegisterGlobally publishes every command as a global application command.
// The bulk overwrite replaces the remote set, so repeating it on each start
// leaves Discord with exactly the commands known to this process. A failure is
// reported to OnError and returned.
func (f *Framework) RegisterGlobally(s *discordgo.Session, appID string) error {
	var err error
	if appID == "" {
		err = errors.New("application id is empty")
	} else {
		_, err = s.ApplicationCommandBulkOverwrite(appID, "", f.SlashCommands())
	}
	if err != nil {
		err = fmt.Errorf("register commands globally: %w", err)
		f.report(&FrameworkError{Kind: KindRegistration, Err: err})
		return err
	}

	log.DiscordLogger().Info("Registered global commands", slog.Int("count", f.registry.Len()))
	return nil
}

// ReportGatewayError routes a connection-level error through OnError.
func (f *Framework) ReportGatewayError(err error) {
	if err == nil {
		return
	}
	f.report(&FrameworkError{Kind: KindGateway, Err: err})
}

// HandleInteraction dispatches slash command interactions. It is registered
// with discordgo's AddHandler.
func (f *Framework) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i == nil || i.Interaction == nil || !IsSlashCommandInteraction(i) {
		return
	}

	ctx := &Context{
		Session:     s,
		Interaction: i,
		Responder:   NewInteractionResponder(s, i.Interaction),
		Source:      SourceSlash,
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		UserID:      extractUserID(i),
	}
	f.dispatch(ctx, i.ApplicationCommandData().Name)
}

// HandleMessage dispatches prefix commands. It is registered with discordgo's
// AddHandler. Messages from bots and without a recognised prefix are ignored.
func (f *Framework) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Author == nil || m.Author.Bot {
		return
	}

	rest, ok := f.stripPrefix(m.Content, botUserID(s))
	if !ok {
		return
	}
	name, args := splitCommand(rest)
	if name == "" {
		return
	}

	ctx := &Context{
		Session:   s,
		Message:   m,
		Responder: NewMessageResponder(s, m.ChannelID),
		Source:    SourcePrefix,
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		UserID:    m.Author.ID,
		Args:      args,
	}
	f.dispatch(ctx, name)
}

// Dispatch runs the command name against a prepared context. HandleInteraction
// and HandleMessage build the context; callers with another surface can use
// Dispatch directly. A nil ctx is treated as an empty context, so replies fail
// with ErrNoResponder.
func (f *Framework) Dispatch(ctx *Context, name string) {
	if ctx == nil {
		ctx = &Context{}
	}
	f.dispatch(ctx, name)
}

func (f *Framework) dispatch(ctx *Context, name string) {
	if ctx.Data == nil {
		ctx.Data = f.opts.Data
	}
	ctx.Logger = log.CommandLogger().With(
		slog.String("command", name),
		slog.String("source", string(ctx.Source)),
		slog.String("guild_id", ctx.GuildID),
		slog.String("user_id", ctx.UserID),
	)

	cmd, exists := f.registry.GetCommand(name)
	if !exists && ctx.Source == SourcePrefix {
		// Unknown words after a prefix are chat, not commands.
		ctx.Logger.Debug("Ignoring unknown prefix command")
		return
	}
	if !exists {
		f.report(&FrameworkError{Kind: KindUnknownCommand, Command: name, Ctx: ctx, Err: fmt.Errorf("unknown command %q", name)})
		return
	}
	ctx.Command = cmd

	done := perf.StartCommand(name, slog.String("source", string(ctx.Source)))
	defer done()

	if cmd.RequiresGuild() && ctx.GuildID == "" {
		f.report(&FrameworkError{Kind: KindGuildOnly, Command: name, Ctx: ctx, Err: errors.New("command can only be used in a server")})
		return
	}

	for _, check := range cmd.Checks() {
		passed, err := runCheck(check, ctx)
		if err != nil || !passed {
			f.report(&FrameworkError{Kind: KindCheckFailed, Command: name, Ctx: ctx, Err: err})
			return
		}
	}

	if f.opts.PreCommand != nil {
		f.opts.PreCommand(ctx)
	}

	if kind, err := invoke(cmd, ctx); err != nil {
		f.report(&FrameworkError{Kind: kind, Command: name, Ctx: ctx, Err: err})
		return
	}

	if f.opts.PostCommand != nil {
		f.opts.PostCommand(ctx)
	}
}

func (f *Framework) report(err *FrameworkError) {
	f.opts.OnError(context.Background(), err)
}

func runCheck(check Check, ctx *Context) (passed bool, err error) {
	if check == nil {
		return true, nil
	}
	defer func() {
		if r := recover(); r != nil {
			passed, err = false, fmt.Errorf("check panicked: %v", r)
		}
	}()
	return check(ctx)
}

func invoke(cmd Command, ctx *Context) (kind ErrorKind, err error) {
	defer func() {
		if r := recover(); r != nil {
			ctx.Logger.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(debug.Stack())))
			kind, err = KindPanic, fmt.Errorf("panic: %v", r)
		}
	}()
	return KindCommand, cmd.Handle(ctx)
}
