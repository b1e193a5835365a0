package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/small-frappuccino/bottemplate/pkg/bot"
	"github.com/small-frappuccino/bottemplate/pkg/discord/commands"
	"github.com/small-frappuccino/bottemplate/pkg/discord/session"
	"github.com/small-frappuccino/bottemplate/pkg/log"
	"github.com/small-frappuccino/bottemplate/pkg/util"
)

// Replaced in tests.
var (
	newSession      = session.NewDiscordSession
	openSession     = session.Open
	closeSession    = session.Close
	waitForShutdown = func(ctx context.Context) { util.WaitForInterruptContext(ctx, nil) }
	stderr          = io.Writer(os.Stderr)
)

// Run bootstraps the bot and blocks until SIGINT/SIGTERM.
//
// appName affects log paths; tokenEnv is the environment variable holding the
// bot token. The token is read from the process environment first and then
// from $HOME/.local/bin/.env. A missing token fails before any network
// activity. A gateway connection failure is printed to stderr and Run returns
// nil, so the exit status is not changed by it.
func Run(appName, tokenEnv string) error {
	started := time.Now()

	// App name first (affects paths)
	util.SetAppName(appName)

	if err := log.SetupLogger(log.ConfigFromEnv()); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	defer log.Close()

	token, err := util.LoadEnvWithLocalBinFallback(tokenEnv)
	if err != nil {
		return err
	}

	data := bot.NewData(appName)

	commandHandler, err := commands.NewCommandHandler(data)
	if err != nil {
		return err
	}

	discordSession, err := newSession(token)
	if err != nil {
		return fmt.Errorf("create discord session: %w", err)
	}
	commandHandler.Attach(discordSession)
	discordSession.AddHandler(readyHandler(commandHandler))
	discordSession.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
		log.DiscordLogger().Warn("Gateway disconnected; reconnecting")
	})
	discordSession.AddHandler(func(_ *discordgo.Session, _ *discordgo.Resumed) {
		log.DiscordLogger().Info("Gateway session resumed")
	})

	log.ApplicationLogger().Info(formatStartupMessage(appName, util.AppVersion, util.CoreVersion))

	if err := openSession(discordSession); err != nil {
		commandHandler.Framework().ReportGatewayError(err)
		fmt.Fprintf(stderr, "Error starting the bot: %v\n", err)
		return nil
	}

	log.ApplicationLogger().Info(fmt.Sprintf("%s running. Press Ctrl+C to stop...", appName),
		slog.Duration("startup", time.Since(started).Round(time.Millisecond)))

	waitForShutdown(context.Background())

	log.ApplicationLogger().Info(fmt.Sprintf("Stopping %s...", appName), slog.Duration("uptime", data.Uptime().Round(time.Second)))
	if _, err := util.NotifyStopping(); err != nil {
		log.ApplicationLogger().Warn("systemd stopping notification failed", slog.String("error", err.Error()))
	}
	if err := closeSession(discordSession); err != nil {
		log.ErrorLogger().Error("Failed to close Discord session", slog.String("error", err.Error()))
	}
	return nil
}

// readyHandler publishes the command set on every READY and signals systemd
// readiness once. READY repeats after a full reconnect; the bulk overwrite
// leaves the remote set unchanged in that case.
func readyHandler(ch *commands.CommandHandler) func(*discordgo.Session, *discordgo.Ready) {
	var notifyOnce sync.Once
	return func(s *discordgo.Session, r *discordgo.Ready) {
		if r == nil || r.User == nil {
			log.DiscordLogger().Warn("READY without user; skipping command registration")
			return
		}
		log.DiscordLogger().Info("Authenticated", slog.String("user", r.User.Username), slog.Int("guilds", len(r.Guilds)))

		// Failures are already routed through the error handler.
		_ = ch.SetupCommands(s, r.User.ID)

		notifyOnce.Do(func() {
			if _, err := util.NotifyReady(); err != nil {
				log.ApplicationLogger().Warn("systemd readiness notification failed", slog.String("error", err.Error()))
			}
		})
	}
}

// formatStartupMessage renders "🚀 Starting <name> [<version>] [(core <core>)]...".
// The core version is shown only when it adds information.
func formatStartupMessage(appName, appVersion, coreVersion string) string {
	var b strings.Builder
	b.WriteString("🚀 Starting ")
	b.WriteString(strings.TrimSpace(appName))

	appVersion = strings.TrimSpace(appVersion)
	if appVersion != "" {
		b.WriteString(" " + appVersion)
	}
	if coreVersion = strings.TrimSpace(coreVersion); coreVersion != "" && coreVersion != appVersion {
		b.WriteString(" (core " + coreVersion + ")")
	}
	b.WriteString("...")
	return b.String()
}
