package session

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/small-frappuccino/bottemplate/pkg/log"
)

// Error messages
const (
	ErrSessionCreationFailed   = "failed to create Discord session: %w"
	ErrSessionConnectionFailed = "failed to connect to Discord: %w"
)

// ErrEmptyToken is returned when no bot token was supplied.
var ErrEmptyToken = errors.New("discord bot token is empty")

// Intents requested by the bot: every non-privileged intent plus message
// content, which prefix commands need to read message text.
const Intents = discordgo.IntentsAllWithoutPrivileged | discordgo.IntentMessageContent

// Replaced in tests.
var (
	newSession   = func(token string) (*discordgo.Session, error) { return discordgo.New("Bot " + token) }
	openSession  = func(s *discordgo.Session) error { return s.Open() }
	closeSession = func(s *discordgo.Session) error { return s.Close() }
)

// NewDiscordSession creates a session for token without connecting it, so
// callers can attach handlers before the first gateway event arrives.
func NewDiscordSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	s, err := newSession(token)
	if err != nil {
		return nil, fmt.Errorf(ErrSessionCreationFailed, err)
	}
	s.Identify.Intents = Intents

	log.DiscordLogger().Debug("Discord session created")
	return s, nil
}

// Open connects s to the gateway. On failure the session is closed so no
// half-open websocket is left behind.
func Open(s *discordgo.Session) error {
	log.DiscordLogger().Info("Connecting to Discord...")
	if err := openSession(s); err != nil {
		_ = closeSession(s)
		return fmt.Errorf(ErrSessionConnectionFailed, err)
	}
	log.DiscordLogger().Info("Connected to Discord")
	return nil
}

// Close disconnects s from the gateway.
func Close(s *discordgo.Session) error {
	if s == nil {
		return nil
	}
	return closeSession(s)
}
