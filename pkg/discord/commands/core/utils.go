package core

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// extractUserID returns the invoking user for guild (Member) and DM (User) interactions.
func extractUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	} else if i.User != nil {
		return i.User.ID
	}
	return ""
}

// IsSlashCommandInteraction checks if the interaction is a slash command.
func IsSlashCommandInteraction(i *discordgo.InteractionCreate) bool {
	return i.Type == discordgo.InteractionApplicationCommand
}

func botUserID(s *discordgo.Session) string {
	if s == nil || s.State == nil || s.State.User == nil {
		return ""
	}
	return s.State.User.ID
}

// stripPrefix removes the configured prefix or a bot mention from content.
func (f *Framework) stripPrefix(content, botID string) (string, bool) {
	content = strings.TrimSpace(content)

	if p := f.opts.Prefix; p != "" {
		if rest, ok := strings.CutPrefix(content, p); ok {
			return strings.TrimSpace(rest), true
		}
	}

	if f.opts.MentionAsPrefix && botID != "" {
		for _, mention := range []string{"<@" + botID + ">", "<@!" + botID + ">"} {
			if rest, ok := strings.CutPrefix(content, mention); ok {
				return strings.TrimSpace(rest), true
			}
		}
	}
	return "", false
}

// splitCommand splits "name arg1 arg2" into the name and its arguments.
func splitCommand(s string) (string, []string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
