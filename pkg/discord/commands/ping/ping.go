// Package ping provides the liveness command.
package ping

import (
	"fmt"

	"github.com/small-frappuccino/bottemplate/pkg/discord/commands/core"
)

const (
	commandName        = "ping"
	commandDescription = "This command is used to check if the bot is responsive."
	reply              = "Pong!"
)

// NewCommand returns the guild-only ping command.
func NewCommand() *core.SimpleCommand {
	return core.NewSimpleCommand(commandName, commandDescription, nil, handle, true)
}

func handle(ctx *core.Context) error {
	if err := ctx.Say(reply); err != nil {
		return fmt.Errorf("send pong: %w", err)
	}
	return nil
}
