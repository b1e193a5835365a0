package core

import (
	"fmt"
)

// ErrorKind classifies a FrameworkError.
type ErrorKind int

const (
	// KindCommand: the handler returned an error.
	KindCommand ErrorKind = iota
	// KindCheckFailed: a command check rejected the invocation.
	KindCheckFailed
	// KindGuildOnly: a guild-only command was invoked outside a guild.
	KindGuildOnly
	// KindUnknownCommand: no command is registered under the invoked name.
	KindUnknownCommand
	// KindPanic: the handler panicked.
	KindPanic
	// KindRegistration: publishing commands to Discord failed.
	KindRegistration
	// KindGateway: the gateway connection reported an error.
	KindGateway
)

func (k ErrorKind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindCheckFailed:
		return "check_failed"
	case KindGuildOnly:
		return "guild_only"
	case KindUnknownCommand:
		return "unknown_command"
	case KindPanic:
		return "panic"
	case KindRegistration:
		return "registration"
	case KindGateway:
		return "gateway"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// FrameworkError is any error surfaced by the dispatcher. Ctx is nil for
// kinds not tied to an invocation (registration, gateway).
type FrameworkError struct {
	Kind    ErrorKind
	Command string
	Ctx     *Context
	Err     error
}

func (e *FrameworkError) Error() string {
	prefix := e.Kind.String()
	if e.Command != "" {
		prefix += " error in command " + e.Command
	} else {
		prefix += " error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	}
	return prefix
}

func (e *FrameworkError) Unwrap() error {
	return e.Err
}
