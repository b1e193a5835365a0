package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateCommand is returned when a command name is registered twice.
var ErrDuplicateCommand = errors.New("duplicate command name")

// CommandRegistry indexes commands by name. It is written during framework
// construction only and read concurrently afterwards.
type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{commands: make(map[string]Command)}
}

// Register adds cmd. Names must be unique and non-empty.
func (r *CommandRegistry) Register(cmd Command) error {
	if cmd == nil {
		return errors.New("nil command")
	}
	name := cmd.Name()
	if name == "" {
		return errors.New("command name is empty")
	}
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCommand, name)
	}
	r.commands[name] = cmd
	return nil
}

// GetCommand returns a command by name.
func (r *CommandRegistry) GetCommand(name string) (Command, bool) {
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetAllCommands returns the registered commands sorted by name.
func (r *CommandRegistry) GetAllCommands() []Command {
	out := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Len returns the number of registered commands.
func (r *CommandRegistry) Len() int {
	return len(r.commands)
}
