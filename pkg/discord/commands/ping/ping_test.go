package ping

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"github.com/small-frappuccino/bottemplate/pkg/discord/commands/core"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingResponder struct {
	replies []string
	err     error
}

func (r *recordingResponder) Say(content string) error {
	r.replies = append(r.replies, content)
	return r.err
}

func TestPingCommandDefinition(t *testing.T) {
	cmd := NewCommand()
	if cmd.Name() != "ping" {
		t.Fatalf("unexpected name %q", cmd.Name())
	}
	if !strings.Contains(cmd.Description(), "check if the bot is responsive") {
		t.Fatalf("unexpected description %q", cmd.Description())
	}
	if !cmd.RequiresGuild() {
		t.Fatalf("ping must be guild-only")
	}
	if len(cmd.Options()) != 0 || len(cmd.Checks()) != 0 {
		t.Fatalf("ping takes no options and has no checks")
	}
}

func TestPingCommandSlashRepresentation(t *testing.T) {
	ac := core.SlashCommand(NewCommand())
	if ac == nil {
		t.Fatalf("expected a slash command representation")
	}
	if ac.Name != "ping" || ac.Description == "" {
		t.Fatalf("unexpected application command %+v", ac)
	}
	if len(ac.Description) > 100 {
		t.Fatalf("description exceeds Discord's 100 character limit")
	}
}

func TestPingRepliesPong(t *testing.T) {
	resp := &recordingResponder{}
	ctx := &core.Context{Responder: resp, GuildID: "guild"}

	if err := NewCommand().Handle(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.replies) != 1 || resp.replies[0] != "Pong!" {
		t.Fatalf("expected exactly one Pong! reply, got %v", resp.replies)
	}
}

func TestPingPropagatesReplyFailure(t *testing.T) {
	sendErr := errors.New("gateway closed")
	resp := &recordingResponder{err: sendErr}

	err := NewCommand().Handle(&core.Context{Responder: resp, GuildID: "guild"})
	if !errors.Is(err, sendErr) {
		t.Fatalf("expected wrapped send error, got %v", err)
	}
}

func TestPingThroughFramework(t *testing.T) {
	var errs []*core.FrameworkError
	f, err := core.NewFramework(core.Options{
		Commands: []core.Command{NewCommand()},
		OnError:  func(_ context.Context, e *core.FrameworkError) { errs = append(errs, e) },
	})
	if err != nil {
		t.Fatalf("NewFramework: %v", err)
	}

	resp := &recordingResponder{}
	f.Dispatch(&core.Context{Responder: resp, GuildID: "guild", Source: core.SourceSlash}, "ping")
	if len(errs) != 0 || len(resp.replies) != 1 || resp.replies[0] != "Pong!" {
		t.Fatalf("guild invocation: errs=%v replies=%v", errs, resp.replies)
	}

	dm := &recordingResponder{}
	f.Dispatch(&core.Context{Responder: dm, Source: core.SourcePrefix}, "ping")
	if len(errs) != 1 || errs[0].Kind != core.KindGuildOnly || len(dm.replies) != 0 {
		t.Fatalf("DM invocation: errs=%v replies=%v", errs, dm.replies)
	}
}
