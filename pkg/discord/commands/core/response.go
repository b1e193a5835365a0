package core

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Responder sends replies for one invocation.
type Responder interface {
	Say(content string) error
}

// InteractionResponder replies to a slash command interaction. The first reply
// is the interaction response; later replies are follow-up messages, since an
// interaction accepts exactly one initial response.
type InteractionResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction

	mu        sync.Mutex
	responded bool
}

// NewInteractionResponder creates a responder for i.
func NewInteractionResponder(session *discordgo.Session, i *discordgo.Interaction) *InteractionResponder {
	return &InteractionResponder{session: session, interaction: i}
}

// Say sends content as the interaction response or as a follow-up.
func (r *InteractionResponder) Say(content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.responded {
		_, err := r.session.FollowupMessageCreate(r.interaction, true, &discordgo.WebhookParams{
			Content: content,
		})
		return err
	}

	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		return err
	}
	r.responded = true
	return nil
}

// Responded reports whether the initial interaction response was sent.
func (r *InteractionResponder) Responded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.responded
}

// MessageResponder replies to a prefix command in the channel it came from.
type MessageResponder struct {
	session   *discordgo.Session
	channelID string
}

// NewMessageResponder creates a responder posting to channelID.
func NewMessageResponder(session *discordgo.Session, channelID string) *MessageResponder {
	return &MessageResponder{session: session, channelID: channelID}
}

// Say posts content to the channel.
func (r *MessageResponder) Say(content string) error {
	_, err := r.session.ChannelMessageSend(r.channelID, content)
	return err
}
