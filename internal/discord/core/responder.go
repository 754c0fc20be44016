package core

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// DeferKind records how an interaction was acknowledged
type DeferKind int

const (
	NotDeferred DeferKind = iota
	// DeferredMessage is a public "thinking..." placeholder that becomes the reply
	DeferredMessage
	// DeferredPrivateMessage is an ephemeral placeholder
	DeferredPrivateMessage
	// DeferredUpdate acknowledges a component without touching its message yet
	DeferredUpdate
)

var (
	errAlreadyAcknowledged = errors.New("interaction already acknowledged")
	errNotAcknowledged     = errors.New("interaction not acknowledged yet")
)

// InteractionResponder answers one interaction. Discord allows exactly one
// initial response; everything after it is an edit or a follow-up.
type InteractionResponder interface {
	Defer(ephemeral bool) error
	// DeferUpdate acknowledges a component; its message is edited later
	DeferUpdate() error
	Respond(response *Response) error
	// Edit replaces the original response and returns the resulting message
	Edit(response *Response) (*discordgo.Message, error)
	FollowUp(response *Response) (*discordgo.Message, error)
	DeleteOriginal() error
	Deferred() DeferKind
	HasResponded() bool
}

// DiscordResponder answers through the interaction webhook
type DiscordResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
	answered    bool
	deferred    DeferKind
}

func NewDiscordResponder(s *discordgo.Session, i *discordgo.InteractionCreate) *DiscordResponder {
	return &DiscordResponder{session: s, interaction: i.Interaction}
}

func (r *DiscordResponder) acknowledge(resp *discordgo.InteractionResponse, kind DeferKind) error {
	if r.answered {
		return errAlreadyAcknowledged
	}
	if err := r.session.InteractionRespond(r.interaction, resp); err != nil {
		return err
	}
	r.answered = true
	r.deferred = kind
	return nil
}

func (r *DiscordResponder) Defer(ephemeral bool) error {
	data := &discordgo.InteractionResponseData{}
	kind := DeferredMessage
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
		kind = DeferredPrivateMessage
	}
	return r.acknowledge(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: data,
	}, kind)
}

func (r *DiscordResponder) DeferUpdate() error {
	return r.acknowledge(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}, DeferredUpdate)
}

// Respond sends the initial response, or edits it when one was already sent
func (r *DiscordResponder) Respond(response *Response) error {
	if r.answered {
		_, err := r.Edit(response)
		return err
	}

	resp := &discordgo.InteractionResponse{Type: discordgo.InteractionResponseChannelMessageWithSource}
	switch {
	case response.Choices != nil:
		resp.Type = discordgo.InteractionApplicationCommandAutocompleteResult
		resp.Data = &discordgo.InteractionResponseData{Choices: response.Choices}
	case response.Update:
		resp.Type = discordgo.InteractionResponseUpdateMessage
		resp.Data = messageData(response)
	default:
		resp.Data = messageData(response)
	}
	return r.acknowledge(resp, NotDeferred)
}

func (r *DiscordResponder) Edit(response *Response) (*discordgo.Message, error) {
	if !r.answered {
		return nil, errNotAcknowledged
	}
	return r.session.InteractionResponseEdit(r.interaction, &discordgo.WebhookEdit{
		Content:    &response.Content,
		Embeds:     &response.Embeds,
		Components: &response.Components,
	})
}

func (r *DiscordResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	if !r.answered {
		return nil, errNotAcknowledged
	}
	params := &discordgo.WebhookParams{
		Content:    response.Content,
		Embeds:     response.Embeds,
		Components: response.Components,
	}
	if response.Ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}
	return r.session.FollowupMessageCreate(r.interaction, true, params)
}

func (r *DiscordResponder) DeleteOriginal() error {
	return r.session.InteractionResponseDelete(r.interaction)
}

func (r *DiscordResponder) HasResponded() bool  { return r.answered }
func (r *DiscordResponder) Deferred() DeferKind { return r.deferred }

func messageData(response *Response) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Content:    response.Content,
		Embeds:     response.Embeds,
		Components: response.Components,
	}
	if response.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return data
}
