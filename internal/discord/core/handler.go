package core

import (
	"github.com/bwmarrin/discordgo"
)

// Handler answers the interactions it accepts
type Handler interface {
	CanHandle(ctx *InteractionContext) bool
	Handle(ctx *InteractionContext) (*HandlerResult, error)
}

// HandlerFunc adapts a function into a Handler that accepts everything.
// Routing is left to the Router that holds it.
type HandlerFunc func(ctx *InteractionContext) (*HandlerResult, error)

func (f HandlerFunc) CanHandle(*InteractionContext) bool {
	return true
}

func (f HandlerFunc) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return f(ctx)
}

// HandlerResult is what a handler leaves for the pipeline to send
type HandlerResult struct {
	// Response is nil when the handler already answered through the responder
	Response *Response

	// Deferred reports that the handler acknowledged the interaction itself
	Deferred bool
}

// Response is a message, an autocomplete answer or an edit of the card a
// component is attached to
type Response struct {
	Content    string
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent

	// Choices answers an autocomplete interaction. Nil for anything else.
	Choices []*discordgo.ApplicationCommandOptionChoice

	// Ephemeral responses are only visible to the caller
	Ephemeral bool

	// Update replaces the message a component is attached to
	Update bool
}

// NewResponse creates a plain text response
func NewResponse(content string) *Response {
	return &Response{Content: content}
}

// NewEphemeralResponse creates a private notice
func NewEphemeralResponse(content string) *Response {
	return &Response{Content: content, Ephemeral: true}
}

func NewEmbedResponse(embed *discordgo.MessageEmbed) *Response {
	return &Response{Embeds: []*discordgo.MessageEmbed{embed}}
}

// NewChoicesResponse creates an autocomplete response. An empty list is valid
// and tells Discord there are no suggestions.
func NewChoicesResponse(choices []*discordgo.ApplicationCommandOptionChoice) *Response {
	if choices == nil {
		choices = []*discordgo.ApplicationCommandOptionChoice{}
	}
	return &Response{Choices: choices}
}

func (r *Response) WithComponents(components ...discordgo.MessageComponent) *Response {
	r.Components = components
	return r
}

func (r *Response) AsEphemeral() *Response {
	r.Ephemeral = true
	return r
}

func (r *Response) AsUpdate() *Response {
	r.Update = true
	return r
}
