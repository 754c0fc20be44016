package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Kind is the sort of interaction being handled
type Kind int

const (
	KindUnsupported Kind = iota
	KindCommand
	KindAutocomplete
	KindComponent
)

// InteractionContext is the decoded form of one interaction. Handlers read
// options and component data from here instead of digging through discordgo
// payloads.
type InteractionContext struct {
	Context context.Context

	ID        string
	Kind      Kind
	UserID    string
	GuildID   string
	ChannelID string

	command    string
	subcommand string
	focused    string
	options    map[string]string
	customID   string
	values     []string
	responder  InteractionResponder
}

// NewInteractionContext decodes a gateway interaction
func NewInteractionContext(ctx context.Context, i *discordgo.InteractionCreate) *InteractionContext {
	ic := &InteractionContext{
		Context:   ctx,
		ID:        i.ID,
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		options:   make(map[string]string),
	}

	switch {
	case i.Member != nil && i.Member.User != nil:
		ic.UserID = i.Member.User.ID
	case i.User != nil:
		ic.UserID = i.User.ID
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand, discordgo.InteractionApplicationCommandAutocomplete:
		ic.Kind = KindCommand
		if i.Type == discordgo.InteractionApplicationCommandAutocomplete {
			ic.Kind = KindAutocomplete
		}
		data := i.ApplicationCommandData()
		ic.command = data.Name
		ic.readOptions(data.Options)

	case discordgo.InteractionMessageComponent:
		ic.Kind = KindComponent
		data := i.MessageComponentData()
		ic.customID = data.CustomID
		ic.values = data.Values
	}

	return ic
}

// readOptions flattens subcommands into the subcommand field. Only string
// options are kept; the bot declares no other kind.
func (ic *InteractionContext) readOptions(options []*discordgo.ApplicationCommandInteractionDataOption) {
	for _, opt := range options {
		if opt.Type == discordgo.ApplicationCommandOptionSubCommand ||
			opt.Type == discordgo.ApplicationCommandOptionSubCommandGroup {
			ic.subcommand = opt.Name
			ic.readOptions(opt.Options)
			continue
		}

		if s, ok := opt.Value.(string); ok {
			ic.options[opt.Name] = s
		}
		if opt.Focused {
			ic.focused = opt.Name
		}
	}
}

// Option returns a string option, or "" when it was not given
func (ic *InteractionContext) Option(name string) string {
	return ic.options[name]
}

func (ic *InteractionContext) CommandName() string { return ic.command }
func (ic *InteractionContext) Subcommand() string  { return ic.subcommand }

// Focused names the option being typed into during autocomplete
func (ic *InteractionContext) Focused() string { return ic.focused }

// ComponentID is the custom ID of the clicked component
func (ic *InteractionContext) ComponentID() string { return ic.customID }

// SelectedValues returns the values picked in a select menu
func (ic *InteractionContext) SelectedValues() []string {
	return ic.values
}

func (ic *InteractionContext) IsCommand() bool      { return ic.Kind == KindCommand }
func (ic *InteractionContext) IsAutocomplete() bool { return ic.Kind == KindAutocomplete }

// Responder returns the responder the pipeline attached to this interaction
func (ic *InteractionContext) Responder() InteractionResponder {
	return ic.responder
}
