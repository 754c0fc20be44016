package discord

import (
	"context"
	"fmt"

	"github.com/0niSec/cephalon-seraph/internal/discord/builders"
	"github.com/0niSec/cephalon-seraph/internal/navigation"
	"github.com/bwmarrin/discordgo"
)

// MessageEditor is the part of *discordgo.Session the messenger uses
type MessageEditor interface {
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Messenger edits card messages after their interaction token is gone
type Messenger struct {
	editor MessageEditor
}

// NewMessenger creates a messenger backed by a bot session
func NewMessenger(editor MessageEditor) *Messenger {
	if editor == nil {
		panic("message editor is required")
	}
	return &Messenger{editor: editor}
}

// DisableControls replaces the components of a card message, leaving the embed as is
func (m *Messenger) DisableControls(ctx context.Context, ref navigation.MessageRef, controls navigation.Controls) error {
	components := builders.CardControls(controls)

	_, err := m.editor.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         ref.MessageID,
		Channel:    ref.ChannelID,
		Components: &components,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to edit message %s: %w", ref.MessageID, err)
	}
	return nil
}
