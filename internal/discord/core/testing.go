package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// TestInteractionContext builds an InteractionContext without a gateway payload
type TestInteractionContext struct {
	*InteractionContext
}

// NewTestInteractionContext starts from a guild interaction by a fixed user
func NewTestInteractionContext() *TestInteractionContext {
	return &TestInteractionContext{InteractionContext: &InteractionContext{
		Context:   context.Background(),
		ID:        "test-interaction",
		UserID:    "test-user-123",
		GuildID:   "test-guild-123",
		ChannelID: "test-channel-123",
		options:   make(map[string]string),
	}}
}

func (t *TestInteractionContext) WithParam(name, value string) *TestInteractionContext {
	t.options[name] = value
	return t
}

func (t *TestInteractionContext) WithUserID(id string) *TestInteractionContext {
	t.UserID = id
	return t
}

func (t *TestInteractionContext) WithResponder(r InteractionResponder) *TestInteractionContext {
	t.responder = r
	return t
}

func (t *TestInteractionContext) AsCommand(name string, subcommand ...string) *TestInteractionContext {
	t.Kind = KindCommand
	t.command = name
	if len(subcommand) > 0 {
		t.subcommand = subcommand[0]
	}
	return t
}

// AsAutocomplete simulates typing value into the focused option of a subcommand
func (t *TestInteractionContext) AsAutocomplete(name, subcommand, focused, value string) *TestInteractionContext {
	t.Kind = KindAutocomplete
	t.command = name
	t.subcommand = subcommand
	t.focused = focused
	t.options[focused] = value
	return t
}

func (t *TestInteractionContext) AsComponent(customID string, values ...string) *TestInteractionContext {
	t.Kind = KindComponent
	t.customID = customID
	t.values = values
	return t
}

// MockResponder records what a handler sent instead of calling Discord
type MockResponder struct {
	// DeferCalls holds the ephemeral flag of each Defer
	DeferCalls []bool
	Responses  []*Response
	Edits      []*Response
	FollowUps  []*Response
	Deletes    int

	DeferError   error
	RespondError error
	EditError    error
	// EditMessage is returned from Edit; a default is used when nil
	EditMessage *discordgo.Message

	deferred DeferKind
	answered bool
}

func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

func (m *MockResponder) acknowledge(kind DeferKind) error {
	if m.DeferError != nil {
		return m.DeferError
	}
	m.deferred = kind
	m.answered = true
	return nil
}

func (m *MockResponder) Defer(ephemeral bool) error {
	m.DeferCalls = append(m.DeferCalls, ephemeral)
	if ephemeral {
		return m.acknowledge(DeferredPrivateMessage)
	}
	return m.acknowledge(DeferredMessage)
}

func (m *MockResponder) DeferUpdate() error {
	return m.acknowledge(DeferredUpdate)
}

func (m *MockResponder) Respond(response *Response) error {
	m.Responses = append(m.Responses, response)
	m.answered = true
	return m.RespondError
}

func (m *MockResponder) Edit(response *Response) (*discordgo.Message, error) {
	m.Edits = append(m.Edits, response)
	switch {
	case m.EditError != nil:
		return nil, m.EditError
	case m.EditMessage != nil:
		return m.EditMessage, nil
	}
	return &discordgo.Message{ID: "test-message-123", ChannelID: "test-channel-123"}, nil
}

func (m *MockResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	m.FollowUps = append(m.FollowUps, response)
	return &discordgo.Message{ID: "test-followup-123"}, nil
}

func (m *MockResponder) DeleteOriginal() error {
	m.Deletes++
	return nil
}

func (m *MockResponder) HasResponded() bool  { return m.answered }
func (m *MockResponder) Deferred() DeferKind { return m.deferred }

func (m *MockResponder) LastEdit() *Response     { return last(m.Edits) }
func (m *MockResponder) LastFollowUp() *Response { return last(m.FollowUps) }

func last(responses []*Response) *Response {
	if len(responses) == 0 {
		return nil
	}
	return responses[len(responses)-1]
}
