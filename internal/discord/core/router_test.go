package core

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answer(text string) func(*InteractionContext) (*HandlerResult, error) {
	return func(*InteractionContext) (*HandlerResult, error) {
		return &HandlerResult{Response: NewResponse(text)}, nil
	}
}

func TestRouter_ExactRouteBeatsWildcard(t *testing.T) {
	router := NewRouter("search", nil).
		SubcommandFunc("*", answer("any")).
		SubcommandFunc("mod", answer("mod"))

	for sub, want := range map[string]string{"mod": "mod", "weapon": "any"} {
		ctx := NewTestInteractionContext().AsCommand("search", sub).InteractionContext
		require.True(t, router.CanHandle(ctx), sub)

		result, err := router.Handle(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, result.Response.Content, sub)
	}
}

func TestRouter_IgnoresOtherDomains(t *testing.T) {
	router := NewRouter("search", nil).
		SubcommandFunc("*", answer("any")).
		ComponentFunc("view", answer("view"))

	assert.False(t, router.CanHandle(NewTestInteractionContext().AsCommand("help").InteractionContext))
	assert.False(t, router.CanHandle(NewTestInteractionContext().AsComponent("help:view:abc").InteractionContext))
	assert.False(t, router.CanHandle(NewTestInteractionContext().AsComponent("search:page:abc:next").InteractionContext))
	assert.True(t, router.CanHandle(NewTestInteractionContext().AsComponent("search:view:abc").InteractionContext))
}

func TestRouter_WildcardNeedsASubcommand(t *testing.T) {
	router := NewRouter("search", nil).SubcommandFunc("*", answer("any"))

	assert.False(t, router.CanHandle(NewTestInteractionContext().AsCommand("search").InteractionContext))
}

func TestRouter_AutocompleteIsSeparateFromCommands(t *testing.T) {
	router := NewRouter("search", nil).SubcommandFunc("*", answer("lookup"))

	ctx := NewTestInteractionContext().AsAutocomplete("search", "weapon", "name", "bra").InteractionContext
	assert.False(t, router.CanHandle(ctx))

	router.AutocompleteFunc("*", answer("choices"))
	result, err := router.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "choices", result.Response.Content)
}

func TestNewInteractionContext_Autocomplete(t *testing.T) {
	i := commandInteraction("search", "mod",
		&discordgo.ApplicationCommandInteractionDataOption{Name: "name", Type: discordgo.ApplicationCommandOptionString, Value: "serr", Focused: true},
	)
	i.Type = discordgo.InteractionApplicationCommandAutocomplete
	i.GuildID = "guild-1"

	ctx := NewInteractionContext(t.Context(), i)

	assert.Equal(t, KindAutocomplete, ctx.Kind)
	assert.Equal(t, "search", ctx.CommandName())
	assert.Equal(t, "mod", ctx.Subcommand())
	assert.Equal(t, "name", ctx.Focused())
	assert.Equal(t, "serr", ctx.Option("name"))
	assert.Equal(t, "user-1", ctx.UserID)
	assert.Equal(t, "guild-1", ctx.GuildID)
	assert.Empty(t, ctx.ComponentID())
}
