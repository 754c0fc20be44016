package core

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(responder *MockResponder) *Pipeline {
	pipeline := NewPipeline()
	pipeline.SetResponderFactory(func(*discordgo.Session, *discordgo.InteractionCreate) InteractionResponder {
		return responder
	})
	return pipeline
}

func commandInteraction(name, sub string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	data := discordgo.ApplicationCommandInteractionData{Name: name}
	if sub != "" {
		data.Options = []*discordgo.ApplicationCommandInteractionDataOption{{
			Name:    sub,
			Type:    discordgo.ApplicationCommandOptionSubCommand,
			Options: options,
		}}
	}
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:   "interaction-1",
		Type: discordgo.InteractionApplicationCommand,
		Data: data,
		User: &discordgo.User{ID: "user-1"},
	}}
}

func componentInteraction(customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:   "interaction-2",
		Type: discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{CustomID: customID, Values: values},
		Member: &discordgo.Member{
			User: &discordgo.User{ID: "member-1"},
		},
	}}
}

func TestPipeline_Register(t *testing.T) {
	pipeline := NewPipeline()

	pipeline.Register(
		HandlerFunc(func(*InteractionContext) (*HandlerResult, error) { return nil, nil }),
		HandlerFunc(func(*InteractionContext) (*HandlerResult, error) { return nil, nil }),
	)

	assert.Equal(t, 2, pipeline.HandlerCount())
}

func TestPipeline_Execute_RoutesSubcommandWithOptions(t *testing.T) {
	responder := NewMockResponder()
	pipeline := newTestPipeline(responder)

	var gotName, gotSub, gotUser string
	router := NewRouter("search", pipeline)
	router.SubcommandFunc("weapon", func(ctx *InteractionContext) (*HandlerResult, error) {
		gotName = ctx.Option("name")
		gotSub = ctx.Subcommand()
		gotUser = ctx.UserID
		return &HandlerResult{Response: NewResponse("ok")}, nil
	})
	router.Register()

	err := pipeline.Execute(context.Background(), nil, commandInteraction("search", "weapon",
		&discordgo.ApplicationCommandInteractionDataOption{Name: "name", Type: discordgo.ApplicationCommandOptionString, Value: "Braton"},
	))

	require.NoError(t, err)
	assert.Equal(t, "Braton", gotName)
	assert.Equal(t, "weapon", gotSub)
	assert.Equal(t, "user-1", gotUser)
	require.Len(t, responder.Responses, 1)
	assert.Equal(t, "ok", responder.Responses[0].Content)
}

func TestPipeline_Execute_StopsAtFirstHandler(t *testing.T) {
	responder := NewMockResponder()
	pipeline := newTestPipeline(responder)

	var called []string
	pipeline.Register(
		HandlerFunc(func(*InteractionContext) (*HandlerResult, error) {
			called = append(called, "first")
			return &HandlerResult{Response: NewResponse("1")}, nil
		}),
		HandlerFunc(func(*InteractionContext) (*HandlerResult, error) {
			called = append(called, "second")
			return &HandlerResult{Response: NewResponse("2")}, nil
		}),
	)

	require.NoError(t, pipeline.Execute(context.Background(), nil, commandInteraction("help", "")))
	assert.Equal(t, []string{"first"}, called)
}

func TestPipeline_Execute_ErrorAfterPublicDeferBecomesPrivateNotice(t *testing.T) {
	responder := NewMockResponder()
	pipeline := newTestPipeline(responder)

	pipeline.Register(HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
		require.NoError(t, ctx.Responder().Defer(false))
		return nil, NotFound("Weapon")
	}))

	require.NoError(t, pipeline.Execute(context.Background(), nil, commandInteraction("search", "weapon")))

	assert.Equal(t, 1, responder.Deletes)
	require.Len(t, responder.FollowUps, 1)
	assert.True(t, responder.FollowUps[0].Ephemeral)
	assert.Equal(t, "Weapon not found", responder.FollowUps[0].Content)
	assert.Empty(t, responder.Edits)
}

func TestPipeline_Execute_ErrorAfterDeferUpdateFollowsUp(t *testing.T) {
	responder := NewMockResponder()
	pipeline := newTestPipeline(responder)

	pipeline.Register(HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
		require.NoError(t, ctx.Responder().DeferUpdate())
		return nil, errors.New("boom")
	}))

	require.NoError(t, pipeline.Execute(context.Background(), nil, componentInteraction("search:view:abc", "attacks")))

	assert.Zero(t, responder.Deletes)
	require.Len(t, responder.FollowUps, 1)
	assert.True(t, responder.FollowUps[0].Ephemeral)
}

func TestPipeline_Execute_ComponentValues(t *testing.T) {
	responder := NewMockResponder()
	pipeline := newTestPipeline(responder)

	var values []string
	var target string
	router := NewRouter("search", pipeline)
	router.ComponentFunc("view", func(ctx *InteractionContext) (*HandlerResult, error) {
		values = ctx.SelectedValues()
		id, err := ParseCustomID(ctx.ComponentID())
		require.NoError(t, err)
		target = id.Target
		return nil, nil
	})
	router.Register()

	require.NoError(t, pipeline.Execute(context.Background(), nil, componentInteraction("search:view:abc", "rank_stats")))
	assert.Equal(t, []string{"rank_stats"}, values)
	assert.Equal(t, "abc", target)
}

func TestPipeline_Execute_UnknownInteraction(t *testing.T) {
	responder := NewMockResponder()
	pipeline := newTestPipeline(responder)

	require.NoError(t, pipeline.Execute(context.Background(), nil, componentInteraction("other:thing")))

	require.Len(t, responder.Responses, 1)
	assert.True(t, responder.Responses[0].Ephemeral)
}

func TestPipeline_Execute_UnknownAutocompleteGetsNoChoices(t *testing.T) {
	responder := NewMockResponder()
	pipeline := newTestPipeline(responder)

	i := commandInteraction("search", "mod")
	i.Type = discordgo.InteractionApplicationCommandAutocomplete

	require.NoError(t, pipeline.Execute(context.Background(), nil, i))

	require.Len(t, responder.Responses, 1)
	assert.NotNil(t, responder.Responses[0].Choices)
	assert.Empty(t, responder.Responses[0].Choices)
}

func TestMiddlewareChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next Handler) Handler {
			return HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
				order = append(order, name)
				return next.Handle(ctx)
			})
		}
	}

	handler := MiddlewareChain(mark("outer"), mark("inner"))(HandlerFunc(func(*InteractionContext) (*HandlerResult, error) {
		order = append(order, "handler")
		return nil, nil
	}))

	_, err := handler.Handle(NewTestInteractionContext().InteractionContext)
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestPipeline_MiddlewareKeepsRouting(t *testing.T) {
	responder := NewMockResponder()
	pipeline := newTestPipeline(responder)

	var wrapped int
	pipeline.Use(func(next Handler) Handler {
		return HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
			wrapped++
			return next.Handle(ctx)
		})
	})

	NewRouter("help", pipeline).CommandFunc(func(*InteractionContext) (*HandlerResult, error) {
		return &HandlerResult{Response: NewResponse("help")}, nil
	}).Register()
	NewRouter("search", pipeline).SubcommandFunc("*", func(*InteractionContext) (*HandlerResult, error) {
		return &HandlerResult{Response: NewResponse("search")}, nil
	}).Register()

	require.NoError(t, pipeline.Execute(context.Background(), nil, commandInteraction("search", "weapon")))

	require.Len(t, responder.Responses, 1)
	assert.Equal(t, "search", responder.Responses[0].Content)
	assert.Equal(t, 1, wrapped)
}

func TestPipeline_Execute_UpdateAfterDeferUpdateEdits(t *testing.T) {
	responder := NewMockResponder()
	pipeline := newTestPipeline(responder)

	pipeline.Register(HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
		require.NoError(t, ctx.Responder().DeferUpdate())
		return &HandlerResult{Response: NewResponse("refreshed").AsUpdate()}, nil
	}))

	require.NoError(t, pipeline.Execute(context.Background(), nil, componentInteraction("search:view:abc", "attacks")))

	require.Len(t, responder.Edits, 1)
	assert.Equal(t, "refreshed", responder.Edits[0].Content)
	assert.Empty(t, responder.FollowUps)
}
