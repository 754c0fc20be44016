package handlers_test

import (
	"errors"
	"testing"

	"github.com/0niSec/cephalon-seraph/internal/discord/core"
	"github.com/0niSec/cephalon-seraph/internal/discord/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHelp_ListsEveryFamily(t *testing.T) {
	result, err := handlers.HandleHelp(core.NewTestInteractionContext().AsCommand("help").InteractionContext)

	require.NoError(t, err)
	assert.True(t, result.Response.Ephemeral)
	require.Len(t, result.Response.Embeds, 1)

	commands := result.Response.Embeds[0].Fields[0].Value
	for _, sub := range []string{"weapon", "mod", "arcane", "misc"} {
		assert.Contains(t, commands, "`/search "+sub+" <name>`")
	}
}

type stubReloader struct{ err error }

func (s stubReloader) Reload() error { return s.err }

func TestReloadHandler(t *testing.T) {
	ctx := core.NewTestInteractionContext().AsCommand("reload").InteractionContext

	result, err := handlers.NewReloadHandler(stubReloader{}).Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Emoji table reloaded.", result.Response.Content)

	_, err = handlers.NewReloadHandler(stubReloader{err: errors.New("bad yaml")}).Handle(ctx)
	var herr *core.HandlerError
	require.ErrorAs(t, err, &herr)
	assert.Contains(t, herr.Message, "bad yaml")
}
