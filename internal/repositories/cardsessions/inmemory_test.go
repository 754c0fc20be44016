package cardsessions_test

import (
	"context"
	"testing"

	"github.com/0niSec/cephalon-seraph/internal/card"
	apperrors "github.com/0niSec/cephalon-seraph/internal/errors"
	"github.com/0niSec/cephalon-seraph/internal/repositories/cardsessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := cardsessions.NewInMemoryRepository()

	require.NoError(t, repo.Save(ctx, &cardsessions.Snapshot{ID: "b", View: card.Components}))
	require.NoError(t, repo.Save(ctx, &cardsessions.Snapshot{ID: "a"}))

	got, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, card.Components, got.View)

	// Returned snapshots are copies
	got.View = card.BasicInfo
	again, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, card.Components, again.View)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)

	require.NoError(t, repo.Delete(ctx, "a"))
	_, err = repo.Get(ctx, "a")
	assert.True(t, apperrors.IsNotFound(err))

	assert.True(t, apperrors.IsInvalidArgument(repo.Save(ctx, nil)))
}
