//go:build integration

package cardsessions_test

import (
	"context"
	"testing"
	"time"

	"github.com/0niSec/cephalon-seraph/internal/card"
	apperrors "github.com/0niSec/cephalon-seraph/internal/errors"
	"github.com/0niSec/cephalon-seraph/internal/repositories/cardsessions"
	"github.com/0niSec/cephalon-seraph/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedis(t)
	repo := cardsessions.NewRedis(client)
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := &cardsessions.Snapshot{
		ID:        "card-001",
		ChannelID: "c1",
		MessageID: "m1",
		Record:    testutils.CreateTestResource("Ferrite", 30),
		View:      card.ResourceDropLocations,
		Page:      2,
		CreatedAt: created,
		ExpiresAt: created.Add(3 * time.Minute),
	}
	require.NoError(t, repo.Save(ctx, snap))

	got, err := repo.Get(ctx, "card-001")
	require.NoError(t, err)
	assert.Equal(t, "m1", got.MessageID)
	assert.Equal(t, card.ResourceDropLocations, got.View)
	assert.Equal(t, 2, got.Page)
	assert.Len(t, got.Record.Drops, 30)
	assert.True(t, got.ExpiresAt.Equal(snap.ExpiresAt))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, "card-001"))
	_, err = repo.Get(ctx, "card-001")
	assert.True(t, apperrors.IsNotFound(err))

	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
