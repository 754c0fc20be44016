package navigation_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/0niSec/cephalon-seraph/internal/card"
	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	apperrors "github.com/0niSec/cephalon-seraph/internal/errors"
	"github.com/0niSec/cephalon-seraph/internal/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func resource(drops int) *item.Record {
	rec := &item.Record{Name: "Ferrite", Category: "Resources"}
	for i := 1; i <= drops; i++ {
		rec.Drops = append(rec.Drops, item.Drop{Location: fmt.Sprintf("Node %d", i), Chance: 0.1})
	}
	return rec
}

func weapon() *item.Record {
	return &item.Record{
		Name:     "Braton Prime",
		Category: "Primary",
		Attacks:  []item.Attack{{Name: "Normal Attack"}},
		Components: []item.Component{
			{Name: "Barrel", Tradable: true, Drops: []item.Drop{{Location: "Lith B1 Relic"}}},
			{Name: "Orokin Cell", ItemCount: 10},
		},
	}
}

func TestSession_SelectView(t *testing.T) {
	s := navigation.NewSession("s1", weapon(), start, time.Minute)

	next, err := s.SelectView(card.Components)
	require.NoError(t, err)
	assert.Equal(t, card.Components, next.View)
	assert.Equal(t, card.BasicInfo, s.View, "receiver must not change")

	_, err = s.SelectView(card.RankStats)
	assert.True(t, apperrors.IsInvalidArgument(err))

	_, err = s.SelectView(card.ComponentDropLocations)
	assert.True(t, apperrors.IsInvalidArgument(err), "component drops are only reachable through a component")
}

func TestSession_SelectViewResetsPage(t *testing.T) {
	s := navigation.NewSession("s1", &item.Record{Name: "Arcane Energize", Category: "Arcanes", LevelStats: []item.LevelStat{{}}, Drops: resource(60).Drops}, start, time.Minute)

	s, err := s.SelectView(card.ResourceDropLocations)
	require.NoError(t, err)
	s, err = s.Paginate(navigation.Next)
	require.NoError(t, err)
	require.Equal(t, 2, s.Page)

	s, err = s.SelectView(card.RankStats)
	require.NoError(t, err)
	s, err = s.SelectView(card.ResourceDropLocations)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Page)
}

func TestSession_PaginationControls(t *testing.T) {
	s := navigation.NewSession("s1", resource(60), start, time.Minute)
	s, err := s.SelectView(card.ResourceDropLocations)
	require.NoError(t, err)

	c := s.Controls()
	assert.True(t, c.Next)
	assert.False(t, c.Previous)
	assert.Equal(t, 3, s.TotalPages())

	_, err = s.Paginate(navigation.Previous)
	assert.True(t, apperrors.IsInvalidArgument(err))

	s, err = s.Paginate(navigation.Next)
	require.NoError(t, err)
	s, err = s.Paginate(navigation.Next)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Page)

	c = s.Controls()
	assert.False(t, c.Next)
	assert.True(t, c.Previous)

	_, err = s.Paginate(navigation.Next)
	assert.True(t, apperrors.IsInvalidArgument(err))
}

func TestSession_PaginateRequiresPaginatedView(t *testing.T) {
	s := navigation.NewSession("s1", resource(60), start, time.Minute)

	_, err := s.Paginate(navigation.Next)
	assert.True(t, apperrors.IsInvalidArgument(err))
	assert.False(t, s.Controls().Next)
}

func TestSession_SelectComponent(t *testing.T) {
	s := navigation.NewSession("s1", weapon(), start, time.Minute)

	_, err := s.SelectComponent("Barrel")
	assert.True(t, apperrors.IsInvalidArgument(err), "must be on the components view")

	s, err = s.SelectView(card.Components)
	require.NoError(t, err)

	c := s.Controls()
	require.Len(t, c.Components, 1)
	assert.Equal(t, navigation.ComponentButton{Index: 0, Label: "Barrel"}, c.Components[0])

	_, err = s.SelectComponent("Orokin Cell")
	assert.True(t, apperrors.IsInvalidArgument(err))

	drops, err := s.SelectComponent("barrel")
	require.NoError(t, err)
	assert.Equal(t, card.ComponentDropLocations, drops.View)
	assert.Equal(t, "Barrel", drops.ComponentKey)
	assert.Empty(t, drops.Controls().Components)

	back, err := drops.SelectView(card.Components)
	require.NoError(t, err)
	assert.Empty(t, back.ComponentKey)
}

func TestSession_ExpireIsTerminal(t *testing.T) {
	s := navigation.NewSession("s1", resource(60), start, time.Minute)
	s, err := s.SelectView(card.ResourceDropLocations)
	require.NoError(t, err)

	expired := s.Expire()
	assert.Equal(t, navigation.Expired, expired.State)
	assert.Equal(t, navigation.Active, s.State)

	_, err = expired.SelectView(card.BasicInfo)
	assert.True(t, apperrors.IsExpired(err))
	_, err = expired.Paginate(navigation.Next)
	assert.True(t, apperrors.IsExpired(err))
	_, err = expired.SelectComponent("x")
	assert.True(t, apperrors.IsExpired(err))

	assert.True(t, expired.Controls().Disabled)
	assert.Equal(t, navigation.Expired, expired.Expire().State)
}

func TestParseDirection(t *testing.T) {
	for _, d := range []navigation.Direction{navigation.Next, navigation.Previous} {
		got, ok := navigation.ParseDirection(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := navigation.ParseDirection("sideways")
	assert.False(t, ok)
}
