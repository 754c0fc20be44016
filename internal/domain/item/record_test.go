package item_test

import (
	"encoding/json"
	"testing"

	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		category string
		want     item.Family
	}{
		{"Primary", item.FamilyWeapon},
		{"Secondary", item.FamilyWeapon},
		{"Melee", item.FamilyWeapon},
		{"Arch-Gun", item.FamilyWeapon},
		{"Mods", item.FamilyMod},
		{"Arcanes", item.FamilyArcane},
		{"Resources", item.FamilyResource},
		{"Misc", item.FamilyResource},
		{"", item.FamilyResource},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, item.FamilyOf(tt.category))
		})
	}
}

func TestFamily_Command(t *testing.T) {
	for _, f := range []item.Family{item.FamilyWeapon, item.FamilyMod, item.FamilyArcane, item.FamilyResource} {
		got, ok := item.FamilyForCommand(f.Command())
		require.True(t, ok)
		assert.Equal(t, f, got)
	}

	assert.Equal(t, "misc", item.FamilyResource.Command())
	_, ok := item.FamilyForCommand("warframe")
	assert.False(t, ok)
}

func TestRecord_DecodesOptionalFields(t *testing.T) {
	raw := `{
		"name": "Braton Prime",
		"category": "Primary",
		"masteryReq": 8,
		"fireRate": 9.583333,
		"damage": {"total": 35, "impact": 1.75, "slash": 0},
		"components": [
			{"name": "Barrel", "itemCount": 1, "tradable": true, "ducats": 45,
			 "drops": [{"location": "Lith B1 Relic", "rarity": "Rare", "chance": 0.02}]},
			{"name": "Orokin Cell", "itemCount": 10, "description": "Location: Saturn"}
		]
	}`

	var rec item.Record
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.Equal(t, item.FamilyWeapon, rec.Family())
	require.NotNil(t, rec.MasteryReq)
	assert.Equal(t, 8, *rec.MasteryReq)
	assert.Nil(t, rec.Disposition)
	assert.Nil(t, rec.ReloadTime)
	assert.Len(t, rec.DroppableComponents(), 1)

	cell, ok := rec.Component("orokin cell")
	require.True(t, ok)
	assert.Equal(t, "Saturn", cell.DropLocation())
	assert.False(t, cell.Droppable())
}

func TestRecord_MaxRank(t *testing.T) {
	rec := item.Record{LevelStats: make([]item.LevelStat, 11)}
	assert.Equal(t, 10, rec.MaxRank())
	assert.Equal(t, -1, (&item.Record{}).MaxRank())
}

func TestMarketKeys(t *testing.T) {
	assert.Equal(t, "primed_continuity", item.MarketKey("Primed Continuity"))
	assert.Equal(t, "arcane_energize", item.MarketKey("  Arcane  Energize "))
	assert.Equal(t, "braton_prime_barrel", item.ComponentMarketKey("Braton Prime", "Barrel"))
}

func TestParseFamily(t *testing.T) {
	f, ok := item.ParseFamily("resource")
	assert.True(t, ok)
	assert.Equal(t, item.FamilyResource, f)
	assert.Equal(t, "misc", f.Command())

	_, ok = item.ParseFamily("misc")
	assert.False(t, ok)
}
