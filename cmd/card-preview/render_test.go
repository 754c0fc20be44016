package main

import (
	"testing"

	"github.com/0niSec/cephalon-seraph/internal/card"
	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	"github.com/stretchr/testify/assert"
)

func TestRenderPayload(t *testing.T) {
	out := renderPayload(&card.Payload{
		Title:       "Braton Prime",
		Description: "A rifle.",
		Color:       card.ColorWeapon,
		Footer:      "Page 1 of 1",
		Fields: []card.Field{
			{Name: "Stats", Value: "Mastery: 8"},
			{Name: "Barrel", Value: "Count: 1", Inline: true},
		},
	})

	for _, want := range []string{"Braton Prime", "A rifle.", "Stats", "Mastery: 8", "Barrel", "Page 1 of 1"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderViews_MarksCurrent(t *testing.T) {
	rec := &item.Record{Name: "Ferrite", Category: "Resources", Drops: []item.Drop{{Location: "Node"}}}

	out := renderViews(rec, card.ResourceDropLocations)

	assert.Contains(t, out, "["+card.ResourceDropLocations.Label()+"]")
	assert.Contains(t, out, card.BasicInfo.Label())
}

func TestRenderDrops(t *testing.T) {
	out := renderDrops("Braton Prime Barrel", []item.Drop{{Location: "Lith B1 Relic", Chance: 0.11, Rarity: "Uncommon"}})

	assert.Contains(t, out, "Lith B1 Relic")
	assert.Contains(t, out, "11.00%")
	assert.Contains(t, out, "Uncommon")
}
