package builders_test

import (
	"testing"

	"github.com/0niSec/cephalon-seraph/internal/card"
	"github.com/0niSec/cephalon-seraph/internal/discord/builders"
	"github.com/0niSec/cephalon-seraph/internal/navigation"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardEmbed(t *testing.T) {
	embed := builders.CardEmbed(&card.Payload{
		Title:       "Braton",
		Description: "*A rifle*",
		URL:         "https://warframe.fandom.com/wiki/Braton",
		Color:       card.ColorWeapon,
		Fields: []card.Field{
			{Name: "**Damage**", Value: "Impact: 7.9"},
		},
	})

	assert.Equal(t, "Braton", embed.Title)
	assert.Equal(t, card.ColorWeapon, embed.Color)
	assert.Nil(t, embed.Thumbnail)
	assert.Nil(t, embed.Footer)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "**Damage**", embed.Fields[0].Name)
}

func rows(t *testing.T, components []discordgo.MessageComponent) []discordgo.ActionsRow {
	t.Helper()
	out := make([]discordgo.ActionsRow, len(components))
	for i, c := range components {
		row, ok := c.(discordgo.ActionsRow)
		require.True(t, ok)
		out[i] = row
	}
	return out
}

func TestCardControls_ComponentsView(t *testing.T) {
	controls := navigation.Controls{
		SessionID: "abc",
		Menu: []navigation.MenuOption{
			{View: card.BasicInfo},
			{View: card.Components, Selected: true},
		},
		Components: []navigation.ComponentButton{
			{Index: 0, Label: "Barrel"}, {Index: 1, Label: "Receiver"}, {Index: 2, Label: "Stock"},
			{Index: 3, Label: "Blueprint"}, {Index: 5, Label: "Grip"}, {Index: 6, Label: "Link"},
		},
	}

	got := rows(t, builders.CardControls(controls))

	require.Len(t, got, 3)
	menu, ok := got[0].Components[0].(discordgo.SelectMenu)
	require.True(t, ok)
	assert.Equal(t, "search:view:abc", menu.CustomID)
	require.Len(t, menu.Options, 2)
	assert.Equal(t, "components", menu.Options[1].Value)
	assert.True(t, menu.Options[1].Default)

	assert.Len(t, got[1].Components, 5)
	require.Len(t, got[2].Components, 1)
	link := got[2].Components[0].(discordgo.Button)
	assert.Equal(t, "search:component:abc:6", link.CustomID)
}

func TestCardControls_PaginationOffersValidDirections(t *testing.T) {
	tests := []struct {
		name     string
		previous bool
		next     bool
		want     []string
	}{
		{name: "first page", next: true, want: []string{"search:page:abc:next"}},
		{name: "middle page", previous: true, next: true, want: []string{"search:page:abc:prev", "search:page:abc:next"}},
		{name: "last page", previous: true, want: []string{"search:page:abc:prev"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controls := navigation.Controls{
				SessionID: "abc",
				Menu:      []navigation.MenuOption{{View: card.ResourceDropLocations, Selected: true}},
				Previous:  tt.previous,
				Next:      tt.next,
			}

			got := rows(t, builders.CardControls(controls))

			require.Len(t, got, 2)
			var ids []string
			for _, c := range got[1].Components {
				button := c.(discordgo.Button)
				assert.False(t, button.Disabled)
				ids = append(ids, button.CustomID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestCardControls_SinglePageHasNoPageRow(t *testing.T) {
	controls := navigation.Controls{
		SessionID: "abc",
		Menu:      []navigation.MenuOption{{View: card.ResourceDropLocations, Selected: true}},
	}

	assert.Len(t, rows(t, builders.CardControls(controls)), 1)
}

func TestCardControls_DisabledCard(t *testing.T) {
	controls := navigation.Controls{
		SessionID:  "abc",
		Menu:       []navigation.MenuOption{{View: card.BasicInfo, Selected: true}},
		Components: []navigation.ComponentButton{{Index: 0, Label: "Barrel"}},
		Previous:   true,
		Next:       true,
		Disabled:   true,
	}

	got := rows(t, builders.CardControls(controls))
	require.Len(t, got, 3)
	assert.Len(t, got[2].Components, 2)

	for _, row := range got {
		for _, c := range row.Components {
			switch v := c.(type) {
			case discordgo.SelectMenu:
				assert.True(t, v.Disabled)
			case discordgo.Button:
				assert.True(t, v.Disabled)
			}
		}
	}
}
