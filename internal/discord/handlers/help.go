package handlers

import (
	"strings"

	"github.com/0niSec/cephalon-seraph/internal/card"
	"github.com/0niSec/cephalon-seraph/internal/discord/builders"
	"github.com/0niSec/cephalon-seraph/internal/discord/core"
	"github.com/0niSec/cephalon-seraph/internal/domain/item"
)

// HandleHelp lists the lookup commands
func HandleHelp(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	var lines []string
	for _, f := range []item.Family{item.FamilyWeapon, item.FamilyMod, item.FamilyArcane, item.FamilyResource} {
		lines = append(lines, "`/search "+f.Command()+" <name>` - look up a "+f.String())
	}

	embed := builders.InfoEmbed("Cephalon Seraph", "Look up Warframe items and their market prices.",
		"Powered by WarframeStat.us and warframe.market",
		card.Field{Name: "Commands", Value: strings.Join(lines, "\n")},
		card.Field{Name: "Cards", Value: "Use the menu under a card to switch views. Cards stop responding after a few minutes of inactivity."},
	)

	return &core.HandlerResult{
		Response: core.NewEmbedResponse(embed).AsEphemeral(),
	}, nil
}
