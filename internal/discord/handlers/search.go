package handlers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/0niSec/cephalon-seraph/internal/card"
	"github.com/0niSec/cephalon-seraph/internal/discord/builders"
	"github.com/0niSec/cephalon-seraph/internal/discord/core"
	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	apperrors "github.com/0niSec/cephalon-seraph/internal/errors"
	"github.com/0niSec/cephalon-seraph/internal/navigation"
	"github.com/0niSec/cephalon-seraph/internal/services/items"
	"github.com/bwmarrin/discordgo"
)

// NameOption is the /search option holding the item name
const NameOption = "name"

// SearchHandlerConfig holds the dependencies of the search handler
type SearchHandlerConfig struct {
	Items items.Service
	Cards *navigation.Manager
}

// SearchHandler answers /search lookups and the controls of the cards they post
type SearchHandler struct {
	items items.Service
	cards *navigation.Manager
}

// NewSearchHandler creates a search handler
func NewSearchHandler(cfg *SearchHandlerConfig) (*SearchHandler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Items == nil {
		return nil, fmt.Errorf("item service is required")
	}
	if cfg.Cards == nil {
		return nil, fmt.Errorf("card manager is required")
	}

	return &SearchHandler{
		items: cfg.Items,
		cards: cfg.Cards,
	}, nil
}

// HandleLookup fetches the item and posts its card
func (h *SearchHandler) HandleLookup(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	family, ok := item.FamilyForCommand(ctx.Subcommand())
	if !ok {
		return nil, core.Invalid("Unknown item type.")
	}

	name := strings.TrimSpace(ctx.Option(NameOption))
	if name == "" {
		return nil, core.Invalid("Please give an item name.")
	}

	responder := ctx.Responder()
	if err := responder.Defer(false); err != nil {
		return nil, fmt.Errorf("failed to defer lookup: %w", err)
	}

	rec, err := h.items.Lookup(ctx.Context, name, family)
	if err != nil {
		return nil, lookupError(err, name, family)
	}

	_, err = h.cards.Open(ctx.Context, rec, func(_ context.Context, p *card.Payload, c navigation.Controls) (navigation.MessageRef, error) {
		msg, err := responder.Edit(builders.CardResponse(p, c))
		if err != nil {
			return navigation.MessageRef{}, err
		}
		return navigation.MessageRef{ChannelID: msg.ChannelID, MessageID: msg.ID}, nil
	})
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to post card for %s", rec.Name)
	}

	return &core.HandlerResult{Deferred: true}, nil
}

// lookupError turns a provider failure into the notice the user sees
func lookupError(err error, name string, family item.Family) error {
	switch {
	case apperrors.IsNotFound(err):
		return core.NewHandlerError(err, fmt.Sprintf("%s not found: %s", family.Label(), name), core.StatusNotFound)

	case apperrors.IsWrongFamily(err):
		meta := apperrors.GetMeta(err)
		display, _ := meta["name"].(string)
		if display == "" {
			display = name
		}
		actualName, _ := meta["family"].(string)
		actual, _ := item.ParseFamily(actualName)
		return core.NewHandlerError(err,
			fmt.Sprintf("%s is not a %s. Try `/search %s`.", display, family.String(), actual.Command()),
			core.StatusBadRequest)

	case apperrors.IsUnavailable(err):
		return core.NewHandlerError(err,
			fmt.Sprintf("Something went wrong looking up %s. Please try again later.", name),
			core.StatusUpstream)
	}
	return err
}

// HandleAutocomplete suggests item names of the subcommand's family
func (h *SearchHandler) HandleAutocomplete(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	family, ok := item.FamilyForCommand(ctx.Subcommand())
	if !ok || ctx.Focused() != NameOption {
		return &core.HandlerResult{Response: core.NewChoicesResponse(nil)}, nil
	}

	results, err := h.items.Search(ctx.Context, ctx.Option(NameOption), family, items.MaxSuggestions)
	if err != nil {
		log.Printf("[Search] Autocomplete failed for %q: %v", ctx.Option(NameOption), err)
		return &core.HandlerResult{Response: core.NewChoicesResponse(nil)}, nil
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(results))
	for i, r := range results {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{Name: r.Name, Value: r.Name}
	}
	return &core.HandlerResult{Response: core.NewChoicesResponse(choices)}, nil
}

// HandleView switches the card to the view picked in the menu
func (h *SearchHandler) HandleView(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	id, err := core.ParseCustomID(ctx.ComponentID())
	if err != nil {
		return nil, apperrors.InvalidArgumentf("bad custom id: %v", err)
	}

	values := ctx.SelectedValues()
	if len(values) == 0 {
		return nil, apperrors.InvalidArgument("no view selected")
	}
	kind, ok := card.ParseViewKind(values[0])
	if !ok {
		return nil, apperrors.InvalidArgumentf("unknown view %q", values[0])
	}

	return h.present(ctx, func(present navigation.PresentFunc) error {
		_, err := h.cards.SelectView(ctx.Context, id.Target, kind, present)
		return err
	})
}

// HandlePage moves a paginated view one page
func (h *SearchHandler) HandlePage(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	id, err := core.ParseCustomID(ctx.ComponentID())
	if err != nil {
		return nil, apperrors.InvalidArgumentf("bad custom id: %v", err)
	}

	dir, ok := navigation.ParseDirection(id.Arg(0))
	if !ok {
		return nil, apperrors.InvalidArgumentf("unknown direction %q", id.Arg(0))
	}

	return h.present(ctx, func(present navigation.PresentFunc) error {
		_, err := h.cards.Paginate(ctx.Context, id.Target, dir, present)
		return err
	})
}

// HandleComponent opens the drop locations of a weapon component
func (h *SearchHandler) HandleComponent(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	id, err := core.ParseCustomID(ctx.ComponentID())
	if err != nil {
		return nil, apperrors.InvalidArgumentf("bad custom id: %v", err)
	}

	index, err := strconv.Atoi(id.Arg(0))
	if err != nil {
		return nil, apperrors.InvalidArgumentf("bad component index %q", id.Arg(0))
	}

	return h.present(ctx, func(present navigation.PresentFunc) error {
		_, err := h.cards.SelectComponent(ctx.Context, id.Target, index, present)
		return err
	})
}

// present acknowledges the click and lets the manager edit the card in place
func (h *SearchHandler) present(ctx *core.InteractionContext, apply func(navigation.PresentFunc) error) (*core.HandlerResult, error) {
	responder := ctx.Responder()
	if err := responder.DeferUpdate(); err != nil {
		return nil, fmt.Errorf("failed to acknowledge component: %w", err)
	}

	err := apply(func(_ context.Context, p *card.Payload, c navigation.Controls) error {
		_, err := responder.Edit(builders.CardResponse(p, c))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &core.HandlerResult{Deferred: true}, nil
}
