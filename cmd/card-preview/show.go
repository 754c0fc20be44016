package main

import (
	"fmt"
	"strings"

	"github.com/0niSec/cephalon-seraph/internal/card"
	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	"github.com/spf13/cobra"
)

var (
	viewName  string
	page      int
	component string
)

var showCmd = &cobra.Command{
	Use:   "show <weapon|mod|arcane|misc> <name>",
	Short: "Look an item up and render one view of its card",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		family, ok := item.FamilyForCommand(args[0])
		if !ok {
			return fmt.Errorf("unknown item type %q", args[0])
		}
		view, ok := card.ParseViewKind(viewName)
		if !ok {
			return fmt.Errorf("unknown view %q", viewName)
		}

		provider, err := newProvider()
		if err != nil {
			return err
		}
		emojiStore, err := newEmojiStore()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		rec, err := provider.ItemService.Lookup(ctx, strings.Join(args[1:], " "), family)
		if err != nil {
			return err
		}

		if view != card.ComponentDropLocations && !card.IsOffered(rec, view) {
			return fmt.Errorf("%s has no %s view", rec.Name, view.Label())
		}

		var prices map[string]item.PriceResult
		if keys := card.PriceKeys(rec, view); len(keys) > 0 {
			prices = provider.ItemService.PricesFor(ctx, keys)
		}

		payload := card.NewRenderer(emojiStore).Render(card.Input{
			Record:       rec,
			View:         view,
			Page:         page,
			ComponentKey: component,
			Prices:       prices,
		})

		fmt.Fprintln(cmd.OutOrStdout(), renderPayload(payload))
		fmt.Fprintln(cmd.OutOrStdout(), renderViews(rec, view))
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&viewName, "view", card.BasicInfo.String(), "view to render")
	showCmd.Flags().IntVar(&page, "page", 1, "page of a paginated view")
	showCmd.Flags().StringVar(&component, "component", "", "component for the component_drops view")
}
