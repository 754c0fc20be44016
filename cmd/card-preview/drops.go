package main

import (
	"fmt"

	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	"github.com/spf13/cobra"
)

var dropsCmd = &cobra.Command{
	Use:   "drops <weapon> <component>",
	Short: "List where a weapon component drops",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := newProvider()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		rec, err := provider.ItemService.Lookup(ctx, args[0], item.FamilyWeapon)
		if err != nil {
			return err
		}

		drops, err := provider.ItemService.DropLocations(ctx, rec, args[1])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderDrops(rec.Name+" "+args[1], drops))
		return nil
	},
}
