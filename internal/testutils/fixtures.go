package testutils

import (
	"fmt"

	"github.com/0niSec/cephalon-seraph/internal/domain/item"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

// CreateTestWeapon creates a primary weapon with one tradable part and one resource
func CreateTestWeapon(name string) *item.Record {
	return &item.Record{
		Name:           name,
		Category:       "Primary",
		Type:           "Rifle",
		MasteryReq:     intPtr(8),
		CriticalChance: floatPtr(0.26),
		CriticalMult:   floatPtr(2.2),
		Attacks: []item.Attack{
			{Name: "Normal Attack", Speed: floatPtr(9.58), ShotType: "Hit-Scan"},
		},
		Components: []item.Component{
			{
				Name:      "Barrel",
				ItemCount: 1,
				Tradable:  true,
				Drops: []item.Drop{
					{Location: "Lith B1 Relic", Type: "Relic", Rarity: "Uncommon", Chance: 0.11},
				},
			},
			{Name: "Orokin Cell", ItemCount: 10},
		},
	}
}

// CreateTestMod creates a mod with maxRank+1 rank stats
func CreateTestMod(name string, maxRank int) *item.Record {
	rec := &item.Record{
		Name:      name,
		Category:  "Mods",
		Type:      "Primary Mod",
		Polarity:  "madurai",
		Rarity:    "Rare",
		BaseDrain: intPtr(4),
		Tradable:  true,
	}
	for r := 0; r <= maxRank; r++ {
		rec.LevelStats = append(rec.LevelStats, item.LevelStat{
			Stats: []string{fmt.Sprintf("+%d%% Damage", 15*(r+1))},
		})
	}
	return rec
}

// CreateTestResource creates a resource that drops at n nodes
func CreateTestResource(name string, n int) *item.Record {
	rec := &item.Record{Name: name, Category: "Resources", Type: "Resource"}
	for i := 1; i <= n; i++ {
		rec.Drops = append(rec.Drops, item.Drop{Location: fmt.Sprintf("Node %d", i), Chance: 0.1})
	}
	return rec
}
