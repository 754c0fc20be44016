package card

import (
	"fmt"
	"strings"

	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	"github.com/0niSec/cephalon-seraph/internal/emoji"
)

const (
	noPrices         = "No prices found"
	priceUnavailable = "Price unavailable"
)

// PriceKeys returns the market keys a view needs prices for
func PriceKeys(rec *item.Record, view ViewKind) []string {
	switch view {
	case BasicInfo:
		switch rec.Family() {
		case item.FamilyMod, item.FamilyArcane:
			return []string{item.MarketKey(rec.Name)}
		}
	case Components:
		var keys []string
		for _, c := range rec.Components {
			if c.Tradable {
				keys = append(keys, item.ComponentMarketKey(rec.Name, c.Name))
			}
		}
		return keys
	}
	return nil
}

// priceLines renders a price lookup result. A missing result counts as a failed lookup.
func priceLines(result item.PriceResult, ok bool, table *emoji.Table) []string {
	if !ok || result.Err != nil {
		return []string{priceUnavailable}
	}
	if len(result.Quotes) == 0 {
		return []string{noPrices}
	}

	lines := make([]string, 0, len(result.Quotes))
	for _, q := range result.Quotes {
		lines = append(lines, "- "+formatQuote(q, table))
	}
	return lines
}

func formatQuote(q item.PriceQuote, table *emoji.Table) string {
	s := fmt.Sprintf("%d %s - %s | %s", q.Platinum, table.Currency("platinum"), q.Seller, strings.ToUpper(q.Status))
	if q.ModRank != nil {
		s += fmt.Sprintf(" | Rank: %d", *q.ModRank)
	}
	return s
}
